package logger

import "testing"

func TestRedactKVsMasksSecretKeys(t *testing.T) {
	out := redactKVs([]interface{}{
		"api_key", "rdb-1234",
		"customer_name", "Initech",
		"x_api_token", "hunter2",
	})
	if len(out) != 6 {
		t.Fatalf("length: want=6 got=%d", len(out))
	}
	if out[1] != "[REDACTED]" {
		t.Fatalf("api_key: want=[REDACTED] got=%v", out[1])
	}
	if out[3] != "Initech" {
		t.Fatalf("customer_name: want=Initech got=%v", out[3])
	}
	if out[5] != "[REDACTED]" {
		t.Fatalf("x_api_token: want=[REDACTED] got=%v", out[5])
	}
}

func TestRedactKVsOddTrailingKey(t *testing.T) {
	out := redactKVs([]interface{}{"token", "abc", "dangling"})
	if len(out) != 3 {
		t.Fatalf("length: want=3 got=%d", len(out))
	}
	if out[2] != "dangling" {
		t.Fatalf("trailing element: want=dangling got=%v", out[2])
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"development", "production", ""} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		log.Sync()
	}
}
