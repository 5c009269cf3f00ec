package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

func newTokenTestRouter(t *testing.T, token string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() {
		log.Sync()
	})

	r := gin.New()
	api := r.Group("/api")
	api.Use(NewTokenMiddleware(log, token).RequireToken())
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
	api.GET("/items", handler)
	api.POST("/items", handler)
	api.DELETE("/items/:id", handler)
	api.GET("/customers", handler)
	return r
}

func TestTokenGateDisabledPassesThrough(t *testing.T) {
	r := newTokenTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}
}

func TestTokenGateMatchingTokenPasses(t *testing.T) {
	r := newTokenTestRouter(t, "s3cret")

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("X-Api-Token", "s3cret")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}
}

func TestTokenGateRejectsEveryMethodAndPath(t *testing.T) {
	r := newTokenTestRouter(t, "s3cret")

	cases := []struct {
		method string
		path   string
		token  string
	}{
		{http.MethodGet, "/api/items", ""},
		{http.MethodPost, "/api/items", "wrong"},
		{http.MethodDelete, "/api/items/rec-1", ""},
		{http.MethodGet, "/api/customers", "S3CRET"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		if tc.token != "" {
			req.Header.Set("X-Api-Token", tc.token)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: want=401 got=%d", tc.method, tc.path, rec.Code)
		}
		var body struct {
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s %s: decode body: %v", tc.method, tc.path, err)
		}
		if body.OK || body.Error != "unauthorized" {
			t.Fatalf("%s %s: envelope: got=%+v", tc.method, tc.path, body)
		}
	}
}
