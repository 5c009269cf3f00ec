package app

import (
	"github.com/rdyla/pfi-technologymatrix/internal/platform/envutil"
)

// Config is the process-level configuration, read once at startup and passed
// down explicitly. Store credentials live in restdb.Config and are resolved
// separately so their absence can surface per-request instead of at boot.
type Config struct {
	Port        string
	APIToken    string
	EmbedOrigin string
}

func LoadConfig() Config {
	return Config{
		Port:        envutil.String("PORT", "8080"),
		APIToken:    envutil.String("MATRIX_API_TOKEN", ""),
		EmbedOrigin: envutil.String("MATRIX_EMBED_ORIGIN", ""),
	}
}
