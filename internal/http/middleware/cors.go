package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS permits the embedding CRM origin (when configured) plus local dev
// hosts. The API is same-origin in production; this mostly serves iframe
// development against a local backend.
func CORS(embedOrigin string) gin.HandlerFunc {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:8080",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:8080",
	}
	if embedOrigin != "" {
		origins = append(origins, embedOrigin)
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Api-Token", "X-Requested-With"},
		AllowCredentials: false,
	})
}
