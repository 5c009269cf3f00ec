package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

const tokenHeader = "X-Api-Token"

// TokenMiddleware gates the API behind a single shared secret. An empty
// configured token disables the gate entirely.
type TokenMiddleware struct {
	log   *logger.Logger
	token string
}

func NewTokenMiddleware(log *logger.Logger, token string) *TokenMiddleware {
	return &TokenMiddleware{
		log:   log.With("middleware", "TokenMiddleware"),
		token: token,
	}
}

// Authorized reports whether the request may pass the gate. Used directly
// by the router's no-route/no-method handlers so unknown API paths answer
// 401 before 404/405 when the gate is on.
func (tm *TokenMiddleware) Authorized(c *gin.Context) bool {
	if tm.token == "" {
		return true
	}
	supplied := c.GetHeader(tokenHeader)
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(tm.token)) == 1
}

func (tm *TokenMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tm.Authorized(c) {
			tm.log.Warn("rejected api request", "path", c.Request.URL.Path, "method", c.Request.Method)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "unauthorized",
			})
			return
		}
		c.Next()
	}
}
