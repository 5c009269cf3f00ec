package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders applies the page-serving headers: iframe embedding is
// limited to 'self' plus the configured CRM origin, MIME sniffing is off,
// and the referrer policy is strict.
func SecurityHeaders(embedOrigin string) gin.HandlerFunc {
	frameAncestors := "'self'"
	if origin := strings.TrimSpace(embedOrigin); origin != "" {
		frameAncestors += " " + origin
	}
	csp := "frame-ancestors " + frameAncestors
	return func(c *gin.Context) {
		c.Header("Content-Security-Policy", csp)
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
