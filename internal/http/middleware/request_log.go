package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

// RequestLog tags every request with a generated ID (echoed in X-Request-Id)
// and logs method, path, status and duration on completion.
func RequestLog(log *logger.Logger) gin.HandlerFunc {
	requestLogger := log.With("middleware", "RequestLog")
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Writer.Header().Set("X-Request-Id", requestID)
		start := time.Now()

		c.Next()

		requestLogger.Info("request completed",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
