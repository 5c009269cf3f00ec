package app

import (
	"github.com/gin-gonic/gin"

	httpPkg "github.com/rdyla/pfi-technologymatrix/internal/http"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return httpPkg.NewRouter(httpPkg.RouterConfig{
		Log:             log,
		PageHandler:     handlers.Page,
		ItemHandler:     handlers.Item,
		CustomerHandler: handlers.Customer,
		HealthHandler:   handlers.Health,
		TokenMiddleware: middleware.Token,
		EmbedOrigin:     cfg.EmbedOrigin,
	})
}
