package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpH "github.com/rdyla/pfi-technologymatrix/internal/http/handlers"
	httpMW "github.com/rdyla/pfi-technologymatrix/internal/http/middleware"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	PageHandler     *httpH.PageHandler
	ItemHandler     *httpH.ItemHandler
	CustomerHandler *httpH.CustomerHandler
	HealthHandler   *httpH.HealthHandler

	TokenMiddleware *httpMW.TokenMiddleware

	EmbedOrigin string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLog(cfg.Log))
	}
	r.Use(httpMW.CORS(cfg.EmbedOrigin))
	r.HandleMethodNotAllowed = true

	// Page
	if cfg.PageHandler != nil {
		r.GET("/", httpMW.SecurityHeaders(cfg.EmbedOrigin), cfg.PageHandler.GetPage)
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.TokenMiddleware != nil {
			api.Use(cfg.TokenMiddleware.RequireToken())
		}

		if cfg.ItemHandler != nil {
			api.GET("/items", cfg.ItemHandler.ListItems)
			api.POST("/items", cfg.ItemHandler.CreateItem)
			api.DELETE("/items/:id", cfg.ItemHandler.DeleteItem)
		}

		if cfg.CustomerHandler != nil {
			api.GET("/customers", cfg.CustomerHandler.ListCustomers)
		}
	}

	// The gate is checked here too: an unknown API path with a bad token is
	// a 401, not a 404.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			if cfg.TokenMiddleware != nil && !cfg.TokenMiddleware.Authorized(c) {
				c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
			return
		}
		c.String(http.StatusNotFound, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			if cfg.TokenMiddleware != nil && !cfg.TokenMiddleware.Authorized(c) {
				c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
				return
			}
			c.JSON(http.StatusMethodNotAllowed, gin.H{"ok": false, "error": "method not allowed"})
			return
		}
		c.String(http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
