package app

import (
	"github.com/gin-gonic/gin"

	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

type App struct {
	Log    *logger.Logger
	Config Config
	Router *gin.Engine
}

func New(log *logger.Logger, cfg Config) (*App, error) {
	clients := wireClients(log)
	services := wireServices(log, clients)
	handlers, err := wireHandlers(log, cfg, clients, services)
	if err != nil {
		return nil, err
	}
	middleware := wireMiddleware(log, cfg)
	router := wireRouter(log, cfg, handlers, middleware)

	return &App{
		Log:    log,
		Config: cfg,
		Router: router,
	}, nil
}

func (a *App) Run() error {
	a.Log.Info("Server listening", "port", a.Config.Port)
	return a.Router.Run(":" + a.Config.Port)
}
