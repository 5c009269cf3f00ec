package app

import (
	httpMW "github.com/rdyla/pfi-technologymatrix/internal/http/middleware"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

type Middleware struct {
	Token *httpMW.TokenMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Token: httpMW.NewTokenMiddleware(log, cfg.APIToken),
	}
}
