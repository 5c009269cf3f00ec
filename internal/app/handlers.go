package app

import (
	httpH "github.com/rdyla/pfi-technologymatrix/internal/http/handlers"
	"github.com/rdyla/pfi-technologymatrix/internal/matrix"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
	"github.com/rdyla/pfi-technologymatrix/internal/web"
)

type Handlers struct {
	Page     *httpH.PageHandler
	Item     *httpH.ItemHandler
	Customer *httpH.CustomerHandler
	Health   *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, cfg Config, clients Clients, services Services) (Handlers, error) {
	log.Info("Wiring handlers...")
	pageHandler, err := httpH.NewPageHandler(log, web.PageData{
		Categories: matrix.Categories,
		TokenGate:  cfg.APIToken != "",
	})
	if err != nil {
		return Handlers{}, err
	}
	return Handlers{
		Page:     pageHandler,
		Item:     httpH.NewItemHandler(log, services.Matrix, clients.StoreErr),
		Customer: httpH.NewCustomerHandler(log, services.Matrix, clients.StoreErr),
		Health:   httpH.NewHealthHandler(),
	}, nil
}
