package app

import (
	"github.com/rdyla/pfi-technologymatrix/internal/matrix"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

type Services struct {
	Matrix *matrix.Service
}

func wireServices(log *logger.Logger, clients Clients) Services {
	log.Info("Wiring services...")
	var matrixService *matrix.Service
	if clients.Store != nil {
		matrixService = matrix.NewService(log, clients.Store)
	}
	return Services{Matrix: matrixService}
}
