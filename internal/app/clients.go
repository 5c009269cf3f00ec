package app

import (
	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/restdb"
)

type Clients struct {
	Store restdb.Client
	// StoreErr holds the configuration error when the store client could
	// not be built; handlers turn it into a 500 on every API call.
	StoreErr error
}

func wireClients(log *logger.Logger) Clients {
	cfg, err := restdb.ResolveConfigFromEnv()
	if err != nil {
		log.Warn("store not configured; API calls will fail", "error", err)
		return Clients{StoreErr: err}
	}
	store, err := restdb.NewClient(log, cfg)
	if err != nil {
		log.Warn("store client init failed; API calls will fail", "error", err)
		return Clients{StoreErr: err}
	}
	return Clients{Store: store}
}
