package main

import (
	"fmt"
	"os"

	"github.com/rdyla/pfi-technologymatrix/internal/app"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/envutil"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

func main() {
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := app.LoadConfig()

	application, err := app.New(log, cfg)
	if err != nil {
		log.Error("App init failed", "error", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
