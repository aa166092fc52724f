package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cantinadirect/shipping-backend/internal/app"
	"github.com/cantinadirect/shipping-backend/internal/data/fixtures"
	httpserver "github.com/cantinadirect/shipping-backend/internal/http"
	"github.com/cantinadirect/shipping-backend/internal/http/handlers"
	"github.com/cantinadirect/shipping-backend/internal/observability"
	"github.com/cantinadirect/shipping-backend/internal/platform/logger"
	"github.com/cantinadirect/shipping-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg := app.LoadConfig()

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "shipping-backend",
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOTel(ctx)
		}()
	}

	// Data source
	store, err := fixtures.Load(cfg.FixturesPath, log)
	if err != nil {
		log.Error("Could not load shipment fixtures", "error", err, "path", cfg.FixturesPath)
		os.Exit(1)
	}

	// Services
	documentService := services.NewDocumentService(log, store)

	// Handlers
	documentHandler := handlers.NewDocumentHandler(log, documentService)
	healthHandler := handlers.NewHealthHandler()

	// Server
	server := httpserver.NewServer(httpserver.RouterConfig{
		Log:             log,
		ServiceName:     "shipping-backend",
		DocumentHandler: documentHandler,
		HealthHandler:   healthHandler,
	})
	log.Info("Starting HTTP server", "address", cfg.ListenAddress)
	if err := server.Run(cfg.ListenAddress); err != nil {
		log.Fatal("HTTP server exited", "error", err)
	}
}
