// Package main provides the entrypoint for the dispatch optimizer API
// server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/nexgen/dispatch-optimizer/internal/api"
	"github.com/nexgen/dispatch-optimizer/internal/api/middleware"
	"github.com/nexgen/dispatch-optimizer/internal/config"
	"github.com/nexgen/dispatch-optimizer/internal/dataset"
	"github.com/nexgen/dispatch-optimizer/internal/optimizer"
	"github.com/nexgen/dispatch-optimizer/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "dispatch-optimizer-api"

	// Environment variables win over .env; a missing .env is fine.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting dispatch optimizer API")

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Load the dataset once at startup. A load failure is fatal: the
	// server never comes up serving data it does not have.
	loader := dataset.NewLoader(cfg.DataDir, log)
	dataService := dataset.NewService(loader, log)
	if err := dataService.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Str("data_dir", cfg.DataDir).Msg("initial dataset load failed")
	}
	log.Info().Str("data_dir", cfg.DataDir).Msg("dataset loaded")

	engine := optimizer.NewService(optimizer.ServiceConfig{
		Dataset: dataService,
		Predictor: optimizer.PredictorConfig{
			FuelPricePerLiter: cfg.Engine.FuelPricePerLiter,
			LaborCostPerHour:  cfg.Engine.LaborCostPerHour,
			SpeedByType:       cfg.Engine.SpeedByVehicleType,
			DefaultSpeedKmh:   cfg.Engine.DefaultSpeedKmh,
		},
		Filter: optimizer.FilterConfig{
			PerishableCategories: cfg.Engine.PerishableCategories,
			RefrigeratedType:     cfg.Engine.RefrigeratedType,
		},
		Logger: log,
	})
	log.Info().Msg("optimization engine initialized")

	// Reload automatically when the source files change on disk.
	watcherCtx, stopWatcher := context.WithCancel(ctx)
	defer stopWatcher()
	watcher := dataset.NewWatcher(dataset.WatcherConfig{
		Service:  dataService,
		Paths:    loader.SourcePaths(),
		Interval: cfg.RefreshInterval,
		Logger:   log,
	})
	go watcher.Run(watcherCtx)

	router := api.NewRouter(api.RouterConfig{
		Version:   Version,
		BuildTime: BuildTime,
		Logger:    log,
		Metrics:   metrics,
		Dataset:   dataService,
		Optimizer: engine,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	stopWatcher()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
