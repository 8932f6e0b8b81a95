package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-api-starter/internal/app"
	"github.com/MKhiriev/go-api-starter/internal/config"
	"github.com/MKhiriev/go-api-starter/internal/docs"
	"github.com/MKhiriev/go-api-starter/internal/handler"
	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/MKhiriev/go-api-starter/internal/metrics"
	"github.com/MKhiriev/go-api-starter/internal/server"
	"github.com/MKhiriev/go-api-starter/internal/service"
	"github.com/MKhiriev/go-api-starter/internal/store"
	"github.com/MKhiriev/go-api-starter/internal/workers"
	"github.com/MKhiriev/go-api-starter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	rateLimiterSweepInterval = time.Minute
	grpcHealthInterval       = 15 * time.Second
	startupTimeout           = 30 * time.Second
)

func main() {
	if err := app.ForceUTC(); err != nil {
		fmt.Fprintf(os.Stderr, "error forcing UTC: %v\n", err)
		os.Exit(1)
	}

	printBuildInfo()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("api-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetGlobalLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Object("config", cfg).Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	m := metrics.NewMetrics()

	services, err := service.NewServices(storages, *cfg, buildInfo, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	spec := docs.NewSpec(docs.Info{
		Title:   "go-api-starter",
		Version: services.AppInfoService.GetAppVersion(context.Background()),
	})

	handlers := handler.NewHandlers(services, cfg.Server, m, spec, log)

	w := workers.NewWorkers(log,
		workers.NewPeriodic("rate-limiter-sweep", rateLimiterSweepInterval, func(ctx context.Context) error {
			if removed := handlers.HTTP.SweepRateLimiter(); removed > 0 {
				log.Debug().Int("removed", removed).Msg("rate limiter visitors swept")
			}
			return nil
		}, log),
	)
	if handlers.GRPC != nil {
		if err = handlers.GRPC.RefreshHealth(context.Background()); err != nil {
			log.Warn().Err(err).Msg("initial health check failed")
		}
		w.Add(workers.NewPeriodic("grpc-health", grpcHealthInterval, handlers.GRPC.RefreshHealth, log))
	}

	srv, err := server.NewServer(handlers, w, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
