package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reelpick/reelpick/internal/api"
	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/discovery"
	"github.com/reelpick/reelpick/internal/health"
	"github.com/reelpick/reelpick/internal/logger"
	"github.com/reelpick/reelpick/internal/metadata"
	"github.com/reelpick/reelpick/internal/metadata/mock"
	"github.com/reelpick/reelpick/internal/metadata/tmdb"
	"github.com/reelpick/reelpick/internal/metrics"
	"github.com/reelpick/reelpick/internal/scheduler"
	"github.com/reelpick/reelpick/internal/scheduler/tasks"
	"github.com/reelpick/reelpick/internal/startup"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "reelpick: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Path:       cfg.Logging.Path,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
		BufferSize: 1000,
	})
	defer log.Close()

	log.Info().
		Str("version", config.Version).
		Str("address", cfg.Server.Address()).
		Bool("developerMode", cfg.DeveloperMode).
		Msg("starting ReelPick")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	var catalog metadata.TMDBClient
	if cfg.DeveloperMode {
		log.Warn().Msg("developer mode: serving the built-in sample catalog")
		catalog = mock.NewTMDBClient()
	} else {
		client := tmdb.NewClient(cfg.TMDB, log.WithComponent("tmdb"))
		client.SetMetrics(m)
		catalog = client
	}

	metaSvc := metadata.NewService(catalog, cfg.Discovery.PosterPages, log.WithComponent("metadata"))

	discoverySvc := discovery.NewService(metaSvc, cfg.Discovery, log.WithComponent("discovery"))
	discoverySvc.SetMetrics(m)

	healthSvc := health.NewService(log.WithComponent("health"))
	catalogChecker := health.NewCatalogChecker(healthSvc, metaSvc, log.WithComponent("health"))
	lookupChecker := health.NewLookupChecker(healthSvc, metaSvc)

	sched, err := scheduler.New(log.WithComponent("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := tasks.RegisterCatalogHealthTask(sched, catalogChecker, &cfg.Scheduler, log.Logger); err != nil {
		return fmt.Errorf("failed to register catalog health task: %w", err)
	}
	if err := tasks.RegisterLookupCheckTask(sched, lookupChecker, &cfg.Scheduler, log.Logger); err != nil {
		return fmt.Errorf("failed to register lookup check task: %w", err)
	}

	server, err := api.NewServer(api.Deps{
		Config:    cfg,
		Metadata:  metaSvc,
		Discovery: discoverySvc,
		Health:    healthSvc,
		Checkers: map[health.HealthCategory]health.Checker{
			health.CategoryCatalog: catalogChecker,
			health.CategoryLookups: lookupChecker,
		},
		Scheduler: sched,
		Logs:      log,
		Metrics:   m,
	}, log.Logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	// The catalog may not be reachable yet when the host has just booted.
	go checkCatalogAtStartup(ctx, catalogChecker, log)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.Server.Address()).Msg("HTTP server listening")
		serverErr <- server.Start(cfg.Server.Address())
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := sched.Stop(); err != nil {
		log.Error().Err(err).Msg("scheduler shutdown failed")
	}

	log.Info().Msg("stopped")
	return nil
}

func checkCatalogAtStartup(ctx context.Context, checker *health.CatalogChecker, log *logger.Logger) {
	retry := startup.DefaultRetryConfig()
	retry.Retryable = func(err error) bool {
		return startup.IsNetworkError(err) || errors.Is(err, tmdb.ErrRateLimited)
	}

	err := startup.WithRetry(ctx, "catalog check", retry, checker.Check, log.WithComponent("startup"))
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Warn().Err(err).Msg("catalog is unavailable; selections will fail until it recovers")
	}
}
