package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/discovery"
	"github.com/reelpick/reelpick/internal/health"
	"github.com/reelpick/reelpick/internal/metadata"
	"github.com/reelpick/reelpick/internal/metrics"
	"github.com/reelpick/reelpick/internal/scheduler"
)

// Deps are the services the HTTP layer is built on. Scheduler, Logs and
// Metrics are optional; their routes are not registered when nil.
type Deps struct {
	Config    *config.Config
	Metadata  *metadata.Service
	Discovery *discovery.Service
	Health    *health.Service
	Checkers  map[health.HealthCategory]health.Checker
	Scheduler *scheduler.Scheduler
	Logs      LogsProvider
	Metrics   *metrics.Metrics
}

// Server handles HTTP requests for the ReelPick pages and API.
type Server struct {
	echo      *echo.Echo
	logger    zerolog.Logger
	cfg       *config.Config
	startTime time.Time

	metadataService  *metadata.Service
	discoveryService *discovery.Service
	healthService    *health.Service
	healthCheckers   map[health.HealthCategory]health.Checker
	scheduler        *scheduler.Scheduler
	logs             LogsProvider
	metrics          *metrics.Metrics
}

// NewServer creates a new server instance with all routes registered.
func NewServer(deps Deps, logger zerolog.Logger) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	e.Renderer = renderer

	s := &Server{
		echo:             e,
		logger:           logger.With().Str("component", "api").Logger(),
		cfg:              deps.Config,
		startTime:        time.Now(),
		metadataService:  deps.Metadata,
		discoveryService: deps.Discovery,
		healthService:    deps.Health,
		healthCheckers:   deps.Checkers,
		scheduler:        deps.Scheduler,
		logs:             deps.Logs,
		metrics:          deps.Metrics,
	}

	s.setupMiddleware()
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins listening for HTTP requests. It returns nil after Shutdown.
func (s *Server) Start(address string) error {
	s.logger.Info().Str("address", address).Msg("Starting HTTP server")

	if err := s.echo.Start(address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// Echo returns the underlying Echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
