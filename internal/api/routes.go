package api

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/reelpick/reelpick/internal/api/handlers"
	apimw "github.com/reelpick/reelpick/internal/api/middleware"
	"github.com/reelpick/reelpick/internal/discovery"
	"github.com/reelpick/reelpick/internal/health"
	"github.com/reelpick/reelpick/internal/metadata"
	"github.com/reelpick/reelpick/web"
)

func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.Recover())

	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	s.echo.Use(apimw.SecurityHeaders())

	// Selection forms are tiny.
	s.echo.Use(middleware.BodyLimit("64K"))

	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogMethod:    true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		Skipper:      apimw.SkipStatic,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Str("method", v.Method).
					Str("uri", v.URI).
					Str("requestId", v.RequestID).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Err(v.Error).
					Msg("request error")
			} else {
				s.logger.Info().
					Str("method", v.Method).
					Str("uri", v.URI).
					Str("requestId", v.RequestID).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Msg("request")
			}
			return nil
		},
	}))

	s.echo.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
}

// setupRoutes configures pages and API routes.
func (s *Server) setupRoutes() error {
	s.echo.GET("/health", s.healthCheck)

	if err := s.setupPageRoutes(); err != nil {
		return err
	}

	api := s.echo.Group("/api/v1")
	api.GET("/status", s.getStatus)

	metadata.NewHandlers(s.metadataService).RegisterRoutes(api)
	discovery.NewHandlers(s.discoveryService).RegisterRoutes(api)

	s.setupSystemRoutes(api)
	s.setupSchedulerRoutes(api)

	if s.metrics != nil {
		s.echo.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}
	return nil
}

func (s *Server) setupPageRoutes() error {
	static, err := web.StaticFS()
	if err != nil {
		return fmt.Errorf("failed to load static assets: %w", err)
	}
	s.echo.StaticFS("/static", static)

	s.echo.GET("/", s.indexPage)
	s.echo.POST("/select", s.selectPage)
	return nil
}

func (s *Server) setupSystemRoutes(api *echo.Group) {
	if s.healthService != nil {
		health.NewHandlers(s.healthService, s.healthCheckers).RegisterRoutes(api.Group("/system/health"))
	}
	if s.logs != nil {
		NewLogsHandlers(s.logs).RegisterRoutes(api.Group("/system/logs"))
	}
}

func (s *Server) setupSchedulerRoutes(api *echo.Group) {
	if s.scheduler == nil {
		return
	}
	handlers.NewSchedulerHandler(s.scheduler).RegisterRoutes(api.Group("/scheduler"))
}
