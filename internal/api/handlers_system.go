package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/health"
)

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getStatus(c echo.Context) error {
	catalog := map[string]any{
		"configured": s.metadataService.IsConfigured(),
		"healthy":    false,
	}
	response := map[string]any{
		"version":       config.Version,
		"startTime":     s.startTime.Format(time.RFC3339),
		"uptime":        time.Since(s.startTime).Round(time.Second).String(),
		"developerMode": s.cfg.DeveloperMode,
		"region":        s.discoveryService.Region(),
		"providers":     s.discoveryService.AllowedProviders(),
		"catalog":       catalog,
	}
	if s.healthService != nil {
		if item := s.healthService.GetItem(health.CategoryCatalog, health.ItemCatalogAPI); item != nil {
			catalog["healthy"] = item.Status == health.StatusOK
			if item.Status != health.StatusOK {
				catalog["message"] = item.Message
			}
			if item.CheckedAt != nil {
				catalog["checkedAt"] = item.CheckedAt.Format(time.RFC3339)
			}
		}
		response["health"] = s.healthService.GetSummary()
	}
	return c.JSON(http.StatusOK, response)
}
