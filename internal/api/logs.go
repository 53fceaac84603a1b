package api

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/reelpick/reelpick/internal/logger"
)

// LogsProvider exposes the in-memory log capture and the rotated log file.
type LogsProvider interface {
	GetRecentLogs() []logger.LogEntry
	GetLogFilePath() string
}

// LogsHandlers serves /api/v1/system/logs.
type LogsHandlers struct {
	provider LogsProvider
}

func NewLogsHandlers(provider LogsProvider) *LogsHandlers {
	return &LogsHandlers{provider: provider}
}

func (h *LogsHandlers) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetRecentLogs)
	g.GET("/download", h.DownloadLogFile)
}

// GetRecentLogs returns captured entries, oldest first.
// Optional query parameters: level (minimum level), component, limit (newest N).
// GET /api/v1/system/logs
func (h *LogsHandlers) GetRecentLogs(c echo.Context) error {
	minLevel := zerolog.TraceLevel
	if raw := c.QueryParam("level"); raw != "" {
		lvl, err := zerolog.ParseLevel(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown log level")
		}
		minLevel = lvl
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	component := c.QueryParam("component")
	entries := make([]logger.LogEntry, 0)
	for _, e := range h.provider.GetRecentLogs() {
		if component != "" && e.Component != component {
			continue
		}
		if lvl, err := zerolog.ParseLevel(e.Level); err == nil && lvl < minLevel {
			continue
		}
		entries = append(entries, e)
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return c.JSON(http.StatusOK, entries)
}

// DownloadLogFile sends the active log file as an attachment.
// GET /api/v1/system/logs/download
func (h *LogsHandlers) DownloadLogFile(c echo.Context) error {
	path := h.provider.GetLogFilePath()
	if path == "" {
		return echo.NewHTTPError(http.StatusNotFound, "file logging is disabled")
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return echo.NewHTTPError(http.StatusNotFound, "log file not found")
	}
	return c.Attachment(path, "reelpick.log")
}
