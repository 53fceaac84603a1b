package discovery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers provides HTTP handlers for movie selection.
type Handlers struct {
	service *Service
}

// NewHandlers creates new discovery handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the selection routes.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.POST("/select", h.Select)
}

// Select picks a movie for the submitted criteria.
// POST /api/v1/select
func (h *Handlers) Select(c echo.Context) error {
	var form SelectionForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	selection, err := h.service.Select(c.Request().Context(), form)
	return c.JSON(StatusFor(err), selection)
}

// StatusFor maps a selection error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrKeywordNotFound), errors.Is(err, ErrNoMatch):
		return http.StatusNotFound
	default:
		return http.StatusServiceUnavailable
	}
}
