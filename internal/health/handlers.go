package health

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Checker runs the check behind one health category.
type Checker interface {
	Check(ctx context.Context) error
}

// Handlers provides HTTP handlers for health endpoints.
type Handlers struct {
	health   *Service
	checkers map[HealthCategory]Checker
}

// NewHandlers creates new health handlers. checkers maps a category to the
// check run by POST /:category/test.
func NewHandlers(health *Service, checkers map[HealthCategory]Checker) *Handlers {
	return &Handlers{
		health:   health,
		checkers: checkers,
	}
}

// RegisterRoutes registers health routes.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAll)
	g.GET("/summary", h.GetSummary)
	g.GET("/:category", h.GetByCategory)
	g.POST("/:category/test", h.TestCategory)
}

// GetAll returns all health items grouped by category.
// GET /api/v1/health
func (h *Handlers) GetAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.health.GetAll())
}

// GetSummary returns summary counts.
// GET /api/v1/health/summary
func (h *Handlers) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.health.GetSummary())
}

// GetByCategory returns health items for a specific category.
// GET /api/v1/health/:category
func (h *Handlers) GetByCategory(c echo.Context) error {
	category := HealthCategory(c.Param("category"))
	if !IsValidCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid health category")
	}
	return c.JSON(http.StatusOK, h.health.GetByCategory(category))
}

// TestCategory runs the category's check now and returns the updated items.
// POST /api/v1/health/:category/test
func (h *Handlers) TestCategory(c echo.Context) error {
	category := HealthCategory(c.Param("category"))
	if !IsValidCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid health category")
	}

	checker, ok := h.checkers[category]
	if !ok {
		return c.JSON(http.StatusOK, map[string]string{"message": "no check for category"})
	}

	result := map[string]any{"success": true}
	if err := checker.Check(c.Request().Context()); err != nil {
		result["success"] = false
		result["message"] = err.Error()
	}
	result["items"] = h.health.GetByCategory(category)
	return c.JSON(http.StatusOK, result)
}
