package metadata

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Handlers provides HTTP handlers for catalog lookups.
type Handlers struct {
	service *Service
}

// NewHandlers creates new metadata handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the metadata routes.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("/genres", h.GetGenres)
	g.GET("/posters", h.GetPosters)
	g.GET("/movies/:id/details", h.GetDetails)
}

// GetGenres returns the genre list.
// GET /api/v1/genres
func (h *Handlers) GetGenres(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Genres(c.Request().Context()))
}

// GetPosters returns the popular-movie poster wall.
// GET /api/v1/posters
func (h *Handlers) GetPosters(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Posters(c.Request().Context()))
}

// GetDetails returns the trailer and top-billed cast of a movie.
// GET /api/v1/movies/:id/details
func (h *Handlers) GetDetails(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return c.JSON(http.StatusOK, h.service.Enrich(c.Request().Context(), id))
}
