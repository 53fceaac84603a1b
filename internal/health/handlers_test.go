package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlers(catalogErr error) (*echo.Echo, *Service) {
	svc := NewService(zerolog.Nop())
	checker := NewCatalogChecker(svc, stubCatalog{configured: true, err: catalogErr}, zerolog.Nop())

	e := echo.New()
	NewHandlers(svc, map[HealthCategory]Checker{CategoryCatalog: checker}).RegisterRoutes(e.Group("/api/v1/health"))
	return e, svc
}

func TestHandlers_GetAll(t *testing.T) {
	e, _ := setupHandlers(nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Catalog, 1)
	assert.Equal(t, ItemCatalogAPI, resp.Catalog[0].ID)
	assert.Empty(t, resp.Lookups)
}

func TestHandlers_GetByCategory_Invalid(t *testing.T) {
	e, _ := setupHandlers(nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/downloads", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlers_TestCategory(t *testing.T) {
	e, svc := setupHandlers(errors.New("connection refused"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/health/catalog/test", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Items   []HealthItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "connection refused", resp.Message)
	assert.False(t, svc.IsHealthy(CategoryCatalog, ItemCatalogAPI))
}

func TestHandlers_TestCategory_NoChecker(t *testing.T) {
	e, _ := setupHandlers(nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/health/lookups/test", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "no check for category")
}
