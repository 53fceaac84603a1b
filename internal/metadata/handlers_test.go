package metadata

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelpick/reelpick/internal/metadata/mock"
)

func setupTestHandlers() *Handlers {
	return NewHandlers(NewService(mock.NewTMDBClient(), 2, zerolog.Nop()))
}

func TestHandlers_GetGenres(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil), rec)

	require.NoError(t, setupTestHandlers().GetGenres(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var genres []Genre
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &genres))
	assert.NotEmpty(t, genres)
}

func TestHandlers_GetPosters(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/posters", nil), rec)

	require.NoError(t, setupTestHandlers().GetPosters(c))

	var posters []Poster
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posters))
	assert.Len(t, posters, 8)
}

func TestHandlers_GetDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("105")

	require.NoError(t, setupTestHandlers().GetDetails(c))

	var details Details
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	assert.Equal(t, "sample-bttf", details.TrailerKey)
	require.Len(t, details.Cast, 2)
	assert.Equal(t, "Lea Thompson", details.Cast[1].Name)
}

func TestHandlers_GetDetails_InvalidID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := setupTestHandlers().GetDetails(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
