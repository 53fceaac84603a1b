package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelpick/reelpick/internal/logger"
)

func logsEcho(entries []logger.LogEntry) *echo.Echo {
	e := echo.New()
	NewLogsHandlers(stubLogs{entries: entries}).RegisterRoutes(e.Group("/logs"))
	return e
}

func TestLogs_Filters(t *testing.T) {
	e := logsEcho([]logger.LogEntry{
		{Level: "debug", Component: "discovery", Message: "page 1"},
		{Level: "warn", Component: "metadata", Message: "no videos"},
		{Level: "warn", Component: "discovery", Message: "provider lookup failed"},
		{Level: "error", Component: "api", Message: "request error"},
	})

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"page 1", "no videos", "provider lookup failed", "request error"}},
		{"?level=warn", []string{"no videos", "provider lookup failed", "request error"}},
		{"?component=discovery", []string{"page 1", "provider lookup failed"}},
		{"?level=warn&limit=1", []string{"request error"}},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logs"+tt.query, nil))
		require.Equal(t, http.StatusOK, rec.Code, tt.query)

		var got []logger.LogEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		msgs := make([]string, 0, len(got))
		for _, g := range got {
			msgs = append(msgs, g.Message)
		}
		assert.Equal(t, tt.want, msgs, tt.query)
	}
}

func TestLogs_BadQuery(t *testing.T) {
	e := logsEcho(nil)

	for _, q := range []string{"?level=loud", "?limit=-1", "?limit=x"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logs"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestLogs_DownloadWithoutFile(t *testing.T) {
	rec := httptest.NewRecorder()
	logsEcho(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logs/download", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
