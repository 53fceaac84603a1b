package health

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_StatusTransitions(t *testing.T) {
	svc := NewService(zerolog.Nop())
	svc.RegisterItem(CategoryLookups, "lookups", "Lookups")

	assert.True(t, svc.IsHealthy(CategoryLookups, "lookups"))

	svc.Record(CategoryLookups, "lookups", errors.New("stale"))
	item := svc.GetItem(CategoryLookups, "lookups")
	require.NotNil(t, item)
	assert.Equal(t, StatusWarning, item.Status)
	assert.Equal(t, "stale", item.Message)
	require.NotNil(t, item.Since)
	since := *item.Since

	svc.Record(CategoryLookups, "lookups", errors.New("still stale"))
	item = svc.GetItem(CategoryLookups, "lookups")
	assert.Equal(t, since, *item.Since)

	svc.Record(CategoryLookups, "lookups", nil)
	item = svc.GetItem(CategoryLookups, "lookups")
	assert.Equal(t, StatusOK, item.Status)
	assert.Nil(t, item.Since)
	assert.NotNil(t, item.CheckedAt)
}

func TestService_Record(t *testing.T) {
	svc := NewService(zerolog.Nop())
	svc.RegisterItem(CategoryCatalog, "tmdb", "TMDB")
	svc.RegisterItem(CategoryLookups, "lookups", "Lookups")

	svc.Record(CategoryCatalog, "tmdb", errors.New("401"))
	svc.Record(CategoryLookups, "lookups", errors.New("no posters"))
	assert.Equal(t, StatusError, svc.GetItem(CategoryCatalog, "tmdb").Status)
	assert.Equal(t, StatusWarning, svc.GetItem(CategoryLookups, "lookups").Status)

	svc.Record(CategoryCatalog, "tmdb", nil)
	assert.True(t, svc.IsHealthy(CategoryCatalog, "tmdb"))
}

func TestFailureStatus(t *testing.T) {
	assert.Equal(t, StatusError, FailureStatus(CategoryCatalog))
	assert.Equal(t, StatusWarning, FailureStatus(CategoryLookups))
	assert.Equal(t, StatusError, FailureStatus(HealthCategory("bogus")))
}

func TestService_UnknownItemsAreIgnored(t *testing.T) {
	svc := NewService(zerolog.Nop())

	svc.Record(CategoryCatalog, "missing", errors.New("boom"))
	svc.RegisterItem(HealthCategory("bogus"), "x", "X")

	assert.Nil(t, svc.GetItem(CategoryCatalog, "missing"))
	assert.False(t, svc.IsHealthy(CategoryCatalog, "missing"))
	assert.Empty(t, svc.GetByCategory(HealthCategory("bogus")))
}

func TestService_Summary(t *testing.T) {
	svc := NewService(zerolog.Nop())
	svc.RegisterItem(CategoryCatalog, "tmdb", "TMDB")
	svc.RegisterItem(CategoryLookups, "lookups", "Lookups")

	summary := svc.GetSummary()
	assert.False(t, summary.HasIssues)
	require.Len(t, summary.Categories, 2)

	svc.Record(CategoryCatalog, "tmdb", errors.New("down"))
	summary = svc.GetSummary()
	assert.True(t, summary.HasIssues)
	assert.Equal(t, CategorySummary{Category: CategoryCatalog, Error: 1}, summary.Categories[0])
	assert.Equal(t, 1, summary.Categories[1].Total())
}

func TestHealthItem_MarshalJSON_OmitsMessageWhenOK(t *testing.T) {
	data, err := json.Marshal(HealthItem{ID: "tmdb", Status: StatusOK, Message: "old"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old")
	assert.NotContains(t, string(data), "since")
}

type stubCatalog struct {
	configured bool
	err        error
}

func (p stubCatalog) IsConfigured() bool { return p.configured }
func (p stubCatalog) Test(ctx context.Context) error { return p.err }

type stubLookups struct {
	err error
}

func (l stubLookups) CheckLookups(ctx context.Context) error { return l.err }

func TestCatalogChecker(t *testing.T) {
	svc := NewService(zerolog.Nop())

	checker := NewCatalogChecker(svc, stubCatalog{configured: true}, zerolog.Nop())
	require.NoError(t, checker.Check(context.Background()))
	assert.True(t, svc.IsHealthy(CategoryCatalog, ItemCatalogAPI))

	checker = NewCatalogChecker(svc, stubCatalog{configured: true, err: errors.New("timeout")}, zerolog.Nop())
	require.Error(t, checker.Check(context.Background()))
	item := svc.GetItem(CategoryCatalog, ItemCatalogAPI)
	assert.Equal(t, StatusError, item.Status)
	assert.Equal(t, "timeout", item.Message)

	checker = NewCatalogChecker(svc, stubCatalog{}, zerolog.Nop())
	require.Error(t, checker.Check(context.Background()))
	assert.Equal(t, "API key is not configured", svc.GetItem(CategoryCatalog, ItemCatalogAPI).Message)
}

func TestLookupChecker(t *testing.T) {
	svc := NewService(zerolog.Nop())

	failing := NewLookupChecker(svc, stubLookups{err: errors.New("no posters")})
	require.Error(t, failing.Check(context.Background()))
	assert.Equal(t, StatusWarning, svc.GetItem(CategoryLookups, ItemLookups).Status)

	ok := NewLookupChecker(svc, stubLookups{})
	require.NoError(t, ok.Check(context.Background()))
	assert.True(t, svc.IsHealthy(CategoryLookups, ItemLookups))
}
