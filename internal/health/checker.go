package health

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Item IDs tracked by the checkers.
const (
	ItemCatalogAPI = "tmdb"
	ItemLookups    = "lookups"
)

const checkTimeout = 15 * time.Second

// CatalogTester is implemented by the metadata service.
type CatalogTester interface {
	IsConfigured() bool
	Test(ctx context.Context) error
}

// LookupVerifier is implemented by the metadata service.
type LookupVerifier interface {
	CheckLookups(ctx context.Context) error
}

var errNotConfigured = errors.New("API key is not configured")

// CatalogChecker tests the catalog API and records the outcome.
type CatalogChecker struct {
	health  *Service
	catalog CatalogTester
	logger  zerolog.Logger
}

// NewCatalogChecker creates a catalog checker and registers its health item.
func NewCatalogChecker(healthSvc *Service, catalog CatalogTester, logger zerolog.Logger) *CatalogChecker {
	healthSvc.RegisterItem(CategoryCatalog, ItemCatalogAPI, "TMDB")
	return &CatalogChecker{
		health:  healthSvc,
		catalog: catalog,
		logger:  logger.With().Str("component", "catalog-checker").Logger(),
	}
}

// Check tests the catalog once. The returned error is also recorded as the item status.
func (c *CatalogChecker) Check(ctx context.Context) error {
	if !c.catalog.IsConfigured() {
		c.health.Record(CategoryCatalog, ItemCatalogAPI, errNotConfigured)
		return errNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	err := c.catalog.Test(ctx)
	c.health.Record(CategoryCatalog, ItemCatalogAPI, err)
	if err == nil {
		c.logger.Debug().Msg("Catalog reachable")
	}
	return err
}

// LookupChecker loads the genre list and poster wall and records the outcome.
// A failure is only a warning: the index page still renders without them.
type LookupChecker struct {
	health  *Service
	lookups LookupVerifier
}

// NewLookupChecker creates a lookup checker and registers its health item.
func NewLookupChecker(healthSvc *Service, lookups LookupVerifier) *LookupChecker {
	healthSvc.RegisterItem(CategoryLookups, ItemLookups, "Genres and posters")
	return &LookupChecker{health: healthSvc, lookups: lookups}
}

// Check loads the lookups once.
func (c *LookupChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	err := c.lookups.CheckLookups(ctx)
	c.health.Record(CategoryLookups, ItemLookups, err)
	return err
}
