package health

import (
	"encoding/json"
	"slices"
	"time"
)

// HealthStatus represents the health state of an item.
type HealthStatus string

const (
	StatusOK      HealthStatus = "ok"
	StatusWarning HealthStatus = "warning"
	StatusError   HealthStatus = "error"
)

// HealthCategory groups items that are checked together.
type HealthCategory string

const (
	// CategoryCatalog tracks connectivity to the movie catalog API.
	CategoryCatalog HealthCategory = "catalog"
	// CategoryLookups tracks the genre and poster lookups behind the index page.
	CategoryLookups HealthCategory = "lookups"
)

// categories lists every category in display order together with the status
// a failed check puts its items in. Selections cannot work without the
// catalog, while the index page renders without lookups.
var categories = []struct {
	category HealthCategory
	failure  HealthStatus
}{
	{CategoryCatalog, StatusError},
	{CategoryLookups, StatusWarning},
}

// AllCategories returns all health categories in display order.
func AllCategories() []HealthCategory {
	out := make([]HealthCategory, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.category)
	}
	return out
}

func IsValidCategory(category HealthCategory) bool {
	return slices.Contains(AllCategories(), category)
}

// FailureStatus is the status a failed check records for category.
func FailureStatus(category HealthCategory) HealthStatus {
	for _, c := range categories {
		if c.category == category {
			return c.failure
		}
	}
	return StatusError
}

// HealthItem is a single tracked dependency.
type HealthItem struct {
	ID       string         `json:"id"`
	Category HealthCategory `json:"category"`
	Name     string         `json:"name"`
	Status   HealthStatus   `json:"status"`
	Message  string         `json:"message,omitempty"`
	// Since is when the item left the OK state.
	Since *time.Time `json:"since,omitempty"`
	// CheckedAt is the last time a check reported on the item.
	CheckedAt *time.Time `json:"checkedAt,omitempty"`
}

// MarshalJSON drops the stale message of an item that is OK again.
func (h HealthItem) MarshalJSON() ([]byte, error) {
	type plain HealthItem
	p := plain(h)
	if h.Status == StatusOK {
		p.Since = nil
		p.Message = ""
	}
	return json.Marshal(p)
}

// CategorySummary provides counts for a health category.
type CategorySummary struct {
	Category HealthCategory `json:"category"`
	OK       int            `json:"ok"`
	Warning  int            `json:"warning"`
	Error    int            `json:"error"`
}

func (c CategorySummary) Total() int {
	return c.OK + c.Warning + c.Error
}

func (c CategorySummary) HasIssues() bool {
	return c.Warning > 0 || c.Error > 0
}

// HealthResponse contains all health items grouped by category.
type HealthResponse struct {
	Catalog []HealthItem `json:"catalog"`
	Lookups []HealthItem `json:"lookups"`
}

// HealthSummary provides an overview of system health.
type HealthSummary struct {
	Categories []CategorySummary `json:"categories"`
	HasIssues  bool              `json:"hasIssues"`
}
