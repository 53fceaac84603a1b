package health

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Service keeps the in-memory health state of the catalog and lookups.
// Nothing is persisted; every item starts OK after a restart.
type Service struct {
	mu     sync.RWMutex
	items  map[HealthCategory]map[string]*HealthItem
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(logger zerolog.Logger) *Service {
	s := &Service{
		items:  make(map[HealthCategory]map[string]*HealthItem, len(categories)),
		logger: logger.With().Str("component", "health").Logger(),
		now:    time.Now,
	}
	for _, cat := range AllCategories() {
		s.items[cat] = make(map[string]*HealthItem)
	}
	return s
}

// RegisterItem starts tracking an item as OK. Unknown categories are ignored
// and an item that is already registered keeps its status.
func (s *Service) RegisterItem(category HealthCategory, id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.items[category]
	if !ok {
		s.logger.Warn().Str("category", string(category)).Msg("Unknown health category")
		return
	}
	if _, exists := bucket[id]; exists {
		return
	}
	bucket[id] = &HealthItem{ID: id, Category: category, Name: name, Status: StatusOK}
}

// Record stores the outcome of a check: OK when err is nil, otherwise the
// category's failure status with the error text.
func (s *Service) Record(category HealthCategory, id string, err error) {
	if err == nil {
		s.setStatus(category, id, StatusOK, "")
		return
	}
	s.setStatus(category, id, FailureStatus(category), err.Error())
}

func (s *Service) setStatus(category HealthCategory, id string, status HealthStatus, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[category][id]
	if !ok {
		s.logger.Warn().
			Str("category", string(category)).
			Str("id", id).
			Msg("Status update for unregistered item")
		return
	}

	now := s.now()
	item.CheckedAt = &now

	if item.Status == status && item.Message == message {
		return
	}

	previous := item.Status
	item.Status = status
	item.Message = message
	switch {
	case status == StatusOK:
		item.Since = nil
	case previous == StatusOK:
		item.Since = &now
	}

	event := s.logger.Info()
	if status != StatusOK {
		event = s.logger.Warn()
	}
	event.
		Str("category", string(category)).
		Str("id", id).
		Str("from", string(previous)).
		Str("to", string(status)).
		Str("message", message).
		Msg("Health status changed")
}

// GetAll returns every item grouped by category.
func (s *Service) GetAll() *HealthResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &HealthResponse{
		Catalog: s.snapshot(CategoryCatalog),
		Lookups: s.snapshot(CategoryLookups),
	}
}

func (s *Service) GetByCategory(category HealthCategory) []HealthItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(category)
}

// GetItem returns a copy of one item, or nil when it is not registered.
func (s *Service) GetItem(category HealthCategory, id string) *HealthItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[category][id]
	if !ok {
		return nil
	}
	c := *item
	return &c
}

// GetSummary counts items per status for every category.
func (s *Service) GetSummary() *HealthSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := &HealthSummary{Categories: make([]CategorySummary, 0, len(categories))}
	for _, cat := range AllCategories() {
		cs := CategorySummary{Category: cat}
		for _, item := range s.items[cat] {
			switch item.Status {
			case StatusOK:
				cs.OK++
			case StatusWarning:
				cs.Warning++
			case StatusError:
				cs.Error++
			}
		}
		summary.HasIssues = summary.HasIssues || cs.HasIssues()
		summary.Categories = append(summary.Categories, cs)
	}
	return summary
}

// IsHealthy reports whether the item is registered and OK.
func (s *Service) IsHealthy(category HealthCategory, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[category][id]
	return ok && item.Status == StatusOK
}

// snapshot copies a category's items ordered by ID. Callers hold the lock.
func (s *Service) snapshot(category HealthCategory) []HealthItem {
	items := make([]HealthItem, 0, len(s.items[category]))
	for _, item := range s.items[category] {
		items = append(items, *item)
	}
	slices.SortFunc(items, func(a, b HealthItem) int {
		return strings.Compare(a.ID, b.ID)
	})
	return items
}
