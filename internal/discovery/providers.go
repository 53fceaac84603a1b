package discovery

import (
	"slices"

	"github.com/reelpick/reelpick/internal/metadata/tmdb"
)

// ProviderSet is the allow-list of streaming provider IDs a pick must be on.
type ProviderSet map[int]struct{}

// NewProviderSet builds an allow-list from provider IDs.
func NewProviderSet(ids []int) ProviderSet {
	set := make(ProviderSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is allowed.
func (s ProviderSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the allowed IDs in ascending order.
func (s ProviderSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// FilterProviders returns the flat-rate providers for region whose ID is in allow,
// in the order the catalog listed them. A nil response or a region without
// flat-rate data yields an empty slice.
func FilterProviders(resp *tmdb.WatchProvidersResponse, region string, allow ProviderSet) []tmdb.WatchProvider {
	matched := []tmdb.WatchProvider{}
	if resp == nil {
		return matched
	}
	regional, ok := resp.Results[region]
	if !ok {
		return matched
	}
	for _, p := range regional.Flatrate {
		if allow.Contains(p.ProviderID) {
			matched = append(matched, p)
		}
	}
	return matched
}
