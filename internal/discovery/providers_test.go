package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reelpick/reelpick/internal/metadata/tmdb"
)

func TestFilterProviders(t *testing.T) {
	allow := NewProviderSet([]int{8, 9, 15, 337})

	tests := []struct {
		name   string
		resp   *tmdb.WatchProvidersResponse
		region string
		want   []int
	}{
		{
			name:   "nil response",
			resp:   nil,
			region: "US",
			want:   []int{},
		},
		{
			name: "region missing",
			resp: &tmdb.WatchProvidersResponse{Results: map[string]tmdb.RegionProviders{
				"GB": {Flatrate: []tmdb.WatchProvider{{ProviderID: 8}}},
			}},
			region: "US",
			want:   []int{},
		},
		{
			name: "preserves catalog order",
			resp: &tmdb.WatchProvidersResponse{Results: map[string]tmdb.RegionProviders{
				"US": {Flatrate: []tmdb.WatchProvider{{ProviderID: 337}, {ProviderID: 2}, {ProviderID: 8}}},
			}},
			region: "US",
			want:   []int{337, 8},
		},
		{
			name: "rent and buy ignored",
			resp: &tmdb.WatchProvidersResponse{Results: map[string]tmdb.RegionProviders{
				"US": {
					Rent: []tmdb.WatchProvider{{ProviderID: 8}},
					Buy:  []tmdb.WatchProvider{{ProviderID: 9}},
				},
			}},
			region: "US",
			want:   []int{},
		},
		{
			name: "nothing allowed",
			resp: &tmdb.WatchProvidersResponse{Results: map[string]tmdb.RegionProviders{
				"US": {Flatrate: []tmdb.WatchProvider{{ProviderID: 386}, {ProviderID: 531}}},
			}},
			region: "US",
			want:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProviders(tt.resp, tt.region, allow)
			ids := make([]int, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ProviderID)
			}
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestProviderSet(t *testing.T) {
	set := NewProviderSet([]int{337, 8, 15, 8})

	assert.True(t, set.Contains(8))
	assert.True(t, set.Contains(15))
	assert.False(t, set.Contains(9))
	assert.Equal(t, []int{8, 15, 337}, set.IDs())
}
