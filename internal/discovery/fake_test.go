package discovery

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/metadata"
	"github.com/reelpick/reelpick/internal/metadata/tmdb"
)

// fakeCatalog is a scriptable catalog client that records every call.
type fakeCatalog struct {
	mu sync.Mutex

	pages       map[int][]tmdb.MovieResult
	pageErr     map[int]error
	providers   map[int]*tmdb.WatchProvidersResponse
	providerErr map[int]error
	keywords    []tmdb.Keyword
	keywordErr  error
	videos      map[int][]tmdb.Video
	credits     map[int]*tmdb.CreditsResponse

	// afterProviders runs once a provider lookup has been answered.
	afterProviders func(movieID int)

	discoverCalls []tmdb.DiscoverQuery
	providerCalls []int
	keywordCalls  []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		pages:       make(map[int][]tmdb.MovieResult),
		pageErr:     make(map[int]error),
		providers:   make(map[int]*tmdb.WatchProvidersResponse),
		providerErr: make(map[int]error),
		videos:      make(map[int][]tmdb.Video),
		credits:     make(map[int]*tmdb.CreditsResponse),
	}
}

func (f *fakeCatalog) Name() string { return "fake" }
func (f *fakeCatalog) IsConfigured() bool { return true }
func (f *fakeCatalog) Test(ctx context.Context) error { return nil }

func (f *fakeCatalog) GetGenres(ctx context.Context) ([]tmdb.Genre, error) {
	return []tmdb.Genre{}, nil
}

func (f *fakeCatalog) DiscoverMovies(ctx context.Context, query tmdb.DiscoverQuery) (*tmdb.MoviesPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.discoverCalls = append(f.discoverCalls, query)
	if err := f.pageErr[query.Page]; err != nil {
		return nil, err
	}
	return &tmdb.MoviesPage{Page: query.Page, Results: f.pages[query.Page], TotalPages: 500}, nil
}

func (f *fakeCatalog) SearchKeywords(ctx context.Context, query string) ([]tmdb.Keyword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keywordCalls = append(f.keywordCalls, query)
	if f.keywordErr != nil {
		return nil, f.keywordErr
	}
	return f.keywords, nil
}

func (f *fakeCatalog) GetWatchProviders(ctx context.Context, movieID int) (*tmdb.WatchProvidersResponse, error) {
	if f.afterProviders != nil {
		defer f.afterProviders(movieID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.providerCalls = append(f.providerCalls, movieID)
	if err := f.providerErr[movieID]; err != nil {
		return nil, err
	}
	if resp, ok := f.providers[movieID]; ok {
		return resp, nil
	}
	return &tmdb.WatchProvidersResponse{ID: movieID}, nil
}

func (f *fakeCatalog) GetVideos(ctx context.Context, movieID int) ([]tmdb.Video, error) {
	return f.videos[movieID], nil
}

func (f *fakeCatalog) GetCredits(ctx context.Context, movieID int) (*tmdb.CreditsResponse, error) {
	if c, ok := f.credits[movieID]; ok {
		return c, nil
	}
	return &tmdb.CreditsResponse{ID: movieID}, nil
}

func (f *fakeCatalog) GetPopularMovies(ctx context.Context, page int) (*tmdb.MoviesPage, error) {
	return &tmdb.MoviesPage{Page: page}, nil
}

func (f *fakeCatalog) GetImageURL(path string, size string) string {
	if path == "" {
		return ""
	}
	return "https://img.test/" + size + path
}

func (f *fakeCatalog) outboundCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.discoverCalls) + len(f.providerCalls) + len(f.keywordCalls)
}

func (f *fakeCatalog) discoveredPages() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	pages := make([]int, 0, len(f.discoverCalls))
	for _, q := range f.discoverCalls {
		pages = append(pages, q.Page)
	}
	return pages
}

// onUS registers flat-rate US providers for a movie.
func (f *fakeCatalog) onUS(movieID int, providerIDs ...int) {
	flatrate := make([]tmdb.WatchProvider, 0, len(providerIDs))
	for _, id := range providerIDs {
		flatrate = append(flatrate, tmdb.WatchProvider{ProviderID: id, ProviderName: providerName(id), LogoPath: "/logo" + providerName(id) + ".png"})
	}
	f.providers[movieID] = &tmdb.WatchProvidersResponse{
		ID:      movieID,
		Results: map[string]tmdb.RegionProviders{"US": {Flatrate: flatrate}},
	}
}

func providerName(id int) string {
	switch id {
	case 8:
		return "Netflix"
	case 9:
		return "Amazon Prime Video"
	case 15:
		return "Hulu"
	case 337:
		return "Disney Plus"
	default:
		return "Other"
	}
}

func movie(id int, title string) tmdb.MovieResult {
	poster := "/poster" + title + ".jpg"
	return tmdb.MovieResult{ID: id, Title: title, PosterPath: &poster, ReleaseDate: "2001-01-01", VoteAverage: 7.1}
}

func testDiscoveryConfig() config.DiscoveryConfig {
	return config.DiscoveryConfig{
		Region:         "US",
		Providers:      []int{8, 9, 15, 337},
		RandomAttempts: 5,
		RandomPageMax:  100,
		MaxPages:       10,
		KeywordLimit:   5,
		PosterPages:    3,
	}
}

func newTestService(t *testing.T, catalog *fakeCatalog) *Service {
	t.Helper()
	meta := metadata.NewService(catalog, 3, zerolog.Nop())
	svc := NewService(meta, testDiscoveryConfig(), zerolog.Nop())
	svc.SetRand(rand.New(rand.NewPCG(1, 2)))
	return svc
}

func strPtr(s string) *string { return &s }
