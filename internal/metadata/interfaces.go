package metadata

import (
	"context"

	"github.com/reelpick/reelpick/internal/metadata/tmdb"
)

// TMDBClient defines the interface for TMDB API operations.
type TMDBClient interface {
	Name() string
	IsConfigured() bool
	Test(ctx context.Context) error
	GetGenres(ctx context.Context) ([]tmdb.Genre, error)
	DiscoverMovies(ctx context.Context, query tmdb.DiscoverQuery) (*tmdb.MoviesPage, error)
	SearchKeywords(ctx context.Context, query string) ([]tmdb.Keyword, error)
	GetWatchProviders(ctx context.Context, movieID int) (*tmdb.WatchProvidersResponse, error)
	GetVideos(ctx context.Context, movieID int) ([]tmdb.Video, error)
	GetCredits(ctx context.Context, movieID int) (*tmdb.CreditsResponse, error)
	GetPopularMovies(ctx context.Context, page int) (*tmdb.MoviesPage, error)
	GetImageURL(path string, size string) string
}
