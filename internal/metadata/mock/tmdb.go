// Package mock provides an in-memory sample catalog for developer mode.
package mock

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/reelpick/reelpick/internal/metadata/tmdb"
)

const pageSize = 4

// TMDBClient serves a fixed sample catalog through the TMDB client interface.
type TMDBClient struct {
	imageBaseURL string
}

// NewTMDBClient creates a new mock TMDB client.
func NewTMDBClient() *TMDBClient {
	return &TMDBClient{imageBaseURL: "https://image.tmdb.org/t/p"}
}

func (c *TMDBClient) Name() string {
	return "tmdb-mock"
}

func (c *TMDBClient) IsConfigured() bool {
	return true
}

func (c *TMDBClient) Test(ctx context.Context) error {
	return ctx.Err()
}

func (c *TMDBClient) GetImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return c.imageBaseURL + "/" + size + path
}

func (c *TMDBClient) GetGenres(ctx context.Context) ([]tmdb.Genre, error) {
	return slices.Clone(mockGenres), nil
}

// DiscoverMovies filters the sample movies by with_genres, with_keywords
// (pipe-separated IDs match any), the primary release date range,
// vote_average.gte and the runtime range, then pages the result.
// Pages past the end wrap around so random page picks still land on movies.
func (c *TMDBClient) DiscoverMovies(ctx context.Context, query tmdb.DiscoverQuery) (*tmdb.MoviesPage, error) {
	genre, _ := strconv.Atoi(query.Filters["with_genres"])
	keywords := parseIDs(query.Filters["with_keywords"])
	from := query.Filters["primary_release_date.gte"]
	to := query.Filters["primary_release_date.lte"]
	minVote, _ := strconv.ParseFloat(query.Filters["vote_average.gte"], 64)
	minRuntime, hasMin := atoi(query.Filters["with_runtime.gte"])
	maxRuntime, hasMax := atoi(query.Filters["with_runtime.lte"])

	var matched []tmdb.MovieResult
	for _, m := range mockMovies {
		if genre != 0 && !slices.Contains(m.movie.GenreIDs, genre) {
			continue
		}
		if len(keywords) > 0 && !slices.ContainsFunc(keywords, func(id int) bool {
			return slices.Contains(m.keywords, id)
		}) {
			continue
		}
		if from != "" && m.movie.ReleaseDate < from {
			continue
		}
		if to != "" && m.movie.ReleaseDate > to {
			continue
		}
		if m.movie.VoteAverage < minVote {
			continue
		}
		if hasMin && m.movie.Runtime < minRuntime {
			continue
		}
		if hasMax && m.movie.Runtime > maxRuntime {
			continue
		}
		matched = append(matched, m.movie)
	}

	return paginate(matched, wrapPage(query.Page, len(matched))), nil
}

func (c *TMDBClient) SearchKeywords(ctx context.Context, query string) ([]tmdb.Keyword, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	var results []tmdb.Keyword
	for _, kw := range mockKeywords {
		if strings.Contains(kw.Name, query) {
			results = append(results, kw)
		}
	}
	return results, nil
}

func (c *TMDBClient) GetWatchProviders(ctx context.Context, movieID int) (*tmdb.WatchProvidersResponse, error) {
	m, ok := findMovie(movieID)
	if !ok {
		return nil, tmdb.ErrNotFound
	}

	flatrate := make([]tmdb.WatchProvider, 0, len(m.providers))
	for _, id := range m.providers {
		flatrate = append(flatrate, mockProviders[id])
	}
	return &tmdb.WatchProvidersResponse{
		ID: movieID,
		Results: map[string]tmdb.RegionProviders{
			"US": {Flatrate: flatrate},
		},
	}, nil
}

func (c *TMDBClient) GetVideos(ctx context.Context, movieID int) ([]tmdb.Video, error) {
	m, ok := findMovie(movieID)
	if !ok {
		return nil, tmdb.ErrNotFound
	}
	if m.trailer == "" {
		return []tmdb.Video{}, nil
	}
	return []tmdb.Video{
		{Key: m.trailer + "-teaser", Site: "YouTube", Type: "Teaser", Name: "Teaser"},
		{Key: m.trailer, Site: "YouTube", Type: "Trailer", Name: "Official Trailer", Official: true},
	}, nil
}

func (c *TMDBClient) GetCredits(ctx context.Context, movieID int) (*tmdb.CreditsResponse, error) {
	m, ok := findMovie(movieID)
	if !ok {
		return nil, tmdb.ErrNotFound
	}
	return &tmdb.CreditsResponse{ID: movieID, Cast: slices.Clone(m.cast)}, nil
}

func (c *TMDBClient) GetPopularMovies(ctx context.Context, page int) (*tmdb.MoviesPage, error) {
	all := make([]tmdb.MovieResult, 0, len(mockMovies))
	for _, m := range mockMovies {
		all = append(all, m.movie)
	}
	return paginate(all, page), nil
}

func findMovie(id int) (mockMovie, bool) {
	for _, m := range mockMovies {
		if m.movie.ID == id {
			return m, true
		}
	}
	return mockMovie{}, false
}

func paginate(movies []tmdb.MovieResult, page int) *tmdb.MoviesPage {
	if page < 1 {
		page = 1
	}
	totalPages := (len(movies) + pageSize - 1) / pageSize
	resp := &tmdb.MoviesPage{
		Page:         page,
		Results:      []tmdb.MovieResult{},
		TotalPages:   totalPages,
		TotalResults: len(movies),
	}

	start := (page - 1) * pageSize
	if start >= len(movies) {
		return resp
	}
	resp.Results = slices.Clone(movies[start:min(start+pageSize, len(movies))])
	return resp
}

// wrapPage maps a page past the last one back into range.
func wrapPage(page, total int) int {
	totalPages := (total + pageSize - 1) / pageSize
	if page < 1 || totalPages == 0 {
		return page
	}
	return (page-1)%totalPages + 1
}

func atoi(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return v, err == nil
}

func parseIDs(s string) []int {
	var ids []int
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		if id, err := strconv.Atoi(part); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
