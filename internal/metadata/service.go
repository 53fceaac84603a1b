package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/reelpick/reelpick/internal/metadata/tmdb"
)

var ErrNotConfigured = errors.New("catalog API key is not configured")

const (
	videoTypeTrailer = "Trailer"
	videoSiteYouTube = "YouTube"

	maxCastEntries = 3
)

// Service wraps the catalog client with the read-through lookups used by the
// front end: genres, keywords, the poster wall and per-movie details.
// Lookups are best-effort: a failed call yields an empty result and a warning.
type Service struct {
	tmdb        TMDBClient
	logger      zerolog.Logger
	posterPages int
}

// NewService creates a metadata service on top of a catalog client.
// posterPages bounds how many popular-movie pages feed the poster wall.
func NewService(client TMDBClient, posterPages int, logger zerolog.Logger) *Service {
	if posterPages < 0 {
		posterPages = 0
	}
	return &Service{
		tmdb:        client,
		logger:      logger.With().Str("component", "metadata").Logger(),
		posterPages: posterPages,
	}
}

// Client returns the underlying catalog client.
func (s *Service) Client() TMDBClient {
	return s.tmdb
}

// IsConfigured reports whether the catalog can be queried.
func (s *Service) IsConfigured() bool {
	return s.tmdb.IsConfigured()
}

// Test checks catalog connectivity.
func (s *Service) Test(ctx context.Context) error {
	if !s.tmdb.IsConfigured() {
		return ErrNotConfigured
	}
	if err := s.tmdb.Test(ctx); err != nil {
		return fmt.Errorf("%s: %w", s.tmdb.Name(), err)
	}
	return nil
}

// Genres returns the genre list for the selection form, or an empty list on failure.
func (s *Service) Genres(ctx context.Context) []Genre {
	genres, err := s.loadGenres(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to fetch genres")
		return []Genre{}
	}
	return genres
}

func (s *Service) loadGenres(ctx context.Context) ([]Genre, error) {
	genres, err := s.tmdb.GetGenres(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Genre, 0, len(genres))
	for _, g := range genres {
		result = append(result, Genre{ID: g.ID, Name: g.Name})
	}
	return result, nil
}

// ResolveKeywords maps free text to at most limit keyword IDs, in catalog order.
// An empty slice with a nil error means the catalog knows no matching keyword.
func (s *Service) ResolveKeywords(ctx context.Context, text string, limit int) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" || limit < 1 {
		return []int{}, nil
	}

	keywords, err := s.tmdb.SearchKeywords(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("keyword search %q: %w", text, err)
	}

	ids := make([]int, 0, min(limit, len(keywords)))
	for _, kw := range keywords {
		if len(ids) == limit {
			break
		}
		ids = append(ids, kw.ID)
	}

	s.logger.Debug().
		Str("keyword", text).
		Ints("ids", ids).
		Msg("Resolved keyword")

	return ids, nil
}

// Posters returns the poster wall built from the first popular-movie pages.
// A failed page is skipped. Movies without a poster are left out, and a
// poster path already seen on an earlier page is not repeated.
func (s *Service) Posters(ctx context.Context) []Poster {
	return s.loadPosters(ctx)
}

// CheckLookups loads the genre list and the poster wall once and reports
// whether the index page would render with both populated.
func (s *Service) CheckLookups(ctx context.Context) error {
	genres, err := s.loadGenres(ctx)
	if err != nil {
		return fmt.Errorf("genres: %w", err)
	}
	if len(genres) == 0 {
		return errors.New("genres: catalog returned an empty list")
	}
	// A zero poster budget disables the poster wall, so there is nothing to check.
	var posters []Poster
	if s.posterPages > 0 {
		posters = s.loadPosters(ctx)
		if len(posters) == 0 {
			return errors.New("posters: no popular movies returned")
		}
	}

	s.logger.Debug().
		Int("genres", len(genres)).
		Int("posters", len(posters)).
		Msg("Lookups available")
	return nil
}

func (s *Service) loadPosters(ctx context.Context) []Poster {
	posters := make([]Poster, 0)
	seen := make(map[string]struct{})

	for page := 1; page <= s.posterPages; page++ {
		resp, err := s.tmdb.GetPopularMovies(ctx, page)
		if err != nil {
			s.logger.Warn().Err(err).Int("page", page).Msg("Failed to fetch popular movies page")
			if ctx.Err() != nil {
				break
			}
			continue
		}

		for _, m := range resp.Results {
			path := m.Poster()
			if path == "" {
				continue
			}
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			posters = append(posters, Poster{
				MovieID: m.ID,
				Title:   m.Title,
				Path:    path,
				URL:     s.tmdb.GetImageURL(path, tmdb.PosterSize),
			})
		}
	}

	return posters
}

// Trailer returns the key of the first YouTube trailer in catalog order, or "".
func (s *Service) Trailer(ctx context.Context, movieID int) string {
	videos, err := s.tmdb.GetVideos(ctx, movieID)
	if err != nil {
		s.logger.Warn().Err(err).Int("movieId", movieID).Msg("Failed to fetch videos")
		return ""
	}
	return firstTrailerKey(videos)
}

// Cast returns up to three cast entries that have a profile photo, in billing order.
func (s *Service) Cast(ctx context.Context, movieID int) []CastEntry {
	credits, err := s.tmdb.GetCredits(ctx, movieID)
	if err != nil {
		s.logger.Warn().Err(err).Int("movieId", movieID).Msg("Failed to fetch credits")
		return []CastEntry{}
	}

	cast := topBilledWithPhoto(credits.Cast, maxCastEntries)
	for i := range cast {
		cast[i].ProfileURL = s.tmdb.GetImageURL(cast[i].ProfilePath, tmdb.ProfileSize)
	}
	return cast
}

// Enrich fetches the trailer and top-billed cast for a selected movie.
func (s *Service) Enrich(ctx context.Context, movieID int) Details {
	return Details{
		TrailerKey: s.Trailer(ctx, movieID),
		Cast:       s.Cast(ctx, movieID),
	}
}

func firstTrailerKey(videos []tmdb.Video) string {
	for _, v := range videos {
		if v.Type == videoTypeTrailer && v.Site == videoSiteYouTube {
			return v.Key
		}
	}
	return ""
}

func topBilledWithPhoto(members []tmdb.CastMember, limit int) []CastEntry {
	cast := make([]CastEntry, 0, limit)
	for _, m := range members {
		if len(cast) == limit {
			break
		}
		profile := m.Profile()
		if profile == "" {
			continue
		}
		cast = append(cast, CastEntry{
			ID:          m.ID,
			Name:        m.Name,
			Character:   m.Character,
			ProfilePath: profile,
		})
	}
	return cast
}
