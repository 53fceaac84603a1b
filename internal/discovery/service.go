package discovery

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/metadata"
	"github.com/reelpick/reelpick/internal/metadata/tmdb"
	"github.com/reelpick/reelpick/internal/metrics"
)

var (
	ErrNoMatch         = errors.New("no movie matched the selection criteria")
	ErrKeywordNotFound = errors.New("keyword not found")
)

const sortByPopularity = "popularity.desc"

// KeywordNotFoundError names the keyword that resolved to no catalog keyword.
type KeywordNotFoundError struct {
	Keyword string
}

func (e *KeywordNotFoundError) Error() string {
	return fmt.Sprintf("keyword %q not found", e.Keyword)
}

func (e *KeywordNotFoundError) Unwrap() error {
	return ErrKeywordNotFound
}

// Message is the user-facing text for the error.
func (e *KeywordNotFoundError) Message() string {
	return fmt.Sprintf("No movies match the keyword %q. Try another keyword.", e.Keyword)
}

// Candidate is a discovered movie together with its allowed providers.
type Candidate struct {
	Movie     tmdb.MovieResult
	Providers []tmdb.WatchProvider
	Page      int
}

// Service finds a random movie that matches the user's criteria and is
// streamable on an allowed provider.
type Service struct {
	meta    *metadata.Service
	catalog metadata.TMDBClient
	cfg     config.DiscoveryConfig
	allow   ProviderSet
	logger  zerolog.Logger
	metrics *metrics.Metrics

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a discovery service. The random source is seeded from
// the runtime unless replaced with SetRand.
func NewService(meta *metadata.Service, cfg config.DiscoveryConfig, logger zerolog.Logger) *Service {
	return &Service{
		meta:    meta,
		catalog: meta.Client(),
		cfg:     cfg,
		allow:   NewProviderSet(cfg.Providers),
		logger:  logger.With().Str("component", "discovery").Logger(),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// SetRand replaces the random source used for page and movie choice.
func (s *Service) SetRand(r *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = r
}

// SetMetrics enables selection metrics.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// AllowedProviders returns the provider IDs a pick must be streamable on.
func (s *Service) AllowedProviders() []int {
	return s.allow.IDs()
}

// Region is the watch region providers are looked up in.
func (s *Service) Region() string {
	return s.cfg.Region
}

func (s *Service) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Discover runs the page loop for req and returns one qualifying candidate.
//
// Random mode draws a fresh random page on each attempt; the other modes walk
// pages from 1 upward. A page that fails to load is skipped, and so is a movie
// whose providers fail to load. The first page with at least one qualifying
// movie ends the loop, and the pick is uniform over that page's qualifiers.
func (s *Service) Discover(ctx context.Context, req SelectionRequest) (*Candidate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filters, err := s.filtersFor(ctx, req)
	if err != nil {
		return nil, err
	}

	budget := s.cfg.MaxPages
	if req.Mode == ModeRandom {
		budget = s.cfg.RandomAttempts
	}

	for attempt := range budget {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := attempt + 1
		if req.Mode == ModeRandom {
			page = 1 + s.intN(max(s.cfg.RandomPageMax, 1))
		}

		qualifying := s.scanPage(ctx, filters, page)
		// A cancelled scan leaves the page only partly checked.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(qualifying) == 0 {
			continue
		}

		pick := qualifying[s.intN(len(qualifying))]
		pick.Page = page
		s.logger.Debug().
			Str("mode", string(req.Mode)).
			Int("page", page).
			Int("qualifying", len(qualifying)).
			Int("movieId", pick.Movie.ID).
			Msg("Picked movie")
		return &pick, nil
	}

	return nil, ErrNoMatch
}

// filtersFor builds the extra discover keys for req, resolving keywords first.
func (s *Service) filtersFor(ctx context.Context, req SelectionRequest) (map[string]string, error) {
	switch req.Mode {
	case ModeGenre:
		return map[string]string{FilterGenres: strconv.Itoa(req.GenreID)}, nil
	case ModeKeyword:
		ids, err := s.meta.ResolveKeywords(ctx, req.Keyword, s.cfg.KeywordLimit)
		if err != nil {
			s.logger.Warn().Err(err).Str("keyword", req.Keyword).Msg("Keyword lookup failed")
			return nil, fmt.Errorf("%w: %w", ErrNoMatch, err)
		}
		if len(ids) == 0 {
			return nil, &KeywordNotFoundError{Keyword: req.Keyword}
		}
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		return map[string]string{FilterKeywords: strings.Join(parts, "|")}, nil
	case ModeFiltered:
		return req.Filters, nil
	default:
		return nil, nil
	}
}

// scanPage fetches one discover page and keeps the movies with allowed providers.
func (s *Service) scanPage(ctx context.Context, filters map[string]string, page int) []Candidate {
	result, err := s.catalog.DiscoverMovies(ctx, tmdb.DiscoverQuery{
		Page:              page,
		SortBy:            sortByPopularity,
		WatchRegion:       s.cfg.Region,
		MonetizationTypes: tmdb.MonetizationFlatrate,
		Filters:           filters,
	})
	if err != nil {
		s.logger.Warn().Err(err).Int("page", page).Msg("Discover page failed, skipping")
		return nil
	}

	qualifying := make([]Candidate, 0)
	for _, movie := range result.Results {
		if ctx.Err() != nil {
			return qualifying
		}
		resp, err := s.catalog.GetWatchProviders(ctx, movie.ID)
		if err != nil {
			s.logger.Debug().Err(err).Int("movieId", movie.ID).Msg("Provider lookup failed, skipping movie")
			continue
		}
		providers := FilterProviders(resp, s.cfg.Region, s.allow)
		if len(providers) == 0 {
			continue
		}
		qualifying = append(qualifying, Candidate{Movie: movie, Providers: providers})
	}
	return qualifying
}

// Selection is the presentation hand-off for one selection attempt.
// Exactly one of Movie and Error is set.
type Selection struct {
	Mode       Mode                 `json:"mode"`
	Movie      *metadata.Movie      `json:"movie,omitempty"`
	Providers  []metadata.Provider  `json:"providers"`
	TrailerKey string               `json:"trailerKey,omitempty"`
	Cast       []metadata.CastEntry `json:"cast"`
	Error      string               `json:"error,omitempty"`
}

// Select parses form input, discovers a movie and enriches it with its
// trailer and cast. Every failure is reported through Selection.Error.
func (s *Service) Select(ctx context.Context, form SelectionForm) (Selection, error) {
	start := time.Now()
	req, err := form.Request()
	mode := req.Mode
	if err != nil {
		s.metrics.ObserveSelection(metricsMode(mode), metrics.OutcomeInvalid, time.Since(start))
		return failed(mode, err), err
	}

	candidate, err := s.Discover(ctx, req)
	if err != nil {
		s.metrics.ObserveSelection(string(mode), outcomeFor(err), time.Since(start))
		if !errors.Is(err, ErrKeywordNotFound) && !errors.Is(err, ErrNoMatch) {
			s.logger.Warn().Err(err).Str("mode", string(mode)).Msg("Selection aborted")
		}
		return failed(mode, err), err
	}

	movie := s.meta.ToMovie(candidate.Movie)
	providers := make([]metadata.Provider, 0, len(candidate.Providers))
	for _, p := range candidate.Providers {
		providers = append(providers, s.meta.ToProvider(p))
	}
	details := s.meta.Enrich(ctx, movie.ID)

	s.metrics.ObserveSelection(string(mode), metrics.OutcomeOK, time.Since(start))
	s.logger.Info().
		Str("mode", string(mode)).
		Int("movieId", movie.ID).
		Str("title", movie.Title).
		Int("providers", len(providers)).
		Msg("Movie selected")

	return Selection{
		Mode:       mode,
		Movie:      &movie,
		Providers:  providers,
		TrailerKey: details.TrailerKey,
		Cast:       details.Cast,
	}, nil
}

func failed(mode Mode, err error) Selection {
	return Selection{
		Mode:      mode,
		Providers: []metadata.Provider{},
		Cast:      []metadata.CastEntry{},
		Error:     ErrorMessage(err),
	}
}

// ErrorMessage converts a selection error to the text shown to the user.
func ErrorMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var kw *KeywordNotFoundError
	if errors.As(err, &kw) {
		return kw.Message()
	}
	return MsgNoMatch
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrKeywordNotFound):
		return metrics.OutcomeNoKeyword
	case errors.Is(err, ErrNoMatch):
		return metrics.OutcomeNoMatch
	case IsValidationError(err):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}

// metricsMode keeps label cardinality bounded for unrecognized input.
func metricsMode(mode Mode) string {
	switch mode {
	case ModeRandom, ModeGenre, ModeKeyword, ModeFiltered:
		return string(mode)
	default:
		return "unknown"
	}
}
