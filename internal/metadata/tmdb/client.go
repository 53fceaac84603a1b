package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/metrics"
)

var (
	ErrAPIKeyMissing = errors.New("TMDB API key is not configured")
	ErrNotFound      = errors.New("TMDB resource not found")
	ErrAPIError      = errors.New("TMDB API error")
	ErrRateLimited   = errors.New("TMDB API rate limited")
)

// Image sizes used by the front end.
const (
	PosterSize  = "w500"
	LogoSize    = "w92"
	ProfileSize = "w185"
)

// Client is a read-only TMDB API client.
type Client struct {
	httpClient *http.Client
	config     config.TMDBConfig
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewClient creates a new TMDB client.
func NewClient(cfg config.TMDBConfig, logger zerolog.Logger) *Client {
	if cfg.Language == "" {
		cfg.Language = "en-US"
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "tmdb").Logger(),
	}
}

// SetMetrics enables per-endpoint request counting.
func (c *Client) SetMetrics(m *metrics.Metrics) {
	c.metrics = m
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "tmdb"
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// Test verifies connectivity to the TMDB API by making a configuration request.
func (c *Client) Test(ctx context.Context) error {
	var result struct {
		Images struct {
			BaseURL string `json:"base_url"`
		} `json:"images"`
	}
	return c.get(ctx, "configuration", "/configuration", nil, &result)
}

// GetGenres returns the movie genre list.
func (c *Client) GetGenres(ctx context.Context) ([]Genre, error) {
	params := url.Values{}
	params.Set("language", c.config.Language)

	var response GenresResponse
	if err := c.get(ctx, "genres", "/genre/movie/list", params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("genres", len(response.Genres)).Msg("Got genre list")
	return response.Genres, nil
}

// DiscoverMovies runs a discover query and returns one page of results.
func (c *Client) DiscoverMovies(ctx context.Context, query DiscoverQuery) (*MoviesPage, error) {
	params := query.Values()
	params.Set("language", c.config.Language)

	var response MoviesPage
	if err := c.get(ctx, "discover", "/discover/movie", params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("page", response.Page).
		Int("totalPages", response.TotalPages).
		Int("results", len(response.Results)).
		Msg("Discover page fetched")

	return &response, nil
}

// SearchKeywords resolves free text to TMDB keywords, in TMDB relevance order.
func (c *Client) SearchKeywords(ctx context.Context, query string) ([]Keyword, error) {
	params := url.Values{}
	params.Set("query", query)

	var response KeywordSearchResponse
	if err := c.get(ctx, "search_keyword", "/search/keyword", params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", query).
		Int("results", len(response.Results)).
		Msg("Keyword search completed")

	return response.Results, nil
}

// GetWatchProviders returns the per-region watch providers of a movie.
func (c *Client) GetWatchProviders(ctx context.Context, movieID int) (*WatchProvidersResponse, error) {
	var response WatchProvidersResponse
	endpoint := fmt.Sprintf("/movie/%d/watch/providers", movieID)
	if err := c.get(ctx, "watch_providers", endpoint, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVideos returns the videos attached to a movie, in TMDB order.
func (c *Client) GetVideos(ctx context.Context, movieID int) ([]Video, error) {
	params := url.Values{}
	params.Set("language", c.config.Language)

	var response VideosResponse
	endpoint := fmt.Sprintf("/movie/%d/videos", movieID)
	if err := c.get(ctx, "videos", endpoint, params, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

// GetCredits returns the cast and crew of a movie.
func (c *Client) GetCredits(ctx context.Context, movieID int) (*CreditsResponse, error) {
	params := url.Values{}
	params.Set("language", c.config.Language)

	var response CreditsResponse
	endpoint := fmt.Sprintf("/movie/%d/credits", movieID)
	if err := c.get(ctx, "credits", endpoint, params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetPopularMovies returns one page of the popular movies listing.
func (c *Client) GetPopularMovies(ctx context.Context, page int) (*MoviesPage, error) {
	params := url.Values{}
	params.Set("language", c.config.Language)
	params.Set("page", fmt.Sprintf("%d", page))

	var response MoviesPage
	if err := c.get(ctx, "popular", "/movie/popular", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetImageURL returns a full image URL for a given path and size.
// Size options: "w92", "w154", "w185", "w342", "w500", "w780", "original"
func (c *Client) GetImageURL(path string, size string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", c.config.ImageBaseURL, size, path)
}

// get authenticates and performs a request, recording its outcome under name.
func (c *Client) get(ctx context.Context, name, path string, params url.Values, result any) error {
	if !c.IsConfigured() {
		return ErrAPIKeyMissing
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.config.APIKey)

	err := c.doRequest(ctx, c.config.BaseURL+path, params, result)
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	c.metrics.ObserveCatalogRequest(name, outcome)
	return err
}

// doRequest performs an HTTP GET request and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			c.logger.Error().
				Int("status", resp.StatusCode).
				Str("url", endpoint).
				Str("message", errResp.StatusMessage).
				Msg("TMDB API error")
		}

		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: invalid API key", ErrAPIError)
		case http.StatusTooManyRequests:
			return ErrRateLimited
		default:
			return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
