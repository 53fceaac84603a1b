package tmdb

import (
	"net/url"
	"strconv"
)

// GenresResponse is the response from /genre/movie/list.
type GenresResponse struct {
	Genres []Genre `json:"genres"`
}

// Genre is a TMDB genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MoviesPage is one page of movie results, as returned by /discover/movie and /movie/popular.
type MoviesPage struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// MovieResult is a movie from TMDB list results.
type MovieResult struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    *string `json:"poster_path"`
	BackdropPath  *string `json:"backdrop_path"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	Adult         bool    `json:"adult"`
	GenreIDs      []int   `json:"genre_ids"`
	Runtime       int     `json:"runtime,omitempty"`
}

// Poster returns the poster path or "" when TMDB has none.
func (m MovieResult) Poster() string {
	if m.PosterPath == nil {
		return ""
	}
	return *m.PosterPath
}

// DiscoverQuery describes one /discover/movie request.
type DiscoverQuery struct {
	Page              int
	SortBy            string
	WatchRegion       string
	MonetizationTypes string
	// Filters holds additional discover keys such as with_genres or
	// vote_average.gte. Empty values are not sent.
	Filters map[string]string
}

// Values encodes the query as URL parameters, excluding the API key and language.
func (q DiscoverQuery) Values() url.Values {
	params := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	if q.SortBy != "" {
		params.Set("sort_by", q.SortBy)
	}
	if q.WatchRegion != "" {
		params.Set("watch_region", q.WatchRegion)
	}
	if q.MonetizationTypes != "" {
		params.Set("with_watch_monetization_types", q.MonetizationTypes)
	}
	for key, value := range q.Filters {
		if value == "" {
			continue
		}
		params.Set(key, value)
	}
	return params
}

// KeywordSearchResponse is the response from /search/keyword.
type KeywordSearchResponse struct {
	Page       int       `json:"page"`
	Results    []Keyword `json:"results"`
	TotalPages int       `json:"total_pages"`
}

// Keyword is a TMDB keyword.
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// WatchProvidersResponse is the response from /movie/{id}/watch/providers.
// Results are keyed by ISO 3166-1 region code.
type WatchProvidersResponse struct {
	ID      int                        `json:"id"`
	Results map[string]RegionProviders `json:"results"`
}

// RegionProviders lists the providers for one region by monetization type.
type RegionProviders struct {
	Link     string          `json:"link"`
	Flatrate []WatchProvider `json:"flatrate"`
	Rent     []WatchProvider `json:"rent"`
	Buy      []WatchProvider `json:"buy"`
}

// WatchProvider is a streaming service offering a title.
type WatchProvider struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

// Monetization types used by watch-provider data.
const (
	MonetizationFlatrate = "flatrate"
)

// VideosResponse is the response from TMDB /movie/{id}/videos.
type VideosResponse struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

// Video represents a video (trailer, teaser, etc.) from TMDB.
type Video struct {
	Key      string `json:"key"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Official bool   `json:"official"`
}

// CreditsResponse is the response from TMDB credits endpoint.
type CreditsResponse struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember represents a cast member from TMDB credits.
type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	Order       int     `json:"order"`
	ProfilePath *string `json:"profile_path"`
}

// Profile returns the profile image path or "" when TMDB has none.
func (c CastMember) Profile() string {
	if c.ProfilePath == nil {
		return ""
	}
	return *c.ProfilePath
}

// CrewMember represents a crew member from TMDB credits.
type CrewMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	Department  string  `json:"department"`
	ProfilePath *string `json:"profile_path"`
}

// ErrorResponse is the body TMDB sends with non-2xx responses.
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
