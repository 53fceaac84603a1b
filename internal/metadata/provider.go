package metadata

import "github.com/reelpick/reelpick/internal/metadata/tmdb"

// Movie is a discovered movie, as returned by the catalog.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"posterPath,omitempty"`
	PosterURL   string  `json:"posterUrl,omitempty"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
	VoteAverage float64 `json:"voteAverage"`
	Runtime     int     `json:"runtime,omitempty"`
}

// Provider is a subscription service a movie can be streamed on.
type Provider struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logoPath,omitempty"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

// Genre is a genre choice for the selection form.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastEntry is a top-billed actor with a profile photo.
type CastEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profilePath"`
	ProfileURL  string `json:"profileUrl,omitempty"`
}

// Poster is one entry of the popular-movies poster wall.
type Poster struct {
	MovieID int    `json:"movieId"`
	Title   string `json:"title"`
	Path    string `json:"path"`
	URL     string `json:"url"`
}

// Details is the best-effort enrichment of a selected movie.
type Details struct {
	TrailerKey string      `json:"trailerKey,omitempty"`
	Cast       []CastEntry `json:"cast"`
}

// ToMovie converts a catalog list result into a Movie.
func (s *Service) ToMovie(m tmdb.MovieResult) Movie {
	poster := m.Poster()
	return Movie{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		PosterPath:  poster,
		PosterURL:   s.tmdb.GetImageURL(poster, tmdb.PosterSize),
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
		Runtime:     m.Runtime,
	}
}

// ToProvider converts a catalog watch provider into a Provider.
func (s *Service) ToProvider(p tmdb.WatchProvider) Provider {
	return Provider{
		ID:       p.ProviderID,
		Name:     p.ProviderName,
		LogoPath: p.LogoPath,
		LogoURL:  s.tmdb.GetImageURL(p.LogoPath, tmdb.LogoSize),
	}
}
