package discovery

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mode is the discovery criterion chosen by the user.
type Mode string

const (
	ModeRandom   Mode = "random"
	ModeGenre    Mode = "genre"
	ModeKeyword  Mode = "keyword"
	ModeFiltered Mode = "filtered"
)

// User-facing messages.
const (
	MsgChooseMode   = "Please choose a selection type."
	MsgChooseGenre  = "Please choose a genre."
	MsgEnterKeyword = "Please enter a keyword."
	MsgNoMatch      = "Couldn't find a movie with that criteria. Please try again."
)

// Discover query keys set from the filtered form.
const (
	FilterGenres      = "with_genres"
	FilterKeywords    = "with_keywords"
	FilterReleaseFrom = "primary_release_date.gte"
	FilterReleaseTo   = "primary_release_date.lte"
	FilterMinVote     = "vote_average.gte"
	FilterRuntimeMin  = "with_runtime.gte"
	FilterRuntimeMax  = "with_runtime.lte"
)

const dateLayout = "2006-01-02"

// ValidationError is a problem with user input, detected before any catalog call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err carries a user-facing validation message.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SelectionRequest is one parsed selection: a mode plus its parameters.
type SelectionRequest struct {
	Mode    Mode
	GenreID int
	Keyword string
	// Filters maps discover query keys to values for ModeFiltered.
	// Keys with empty values are dropped from the query.
	Filters map[string]string
}

// Validate checks the mode-specific parameters.
func (r SelectionRequest) Validate() error {
	switch r.Mode {
	case ModeRandom, ModeFiltered:
		return nil
	case ModeGenre:
		if r.GenreID <= 0 {
			return invalid("genre", MsgChooseGenre)
		}
		return nil
	case ModeKeyword:
		if strings.TrimSpace(r.Keyword) == "" {
			return invalid("keyword", MsgEnterKeyword)
		}
		return nil
	default:
		return invalid("selection_type", MsgChooseMode)
	}
}

// SelectionForm is the raw input submitted by the selection form or the JSON API.
type SelectionForm struct {
	SelectionType string `form:"selection_type" json:"selection_type"`
	Genre         string `form:"genre" json:"genre"`
	Keyword       string `form:"keyword" json:"keyword"`
	ReleaseFrom   string `form:"release_from" json:"release_from"`
	ReleaseTo     string `form:"release_to" json:"release_to"`
	MinScore      string `form:"min_score" json:"min_score"`
	RuntimeMin    string `form:"runtime_min" json:"runtime_min"`
	RuntimeMax    string `form:"runtime_max" json:"runtime_max"`
}

// Request parses the form into a validated SelectionRequest.
func (f SelectionForm) Request() (SelectionRequest, error) {
	req := SelectionRequest{Mode: Mode(strings.TrimSpace(f.SelectionType))}

	switch req.Mode {
	case ModeGenre:
		req.GenreID, _ = strconv.Atoi(strings.TrimSpace(f.Genre))
	case ModeKeyword:
		req.Keyword = strings.TrimSpace(f.Keyword)
	case ModeFiltered:
		filters, err := f.filters()
		if err != nil {
			return req, err
		}
		req.Filters = filters
	}

	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

// filters converts the filtered-mode fields to discover query keys.
// The score field uses a 0-100 scale and is sent on the catalog's 0-10 scale.
func (f SelectionForm) filters() (map[string]string, error) {
	filters := make(map[string]string)

	if genre := strings.TrimSpace(f.Genre); genre != "" {
		id, err := strconv.Atoi(genre)
		if err != nil || id <= 0 {
			return nil, invalid("genre", MsgChooseGenre)
		}
		filters[FilterGenres] = strconv.Itoa(id)
	}

	from, err := parseDate("release_from", f.ReleaseFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseDate("release_to", f.ReleaseTo)
	if err != nil {
		return nil, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, invalid("release_to", "The release date range is empty.")
	}
	if !from.IsZero() {
		filters[FilterReleaseFrom] = from.Format(dateLayout)
	}
	if !to.IsZero() {
		filters[FilterReleaseTo] = to.Format(dateLayout)
	}

	if score := strings.TrimSpace(f.MinScore); score != "" {
		v, err := strconv.ParseFloat(score, 64)
		if err != nil || v < 0 || v > 100 {
			return nil, invalid("min_score", "Please enter a score between 0 and 100.")
		}
		filters[FilterMinVote] = strconv.FormatFloat(v/10, 'f', -1, 64)
	}

	minRuntime, err := parseMinutes("runtime_min", f.RuntimeMin)
	if err != nil {
		return nil, err
	}
	maxRuntime, err := parseMinutes("runtime_max", f.RuntimeMax)
	if err != nil {
		return nil, err
	}
	if minRuntime >= 0 && maxRuntime >= 0 && maxRuntime < minRuntime {
		return nil, invalid("runtime_max", "The runtime range is empty.")
	}
	if minRuntime >= 0 {
		filters[FilterRuntimeMin] = strconv.Itoa(minRuntime)
	}
	if maxRuntime >= 0 {
		filters[FilterRuntimeMax] = strconv.Itoa(maxRuntime)
	}

	return filters, nil
}

func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, invalid(field, "Please enter dates as YYYY-MM-DD.")
	}
	return t, nil
}

// parseMinutes returns -1 for an empty field.
func parseMinutes(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return -1, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil || v < 0 {
		return 0, invalid(field, "Please enter the runtime in whole minutes.")
	}
	return v, nil
}
