package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MediaType is the numeric type code the autocomplete endpoint attaches to a suggestion.
type MediaType int

const (
	MediaTypeUnknown            MediaType = 0
	MediaTypeSeriesWithSubtitle MediaType = 3
	MediaTypeMovieNoSubtitle    MediaType = 7
	MediaTypeMovieWithSubtitle  MediaType = 10
)

// String returns the string representation of the media type
func (t MediaType) String() string {
	switch t {
	case MediaTypeSeriesWithSubtitle:
		return "series"
	case MediaTypeMovieNoSubtitle:
		return "movie-without-subtitles"
	case MediaTypeMovieWithSubtitle:
		return "movie"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// UnmarshalJSON accepts the code either as a number or as a quoted number.
func (t *MediaType) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*t = MediaTypeUnknown
		return nil
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid media type %s: %w", data, err)
	}
	*t = MediaType(code)
	return nil
}

// Suggestion is one autocomplete candidate: a display label, its media type and
// the site-relative URL of its detail page.
type Suggestion struct {
	Value string    `json:"value"`
	Type  MediaType `json:"type"`
	Data  string    `json:"data"`
}

// SuggestionResponse is the autocomplete endpoint payload.
type SuggestionResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// FilterByType returns the suggestions carrying the given type, in their original order.
func FilterByType(suggestions []Suggestion, t MediaType) []Suggestion {
	var filtered []Suggestion
	for _, s := range suggestions {
		if s.Type == t {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

var _ json.Unmarshaler = (*MediaType)(nil)
