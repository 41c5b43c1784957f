package parser

import (
	"io"

	"github.com/Belphemur/TorecSubtitles/internal/models"
)

// Parser defines a generic interface for parsing HTML content
type Parser[T any] interface {
	ParseHtml(body io.Reader) ([]T, error)
}

// YearParser scrapes the year or year range of a detail page. ok is false when
// the page carries no year markup.
type YearParser interface {
	ParseYear(body io.Reader) (yr models.YearRange, ok bool, err error)
}

// EpisodeIndexParser scrapes the season tabs of a series page.
type EpisodeIndexParser interface {
	ParseEpisodeIndex(body io.Reader) (models.EpisodeIndex, error)
}
