package parser

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/Belphemur/TorecSubtitles/internal/config"
	"github.com/Belphemur/TorecSubtitles/internal/models"

	"github.com/PuerkitoBio/goquery"
)

const (
	seriesYearSelector = "body > section > div.col-xs-9.col-sm-9.col-md-9.col-lg-9.subDetails > h5"
	movieYearSelector  = "body > section > div.siteTourSubDetails > div.col-xs-9.col-sm-9.col-md-9.col-lg-9.subDetails > h2 > span"
)

var (
	seriesYearRe = regexp.MustCompile(`(\d{4})\s*(-)?\s*(\d{4})?`)
	movieYearRe  = regexp.MustCompile(`\d+`)
)

// SeriesYearParser reads the "start-end" years of a series detail page.
// "2011-2019" is closed, "2011-" and a lone "2011" are open-ended.
type SeriesYearParser struct{}

// NewSeriesYearParser creates a new series year parser
func NewSeriesYearParser() *SeriesYearParser {
	return &SeriesYearParser{}
}

// ParseYear implements YearParser.
func (p *SeriesYearParser) ParseYear(body io.Reader) (models.YearRange, bool, error) {
	logger := config.GetLogger()

	text, found, err := selectText(body, seriesYearSelector)
	if err != nil || !found {
		return models.YearRange{}, false, err
	}

	m := seriesYearRe.FindStringSubmatch(text)
	if m == nil {
		logger.Debug().Str("text", text).Msg("No year found in series header")
		return models.YearRange{}, false, nil
	}

	start, _ := strconv.Atoi(m[1])
	yr := models.YearRange{Start: start}
	if m[3] != "" {
		yr.End, _ = strconv.Atoi(m[3])
	}

	logger.Debug().Str("years", yr.String()).Msg("Parsed series years")
	return yr, true, nil
}

// MovieYearParser reads the release year of a movie detail page.
type MovieYearParser struct{}

// NewMovieYearParser creates a new movie year parser
func NewMovieYearParser() *MovieYearParser {
	return &MovieYearParser{}
}

// ParseYear implements YearParser. The result is a single-year range.
func (p *MovieYearParser) ParseYear(body io.Reader) (models.YearRange, bool, error) {
	logger := config.GetLogger()

	text, found, err := selectText(body, movieYearSelector)
	if err != nil || !found {
		return models.YearRange{}, false, err
	}

	digits := movieYearRe.FindString(text)
	if digits == "" {
		logger.Debug().Str("text", text).Msg("No year found in movie header")
		return models.YearRange{}, false, nil
	}
	year, err := strconv.Atoi(digits)
	if err != nil {
		return models.YearRange{}, false, nil
	}

	logger.Debug().Int("year", year).Msg("Parsed movie year")
	return models.ExactYear(year), true, nil
}

// selectText returns the text of the first element matching selector.
func selectText(body io.Reader, selector string) (string, bool, error) {
	logger := config.GetLogger()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse HTML document")
		return "", false, fmt.Errorf("failed to parse HTML: %w", err)
	}

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false, nil
	}
	return strings.TrimSpace(sel.Text()), true, nil
}
