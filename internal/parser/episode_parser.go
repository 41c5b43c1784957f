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

// maxEpisodeSpan bounds how many episodes a single range anchor may cover.
const maxEpisodeSpan = 100

var (
	seasonTabRe    = regexp.MustCompile(`tabs4-\w+`)
	episodeRangeRe = regexp.MustCompile(`(\d+)-?(\d+)?`)
)

// SeasonTabsParser builds an episode index from the season tabs of a series
// page. Seasons are numbered from 1 in the order the tabs appear; the markup
// carries no season label of its own.
type SeasonTabsParser struct{}

// NewSeasonTabsParser creates a new season tabs parser
func NewSeasonTabsParser() *SeasonTabsParser {
	return &SeasonTabsParser{}
}

// ParseEpisodeIndex implements EpisodeIndexParser. Anchor hrefs are stored
// as found in the page.
func (p *SeasonTabsParser) ParseEpisodeIndex(body io.Reader) (models.EpisodeIndex, error) {
	logger := config.GetLogger()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse HTML document")
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	index := models.EpisodeIndex{}
	season := 0

	doc.Find("[id]").Each(func(_ int, tab *goquery.Selection) {
		id, _ := tab.Attr("id")
		if !seasonTabRe.MatchString(id) {
			return
		}
		season++

		tab.Find("a").Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok {
				return
			}
			m := episodeRangeRe.FindStringSubmatch(a.Text())
			if m == nil {
				return
			}
			first, err := strconv.Atoi(m[1])
			if err != nil {
				return
			}
			last := first
			if m[2] != "" {
				if last, err = strconv.Atoi(m[2]); err != nil {
					return
				}
			}
			if last < first || last-first+1 > maxEpisodeSpan {
				logger.Warn().Int("season", season).Str("range", m[0]).Str("href", href).Msg("Skipping implausible episode range")
				return
			}
			index.SetRange(season, first, last, strings.TrimSpace(href))
		})

		logger.Debug().Int("season", season).Str("tab", id).Int("episodes", len(index[season])).Msg("Parsed season tab")
	})

	logger.Info().Int("seasons", season).Msg("Completed season tabs parsing")
	return index, nil
}
