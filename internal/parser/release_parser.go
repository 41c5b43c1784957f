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

var (
	downloadRowRe = regexp.MustCompile(`^dlRow_(.+)`)
	subIDRe       = regexp.MustCompile(`sub_id=(\d+)`)
)

// ReleaseParser implements Parser[models.Release] for subtitle listing pages.
// Every download row is paired with the first element of class "version" that
// follows it in the document.
type ReleaseParser struct{}

// NewReleaseParser creates a new release parser
func NewReleaseParser() *ReleaseParser {
	return &ReleaseParser{}
}

// ParseHtml returns the releases of a listing page in page order.
func (p *ReleaseParser) ParseHtml(body io.Reader) ([]models.Release, error) {
	logger := config.GetLogger()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse HTML document")
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var releases models.ReleaseList
	var pending []string

	doc.Find(`[id^="dlRow_"], .version`).Each(func(_ int, s *goquery.Selection) {
		if s.HasClass("version") && len(pending) > 0 {
			name := strings.TrimSpace(s.Text())
			for _, code := range pending {
				releases.Add(name, code)
				logger.Debug().Str("release", name).Str("code", code).Msg("Extracted release")
			}
			pending = pending[:0]
		}

		id, _ := s.Attr("id")
		if m := downloadRowRe.FindStringSubmatch(id); m != nil {
			pending = append(pending, m[1])
		}
	})

	if len(pending) > 0 {
		logger.Warn().Strs("codes", pending).Msg("Download rows without a release name")
	}

	logger.Info().Int("releases", len(releases)).Msg("Completed listing page parsing")
	return releases, nil
}

// ParseSubtitleID extracts the numeric sub_id query parameter of a listing
// URL. It returns 0 when the URL has none.
func ParseSubtitleID(rawURL string) int {
	m := subIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return 0
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return id
}

var _ Parser[models.Release] = (*ReleaseParser)(nil)
