package testutil

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Belphemur/TorecSubtitles/internal/models"
)

// EpisodeLinkOptions is one anchor of a season tab.
type EpisodeLinkOptions struct {
	Text string // "3", "5-8"
	Href string
}

// ReleaseRowOptions is one download row of a listing page.
type ReleaseRowOptions struct {
	Code    string // appended to the dlRow_ id
	Release string // text of the following .version element
}

// GenerateSeriesDetailHTML generates a series detail page whose year header reads years,
// e.g. "2011-2019" or "2011-". An empty years omits the header.
func GenerateSeriesDetailHTML(title, years string) string {
	var sb strings.Builder
	sb.WriteString("<html>\n<body>\n<section>\n")
	sb.WriteString(`<div class="col-xs-9 col-sm-9 col-md-9 col-lg-9 subDetails">` + "\n")
	fmt.Fprintf(&sb, "\t<h1>%s</h1>\n", title)
	if years != "" {
		fmt.Fprintf(&sb, "\t<h5>שנים: %s</h5>\n", years)
	}
	sb.WriteString("</div>\n</section>\n</body>\n</html>")
	return sb.String()
}

// GenerateMovieDetailHTML generates a movie detail page whose year span reads yearText.
// An empty yearText omits the span.
func GenerateMovieDetailHTML(title, yearText string) string {
	var sb strings.Builder
	sb.WriteString("<html>\n<body>\n<section>\n")
	sb.WriteString(`<div class="siteTourSubDetails">` + "\n")
	sb.WriteString(`	<div class="col-xs-9 col-sm-9 col-md-9 col-lg-9 subDetails">` + "\n")
	if yearText != "" {
		fmt.Fprintf(&sb, "\t\t<h2>%s <span>%s</span></h2>\n", title, yearText)
	} else {
		fmt.Fprintf(&sb, "\t\t<h2>%s</h2>\n", title)
	}
	sb.WriteString("\t</div>\n</div>\n</section>\n</body>\n</html>")
	return sb.String()
}

// GenerateSeasonTabsHTML generates a series page with one tab per season, in order.
func GenerateSeasonTabsHTML(seasons [][]EpisodeLinkOptions) string {
	var sb strings.Builder
	sb.WriteString("<html>\n<body>\n<ul class=\"nav\">\n")
	for i := range seasons {
		fmt.Fprintf(&sb, "\t<li><a href=\"#tabs4-season%d\">עונה %d</a></li>\n", i+1, i+1)
	}
	sb.WriteString("</ul>\n")
	for i, episodes := range seasons {
		fmt.Fprintf(&sb, "<div id=\"tabs4-season%d\" class=\"tab-pane\">\n", i+1)
		for _, ep := range episodes {
			fmt.Fprintf(&sb, "\t<div class=\"episode\"><a href=\"%s\">%s</a></div>\n", ep.Href, ep.Text)
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString("</body>\n</html>")
	return sb.String()
}

// GenerateListingHTML generates a subtitle listing page with one download row per release.
func GenerateListingHTML(title string, rows []ReleaseRowOptions) string {
	var sb strings.Builder
	sb.WriteString("<html>\n<body>\n")
	fmt.Fprintf(&sb, "<h1>%s</h1>\n<div class=\"downloads\">\n", title)
	for _, row := range rows {
		fmt.Fprintf(&sb, "\t<div class=\"row\" id=\"dlRow_%s\">\n", row.Code)
		sb.WriteString("\t\t<span class=\"icon\">⬇</span>\n\t</div>\n")
		fmt.Fprintf(&sb, "\t<div class=\"version\">%s</div>\n", row.Release)
	}
	sb.WriteString("</div>\n</body>\n</html>")
	return sb.String()
}

// GenerateSuggestionsJSON generates an autocomplete payload.
func GenerateSuggestionsJSON(suggestions ...models.Suggestion) string {
	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}
	payload, err := json.Marshal(models.SuggestionResponse{Suggestions: suggestions})
	if err != nil {
		panic(err)
	}
	return string(payload)
}

// GenerateSeriesPageHTML generates a series page carrying both the year header
// and the season tabs, as the site serves them.
func GenerateSeriesPageHTML(title, years string, seasons [][]EpisodeLinkOptions) string {
	detail := GenerateSeriesDetailHTML(title, years)
	tabs := GenerateSeasonTabsHTML(seasons)
	return strings.Replace(detail, "</section>", "</section>\n"+innerBody(tabs), 1)
}

// GenerateMoviePageHTML generates a movie page carrying both the year span and
// the download rows.
func GenerateMoviePageHTML(title, yearText string, rows []ReleaseRowOptions) string {
	detail := GenerateMovieDetailHTML(title, yearText)
	listing := GenerateListingHTML(title, rows)
	return strings.Replace(detail, "</section>", "</section>\n"+innerBody(listing), 1)
}

func innerBody(page string) string {
	start := strings.Index(page, "<body>") + len("<body>")
	end := strings.LastIndex(page, "</body>")
	return page[start:end]
}
