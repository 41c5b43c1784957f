package models

import (
	"github.com/Belphemur/TorecSubtitles/internal/release"
	"github.com/Belphemur/TorecSubtitles/internal/video"

	"golang.org/x/text/language"
)

// Subtitle is the result of a search: one listing page with every release it offers.
type Subtitle struct {
	ID              int          `json:"id"`
	Language        language.Tag `json:"language"`
	HearingImpaired bool         `json:"hearingImpaired"`
	PageLink        string       `json:"pageLink"`
	Series          string       `json:"series,omitempty"`
	Season          int          `json:"season,omitempty"` // 0 when unknown
	Episode         int          `json:"episode,omitempty"`
	Title           string       `json:"title"`
	Releases        ReleaseList  `json:"releases"`
}

// Equal reports whether both subtitles are the same listing; identity is the ID.
func (s *Subtitle) Equal(other *Subtitle) bool {
	return other != nil && s.ID == other.ID
}

// GetMatches returns the labels of v this subtitle agrees with. Every release
// name is guessed with the media kind of v and the union of matches is kept.
func (s *Subtitle) GetMatches(v video.Video, g release.Guesser) video.MatchSet {
	matches := video.NewMatchSet()
	var videoTitle string

	switch v := v.(type) {
	case *video.Episode:
		if s.Series != "" && video.Sanitize(s.Series) == video.Sanitize(v.Series) {
			matches.Add(video.LabelSeries)
		}
		if s.Season != 0 && s.Season == v.Season {
			matches.Add(video.LabelSeason)
		}
		if s.Episode != 0 && s.Episode == v.Episode {
			matches.Add(video.LabelEpisode)
		}
		for _, r := range s.Releases {
			matches.Union(video.GuessMatches(v, g.Guess(r.Name, release.KindEpisode)))
		}
		videoTitle = v.Title
	case *video.Movie:
		for _, r := range s.Releases {
			matches.Union(video.GuessMatches(v, g.Guess(r.Name, release.KindMovie)))
		}
		videoTitle = v.Title
	}

	if videoTitle != "" && video.Sanitize(s.Title) == video.Sanitize(videoTitle) {
		matches.Add(video.LabelTitle)
	}

	return matches
}
