// Package video describes the media a caller is looking subtitles for and
// scores guessed release attributes against it.
package video

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/Belphemur/TorecSubtitles/internal/release"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match labels.
const (
	LabelSeries       = "series"
	LabelSeason       = "season"
	LabelEpisode      = "episode"
	LabelTitle        = "title"
	LabelYear         = "year"
	LabelReleaseGroup = "release_group"
	LabelResolution   = "resolution"
	LabelSource       = "source"
	LabelVideoCodec   = "video_codec"
	LabelAudioCodec   = "audio_codec"
)

// Video is either a *Movie or an *Episode.
type Video interface {
	GetName() string
	attributes() *Base
}

// Base holds the attributes shared by movies and episodes.
type Base struct {
	Name         string `json:"name"`
	Source       string `json:"source,omitempty"`
	ReleaseGroup string `json:"releaseGroup,omitempty"`
	Resolution   string `json:"resolution,omitempty"`
	VideoCodec   string `json:"videoCodec,omitempty"`
	AudioCodec   string `json:"audioCodec,omitempty"`
}

// GetName returns the file or release name the video was built from.
func (b Base) GetName() string {
	return b.Name
}

func (b *Base) attributes() *Base {
	return b
}

// Movie is a feature film.
type Movie struct {
	Base
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
}

// Episode is a single episode of a series.
type Episode struct {
	Base
	Series         string `json:"series"`
	Season         int    `json:"season"`
	Episode        int    `json:"episode"`
	Title          string `json:"title,omitempty"`
	Year           int    `json:"year,omitempty"`
	OriginalSeries bool   `json:"originalSeries"`
}

// MatchSet is a set of match labels.
type MatchSet map[string]struct{}

// NewMatchSet returns a set holding labels.
func NewMatchSet(labels ...string) MatchSet {
	m := make(MatchSet, len(labels))
	for _, l := range labels {
		m[l] = struct{}{}
	}
	return m
}

// Add inserts label into the set.
func (m MatchSet) Add(label string) {
	m[label] = struct{}{}
}

// Has reports whether label is in the set.
func (m MatchSet) Has(label string) bool {
	_, ok := m[label]
	return ok
}

// Union adds every label of other to m.
func (m MatchSet) Union(other MatchSet) {
	for l := range other {
		m[l] = struct{}{}
	}
}

// Sorted returns the labels in lexical order.
func (m MatchSet) Sorted() []string {
	labels := make([]string, 0, len(m))
	for l := range m {
		labels = append(labels, l)
	}
	slices.Sort(labels)
	return labels
}

var punctuationReplacer = strings.NewReplacer(
	"-", " ",
	":", " ",
	"(", " ",
	")", " ",
	".", " ",
	"'", "",
	"’", "",
)

// Sanitize lowercases s, folds accents, drops apostrophes, turns common
// punctuation into spaces and collapses whitespace.
func Sanitize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = punctuationReplacer.Replace(folded)
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}

// GuessMatches returns the labels of v that agree with a guessed release.
func GuessMatches(v Video, guess release.Info) MatchSet {
	matches := NewMatchSet()

	switch v := v.(type) {
	case *Episode:
		if guess.Title != "" && Sanitize(guess.Title) == Sanitize(v.Series) {
			matches.Add(LabelSeries)
		}
		if guess.Season != 0 && guess.Season == v.Season {
			matches.Add(LabelSeason)
		}
		if guess.Episode != 0 && guess.Episode == v.Episode {
			matches.Add(LabelEpisode)
		}
		if guess.Year != 0 && guess.Year == v.Year {
			matches.Add(LabelYear)
		}
		if v.OriginalSeries && guess.Year == 0 {
			matches.Add(LabelYear)
		}
	case *Movie:
		if guess.Year != 0 && guess.Year == v.Year {
			matches.Add(LabelYear)
		}
		if guess.Title != "" && Sanitize(guess.Title) == Sanitize(v.Title) {
			matches.Add(LabelTitle)
		}
	default:
		panic(fmt.Sprintf("video: unknown video type %T", v))
	}

	base := v.attributes()
	if guess.ReleaseGroup != "" && strings.EqualFold(guess.ReleaseGroup, base.ReleaseGroup) {
		matches.Add(LabelReleaseGroup)
	}
	if guess.Resolution != "" && guess.Resolution == base.Resolution {
		matches.Add(LabelResolution)
	}
	if guess.Source != "" && strings.EqualFold(guess.Source, base.Source) {
		matches.Add(LabelSource)
	}
	if guess.VideoCodec != "" && guess.VideoCodec == base.VideoCodec {
		matches.Add(LabelVideoCodec)
	}
	if guess.AudioCodec != "" && guess.AudioCodec == base.AudioCodec {
		matches.Add(LabelAudioCodec)
	}

	return matches
}

// FromName builds a Video from a release or file name. A name that guesses
// to both a season and an episode number is an Episode, anything else a Movie.
func FromName(name string, g release.Guesser) (Video, error) {
	if info := g.Guess(name, release.KindEpisode); info.Season > 0 && info.Episode > 0 {
		if info.Title == "" {
			return nil, fmt.Errorf("no series title in %q", name)
		}
		return &Episode{
			Base:           baseFromInfo(name, info),
			Series:         info.Title,
			Season:         info.Season,
			Episode:        info.Episode,
			Year:           info.Year,
			OriginalSeries: info.Year == 0,
		}, nil
	}

	info := g.Guess(name, release.KindMovie)
	if info.Title == "" {
		return nil, fmt.Errorf("no movie title in %q", name)
	}
	return &Movie{
		Base:  baseFromInfo(name, info),
		Title: info.Title,
		Year:  info.Year,
	}, nil
}

func baseFromInfo(name string, info release.Info) Base {
	return Base{
		Name:         name,
		Source:       info.Source,
		ReleaseGroup: info.ReleaseGroup,
		Resolution:   info.Resolution,
		VideoCodec:   info.VideoCodec,
		AudioCodec:   info.AudioCodec,
	}
}
