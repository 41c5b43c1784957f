// Package provider adapts the subtitle site to the host's provider contract.
package provider

import (
	"context"

	"github.com/Belphemur/TorecSubtitles/internal/models"
	"github.com/Belphemur/TorecSubtitles/internal/video"

	"golang.org/x/text/language"
)

// Provider is the capability contract a subtitle source implements.
// Initialize must be called before any query and Terminate after the last one.
type Provider interface {
	Name() string
	Languages() []language.Tag

	Initialize(ctx context.Context) error
	Terminate(ctx context.Context) error

	// ListSubtitles returns the subtitles for v in any of languages.
	// Finding nothing is not an error.
	ListSubtitles(ctx context.Context, v video.Video, languages []language.Tag) ([]models.Subtitle, error)
	DownloadSubtitle(ctx context.Context, sub *models.Subtitle) error
}

// hasLanguage compares base languages, so "he" and "heb" both match Hebrew.
func hasLanguage(languages []language.Tag, tag language.Tag) bool {
	want, _ := tag.Base()
	for _, l := range languages {
		if base, _ := l.Base(); base == want {
			return true
		}
	}
	return false
}
