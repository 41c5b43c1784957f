// Package reporting forwards unexpected errors to Sentry when a DSN is configured.
package reporting

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/TorecSubtitles/internal/apperrors"
	"github.com/Belphemur/TorecSubtitles/internal/config"
)

const flushTimeout = 2 * time.Second

// Init configures the Sentry client. It returns a flush function to defer,
// which is a no-op when no DSN is set.
func Init(cfg *config.Config) (func(), error) {
	if cfg.Sentry.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     "torec-subtitles@" + config.Version,
	})
	if err != nil {
		return func() {}, err
	}

	logger := config.GetLogger()
	logger.Debug().Str("environment", cfg.Sentry.Environment).Msg("Sentry reporting enabled")
	return func() { sentry.Flush(flushTimeout) }, nil
}

// Capture reports err unless it is an expected outcome such as rejected
// credentials or an unsupported download.
func Capture(err error) {
	if err == nil || !ShouldReport(err) {
		return
	}
	sentry.CaptureException(err)
}

// ShouldReport tells unexpected failures apart from user-facing ones.
func ShouldReport(err error) bool {
	switch {
	case errors.Is(err, &apperrors.AuthenticationError{}),
		errors.Is(err, &apperrors.ConfigurationError{}),
		errors.Is(err, apperrors.ErrDownloadNotImplemented):
		return false
	}
	return true
}
