package cache

import "github.com/rs/zerolog"

// Logger receives backend errors that Get and Set cannot return.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string, err error)
}

type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger adapts a zerolog logger to Logger.
func NewZerologLogger(logger zerolog.Logger) Logger {
	return &zerologLogger{logger: logger.With().Str("component", "cache").Logger()}
}

func (l *zerologLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, err error) {
	l.logger.Warn().Err(err).Msg(msg)
}
