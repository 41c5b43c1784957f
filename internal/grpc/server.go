package grpc

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/TorecSubtitles/internal/apperrors"
	"github.com/Belphemur/TorecSubtitles/internal/config"
	"github.com/Belphemur/TorecSubtitles/internal/models"
	"github.com/Belphemur/TorecSubtitles/internal/release"
	"github.com/Belphemur/TorecSubtitles/internal/video"
)

// SubtitleLister is the part of the provider the service needs.
type SubtitleLister interface {
	Languages() []language.Tag
	ListSubtitles(ctx context.Context, v video.Video, languages []language.Tag) ([]models.Subtitle, error)
	Matches(sub *models.Subtitle, v video.Video) video.MatchSet
}

// server implements the TorecServiceServer interface
type server struct {
	provider SubtitleLister
	guesser  release.Guesser
	logger   zerolog.Logger

	// The provider owns a single site session, so searches are serialised.
	mu sync.Mutex
}

// NewServer creates a new gRPC server instance
func NewServer(p SubtitleLister, g release.Guesser) TorecServiceServer {
	return &server{
		provider: p,
		guesser:  g,
		logger:   config.GetLogger(),
	}
}

// ListSubtitles implements TorecServiceServer.ListSubtitles
func (s *server) ListSubtitles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := convertListRequestFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	s.logger.Debug().Str("name", in.Name).Int("languages", len(in.Languages)).Msg("ListSubtitles called")

	v, err := video.FromName(in.Name, s.guesser)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "cannot guess video: %v", err)
	}

	languages := in.Languages
	if len(languages) == 0 {
		languages = s.provider.Languages()
	}

	s.mu.Lock()
	subs, err := s.provider.ListSubtitles(ctx, v, languages)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("Failed to list subtitles")
		return nil, toStatusError(err)
	}

	matches := make([]video.MatchSet, len(subs))
	for i := range subs {
		matches[i] = s.provider.Matches(&subs[i], v)
	}

	resp, err := convertListResponseToStruct(v, subs, matches)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}

	s.logger.Debug().Str("name", in.Name).Int("count", len(subs)).Msg("ListSubtitles completed")
	return resp, nil
}

// toStatusError maps provider errors to gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	case errors.Is(err, &apperrors.AuthenticationError{}):
		return status.Errorf(codes.Unauthenticated, "failed to list subtitles: %v", err)
	case errors.Is(err, &apperrors.HTTPStatusError{}):
		return status.Errorf(codes.Unavailable, "failed to list subtitles: %v", err)
	case errors.Is(err, &apperrors.ProviderError{}):
		return status.Errorf(codes.FailedPrecondition, "failed to list subtitles: %v", err)
	default:
		return status.Errorf(codes.Internal, "failed to list subtitles: %v", err)
	}
}
