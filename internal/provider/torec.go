package provider

import (
	"context"
	"fmt"

	"github.com/Belphemur/TorecSubtitles/internal/apperrors"
	"github.com/Belphemur/TorecSubtitles/internal/client"
	"github.com/Belphemur/TorecSubtitles/internal/config"
	"github.com/Belphemur/TorecSubtitles/internal/metrics"
	"github.com/Belphemur/TorecSubtitles/internal/models"
	"github.com/Belphemur/TorecSubtitles/internal/parser"
	"github.com/Belphemur/TorecSubtitles/internal/release"
	"github.com/Belphemur/TorecSubtitles/internal/video"

	"golang.org/x/text/language"
)

// ProviderName identifies the provider to the host.
const ProviderName = "torec"

// ClientFactory creates the site session during Initialize.
type ClientFactory func(cfg *config.Config) (client.Client, error)

// Option configures a TorecProvider.
type Option func(*TorecProvider)

// WithClientFactory replaces client.NewClient.
func WithClientFactory(f ClientFactory) Option {
	return func(p *TorecProvider) { p.newClient = f }
}

// WithGuesser replaces the default release guesser.
func WithGuesser(g release.Guesser) Option {
	return func(p *TorecProvider) { p.guesser = g }
}

// TorecProvider implements Provider. An instance owns one site session and
// must not be shared between concurrent searches.
type TorecProvider struct {
	cfg       *config.Config
	newClient ClientFactory
	guesser   release.Guesser

	client   client.Client
	loggedIn bool
}

// NewTorecProvider validates the credentials: both or neither must be set.
func NewTorecProvider(cfg *config.Config, opts ...Option) (*TorecProvider, error) {
	if cfg == nil {
		return nil, apperrors.NewConfigurationError("configuration is required")
	}
	if (cfg.Username == "") != (cfg.Password == "") {
		return nil, apperrors.NewConfigurationError("username and password must be specified")
	}

	p := &TorecProvider{
		cfg:       cfg,
		newClient: client.NewClient,
		guesser:   release.NewGuesser(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *TorecProvider) Name() string {
	return ProviderName
}

// Languages returns the languages the site serves: Hebrew only.
func (p *TorecProvider) Languages() []language.Tag {
	return []language.Tag{language.Hebrew}
}

// Initialize opens the session and logs in when credentials are configured.
// A failed login closes the session again. Initializing twice without
// Terminate in between is a ProviderError.
func (p *TorecProvider) Initialize(ctx context.Context) error {
	logger := config.GetLogger()

	if p.client != nil {
		return apperrors.NewProviderError("provider is already initialized")
	}

	c, err := p.newClient(p.cfg)
	if err != nil {
		return fmt.Errorf("failed to create site client: %w", err)
	}
	p.client = c

	if p.cfg.Username == "" {
		logger.Debug().Msg("No credentials configured, browsing anonymously")
		return nil
	}

	if err := c.Login(ctx, p.cfg.Username, p.cfg.Password); err != nil {
		if closeErr := c.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("Failed to close site client after login failure")
		}
		p.client = nil
		return err
	}
	p.loggedIn = true
	return nil
}

// Terminate logs out when logged in and always closes the session.
// Calling it again, or before Initialize, is a no-op.
func (p *TorecProvider) Terminate(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	c := p.client
	p.client = nil

	var logoutErr error
	if p.loggedIn {
		p.loggedIn = false
		logoutErr = c.Logout(ctx)
	}

	if err := c.Close(); err != nil && logoutErr == nil {
		return fmt.Errorf("failed to close site client: %w", err)
	}
	return logoutErr
}

// ListSubtitles queries by the movie title, or by the series name with
// season and episode, and keeps the subtitles in languages.
func (p *TorecProvider) ListSubtitles(ctx context.Context, v video.Video, languages []language.Tag) ([]models.Subtitle, error) {
	var subs []models.Subtitle
	var err error

	switch v := v.(type) {
	case *video.Episode:
		subs, err = p.Query(ctx, v.Series, v.Year, v.Season, v.Episode)
	case *video.Movie:
		subs, err = p.Query(ctx, v.Title, v.Year, 0, 0)
	default:
		return nil, apperrors.NewProviderError(fmt.Sprintf("unsupported video type %T", v))
	}
	if err != nil {
		return nil, err
	}

	filtered := subs[:0]
	for _, s := range subs {
		if hasLanguage(languages, s.Language) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// Matches scores a subtitle against v with the provider's release guesser.
func (p *TorecProvider) Matches(sub *models.Subtitle, v video.Video) video.MatchSet {
	return sub.GetMatches(v, p.guesser)
}

// DownloadSubtitle checks the subtitle has a release to download. The
// download handshake itself is not supported.
func (p *TorecProvider) DownloadSubtitle(_ context.Context, sub *models.Subtitle) error {
	if sub == nil || len(sub.Releases) == 0 {
		return apperrors.NewProviderError("subtitle has no release to download")
	}
	return apperrors.ErrDownloadNotImplemented
}

// Query searches the site for title. season and episode, when both are
// positive, select a series episode; year, when positive, disambiguates
// candidates sharing the title. It returns at most one subtitle holding every
// release of the listing page found.
func (p *TorecProvider) Query(ctx context.Context, title string, year, season, episode int) ([]models.Subtitle, error) {
	subs, err := p.query(ctx, title, year, season, episode)
	switch {
	case err != nil:
		metrics.SearchesTotal.WithLabelValues(metrics.ResultError).Inc()
	case len(subs) == 0:
		metrics.SearchesTotal.WithLabelValues(metrics.ResultNotFound).Inc()
	default:
		metrics.SearchesTotal.WithLabelValues(metrics.ResultFound).Inc()
	}
	return subs, err
}

func (p *TorecProvider) query(ctx context.Context, title string, year, season, episode int) ([]models.Subtitle, error) {
	logger := config.GetLogger().With().
		Str("title", title).
		Int("year", year).
		Int("season", season).
		Int("episode", episode).
		Logger()

	if p.client == nil {
		return nil, apperrors.NewProviderError("provider is not initialized")
	}

	suggestions, err := p.client.SearchSuggestions(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		logger.Error().Msg("No URL title found")
		return nil, nil
	}

	isSeries := season > 0 && episode > 0
	wanted := models.MediaTypeMovieWithSubtitle
	if isSeries {
		wanted = models.MediaTypeSeriesWithSubtitle
	}

	candidates := models.FilterByType(suggestions, wanted)
	if len(candidates) == 0 {
		logger.Error().Str("type", wanted.String()).Msg("No URL title found for media type")
		return nil, nil
	}

	pageURL, err := p.selectCandidate(ctx, candidates, wanted, year)
	if err != nil {
		return nil, err
	}
	if pageURL == "" {
		logger.Error().Msg("No URL title found for year")
		return nil, nil
	}
	logger.Debug().Str("url", pageURL).Msg("Using title page")

	listingURL := pageURL
	if isSeries {
		index, err := p.client.GetEpisodeIndex(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		ref, ok := index.Lookup(season, episode)
		if !ok {
			logger.Warn().Ints("seasons", index.Seasons()).Msg("Episode not listed on series page")
			return nil, nil
		}
		if listingURL, err = p.client.ResolveURL(ref); err != nil {
			return nil, err
		}
	}

	logger.Debug().Str("url", listingURL).Msg("Getting the list of subtitles")
	releases, err := p.client.GetReleases(ctx, listingURL)
	if err != nil {
		return nil, err
	}

	sub := models.Subtitle{
		ID:              parser.ParseSubtitleID(listingURL),
		Language:        language.Hebrew,
		HearingImpaired: false,
		PageLink:        listingURL,
		Title:           title,
		Releases:        releases,
	}
	if isSeries {
		sub.Series = title
		sub.Season = season
		sub.Episode = episode
	}

	logger.Info().Int("id", sub.ID).Int("releases", len(releases)).Msg("Found subtitle")
	return []models.Subtitle{sub}, nil
}

// selectCandidate returns the page of the first candidate whose year contains
// year, or of the first candidate when year is 0. Candidates without year
// markup are skipped. An empty URL means no candidate fits.
func (p *TorecProvider) selectCandidate(ctx context.Context, candidates []models.Suggestion, mediaType models.MediaType, year int) (string, error) {
	logger := config.GetLogger()

	if year <= 0 {
		return p.client.ResolveURL(candidates[0].Data)
	}

	for _, cand := range candidates {
		pageURL, err := p.client.ResolveURL(cand.Data)
		if err != nil {
			return "", err
		}
		yr, ok, err := p.client.GetYear(ctx, pageURL, mediaType)
		if err != nil {
			return "", err
		}
		if !ok {
			logger.Warn().Str("url", pageURL).Msg("Candidate page shows no year, skipping")
			continue
		}
		if yr.Contains(year) {
			return pageURL, nil
		}
		logger.Debug().Str("url", pageURL).Str("years", yr.String()).Int("wanted", year).Msg("Candidate year does not match")
	}
	return "", nil
}

var _ Provider = (*TorecProvider)(nil)
