package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Belphemur/TorecSubtitles/internal/cache"
	"github.com/Belphemur/TorecSubtitles/internal/config"
	"github.com/Belphemur/TorecSubtitles/internal/models"
	"github.com/Belphemur/TorecSubtitles/internal/parser"

	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/timeout"
)

const (
	loginPath  = "ajax/login/t7/loginProcess.asp"
	logoutPath = "ajax/login/t7/logout.asp"
	searchPath = "ajax/search/acSearch.asp"

	defaultClientTimeout  = 30 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// Endpoint labels used in metrics and logs.
const (
	endpointLogin   = "login"
	endpointLogout  = "logout"
	endpointSearch  = "search"
	endpointDetail  = "detail"
	endpointSeries  = "series"
	endpointListing = "listing"
)

// Client is the HTTP session with the subtitle site. It holds the cookies of
// a login for its whole lifetime and is not meant for concurrent searches.
type Client interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error

	// SearchSuggestions queries the autocomplete endpoint.
	SearchSuggestions(ctx context.Context, title string) ([]models.Suggestion, error)
	// GetYear scrapes the year of a detail page; ok is false when the page shows none.
	GetYear(ctx context.Context, pageURL string, mediaType models.MediaType) (yr models.YearRange, ok bool, err error)
	GetEpisodeIndex(ctx context.Context, seriesURL string) (models.EpisodeIndex, error)
	GetReleases(ctx context.Context, listingURL string) (models.ReleaseList, error)

	// ResolveURL turns a site-relative reference into an absolute URL.
	ResolveURL(ref string) (string, error)

	// Close releases idle connections and the page cache. It is safe to call more than once.
	Close() error
}

// client implements the Client interface
type client struct {
	baseURL *url.URL

	// httpClient serves page fetches with the library-level timeout.
	httpClient *http.Client
	// shortClient serves login, logout and autocomplete under the fixed request timeout.
	shortClient *http.Client
	// loginClient is shortClient without redirect following.
	loginClient *http.Client

	pageCache cache.Cache

	seriesYearParser parser.YearParser
	movieYearParser  parser.YearParser
	episodeParser    parser.EpisodeIndexParser
	releaseParser    parser.Parser[models.Release]

	closeOnce sync.Once
	closeErr  error
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) (Client, error) {
	logger := config.GetLogger()

	baseURL, err := parseBaseURL(cfg.TorecDomain)
	if err != nil {
		return nil, err
	}

	clientTimeout := parseDuration(cfg.ClientTimeout, defaultClientTimeout, "client_timeout")
	requestTimeout := parseDuration(cfg.RequestTimeout, defaultRequestTimeout, "request_timeout")

	// Clone DefaultTransport to keep its pooling and HTTP/2 settings.
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}
	transport := &userAgentTransport{
		next:      newCompressionTransport(baseTransport),
		userAgent: userAgent,
	}
	shortTransport := failsafehttp.NewRoundTripper(transport, timeout.New[*http.Response](requestTimeout))

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	pageCache, err := newPageCache(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("baseURL", baseURL.String()).
		Dur("clientTimeout", clientTimeout).
		Dur("requestTimeout", requestTimeout).
		Bool("pageCache", pageCache != nil).
		Msg("Created site client")

	return &client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: clientTimeout, Transport: transport, Jar: jar},
		shortClient: &http.Client{Transport: shortTransport, Jar: jar},
		loginClient: &http.Client{
			Transport: shortTransport,
			Jar:       jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		pageCache:        pageCache,
		seriesYearParser: parser.NewSeriesYearParser(),
		movieYearParser:  parser.NewMovieYearParser(),
		episodeParser:    parser.NewSeasonTabsParser(),
		releaseParser:    parser.NewReleaseParser(),
	}, nil
}

// newPageCache builds the optional cache for detail, series and listing pages.
// It returns nil when cache.type is empty.
func newPageCache(cfg *config.Config) (cache.Cache, error) {
	if cfg.Cache.Type == "" {
		return nil, nil
	}

	ttl := parseDuration(cfg.Cache.TTL, time.Hour, "cache.ttl")
	size := cfg.Cache.Size
	if size <= 0 {
		size = 500
	}

	c, err := cache.New(cfg.Cache.Type, cache.ProviderConfig{
		Size:          size,
		TTL:           ttl,
		Logger:        cache.NewZerologLogger(config.GetLogger()),
		RedisAddress:  cfg.Cache.Redis.Address,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		KeyPrefix:     "torec:pages:",
		Group:         "pages",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}
	return c, nil
}

func parseBaseURL(domain string) (*url.URL, error) {
	if domain == "" {
		domain = config.DefaultDomain
	}
	u, err := url.Parse(domain)
	if err != nil {
		return nil, fmt.Errorf("invalid site domain %q: %w", domain, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid site domain %q: scheme and host are required", domain)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

func parseDuration(value string, fallback time.Duration, key string) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str(key, value).Dur("default", fallback).Msg("Invalid duration, using default")
		return fallback
	}
	return d
}

func (c *client) ResolveURL(ref string) (string, error) {
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("invalid site reference %q: %w", ref, err)
	}
	return c.baseURL.ResolveReference(r).String(), nil
}

func (c *client) endpointURL(path string, query url.Values) string {
	u := c.baseURL.ResolveReference(&url.URL{Path: path})
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
		if c.pageCache != nil {
			c.closeErr = c.pageCache.Close()
		}
		logger := config.GetLogger()
		logger.Debug().Msg("Closed site client")
	})
	return c.closeErr
}
