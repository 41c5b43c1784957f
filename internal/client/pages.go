package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Belphemur/TorecSubtitles/internal/apperrors"
	"github.com/Belphemur/TorecSubtitles/internal/config"
	"github.com/Belphemur/TorecSubtitles/internal/models"
	"github.com/Belphemur/TorecSubtitles/internal/parser"
)

// GetYear scrapes a candidate detail page. Series pages carry a year range,
// movie pages a single year.
func (c *client) GetYear(ctx context.Context, pageURL string, mediaType models.MediaType) (models.YearRange, bool, error) {
	body, err := c.fetchPage(ctx, pageURL, endpointDetail)
	if err != nil {
		return models.YearRange{}, false, err
	}

	p := c.movieYearParser
	if mediaType == models.MediaTypeSeriesWithSubtitle {
		p = c.seriesYearParser
	}
	return p.ParseYear(bytes.NewReader(body))
}

func (c *client) GetEpisodeIndex(ctx context.Context, seriesURL string) (models.EpisodeIndex, error) {
	body, err := c.fetchPage(ctx, seriesURL, endpointSeries)
	if err != nil {
		return nil, err
	}
	return c.episodeParser.ParseEpisodeIndex(bytes.NewReader(body))
}

func (c *client) GetReleases(ctx context.Context, listingURL string) (models.ReleaseList, error) {
	body, err := c.fetchPage(ctx, listingURL, endpointListing)
	if err != nil {
		return nil, err
	}
	releases, err := c.releaseParser.ParseHtml(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return models.ReleaseList(releases), nil
}

// fetchPage GETs an HTML page and returns it converted to UTF-8. Pages are
// served from the page cache when one is configured.
func (c *client) fetchPage(ctx context.Context, pageURL, endpoint string) ([]byte, error) {
	logger := config.GetLogger()

	if c.pageCache != nil {
		if cached, ok := c.pageCache.Get(pageURL); ok {
			logger.Debug().Str("url", pageURL).Str("endpoint", endpoint).Msg("Page served from cache")
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}

	logger.Debug().Str("url", pageURL).Str("endpoint", endpoint).Msg("Fetching page")
	resp, err := c.send(c.httpClient, req, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, apperrors.NewHTTPStatusError(pageURL, resp.StatusCode)
	}

	reader, err := parser.NewUTF8Reader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s page: %w", endpoint, err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s page: %w", endpoint, err)
	}

	if c.pageCache != nil {
		c.pageCache.Set(pageURL, body)
	}
	return body, nil
}
