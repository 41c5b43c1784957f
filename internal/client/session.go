package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Belphemur/TorecSubtitles/internal/apperrors"
	"github.com/Belphemur/TorecSubtitles/internal/config"
	"github.com/Belphemur/TorecSubtitles/internal/metrics"
	"github.com/Belphemur/TorecSubtitles/internal/models"
	"github.com/Belphemur/TorecSubtitles/internal/parser"
)

// loginRejected is the whole body the login endpoint answers on bad
// credentials; the status code is 200 either way.
var loginRejected = []byte("1")

// Login posts the credentials. Redirects are not followed.
func (c *client) Login(ctx context.Context, username, password string) error {
	logger := config.GetLogger()

	endpoint := c.endpointURL(loginPath, url.Values{
		"rnd": {strconv.FormatFloat(rand.Float64(), 'f', -1, 64)},
	})
	form := url.Values{
		"form":     {"true"},
		"username": {username},
		"password": {password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	logger.Debug().Str("username", username).Msg("Logging in")
	body, _, err := c.do(c.loginClient, req, endpointLogin)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.StatusError).Inc()
		return fmt.Errorf("login request failed: %w", err)
	}

	if bytes.Equal(body, loginRejected) {
		metrics.LoginsTotal.WithLabelValues(metrics.StatusRejected).Inc()
		logger.Error().Str("username", username).Msg("Login rejected")
		return apperrors.NewAuthenticationError(username)
	}

	metrics.LoginsTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	logger.Info().Str("username", username).Msg("Logged in")
	return nil
}

// Logout ends the session; any non-2xx answer is an *apperrors.HTTPStatusError.
func (c *client) Logout(ctx context.Context) error {
	logger := config.GetLogger()

	endpoint := c.endpointURL(logoutPath, url.Values{"redirected": {"true"}})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create logout request: %w", err)
	}

	logger.Info().Msg("Logging out")
	resp, err := c.send(c.shortClient, req, endpointLogout)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !isSuccess(resp.StatusCode) {
		return apperrors.NewHTTPStatusError(endpoint, resp.StatusCode)
	}

	logger.Info().Msg("Logged out")
	return nil
}

// SearchSuggestions queries the autocomplete endpoint. Apostrophes are sent
// as spaces; the site search rejects them.
func (c *client) SearchSuggestions(ctx context.Context, title string) ([]models.Suggestion, error) {
	logger := config.GetLogger()

	endpoint := c.endpointURL(searchPath, url.Values{"query": {strings.ReplaceAll(title, "'", " ")}})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	logger.Info().Str("title", title).Msg("Searching suggestions")
	resp, err := c.send(c.shortClient, req, endpointSearch)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, apperrors.NewHTTPStatusError(endpoint, resp.StatusCode)
	}

	var body io.Reader = resp.Body
	contentType := resp.Header.Get("Content-Type")
	if _, params, err := mime.ParseMediaType(contentType); err == nil && params["charset"] != "" {
		if body, err = parser.NewUTF8Reader(resp.Body, contentType); err != nil {
			return nil, fmt.Errorf("failed to decode search response: %w", err)
		}
	}

	return parser.ParseSuggestions(body)
}

// send executes req and records the outcome. The caller closes the body.
func (c *client) send(hc *http.Client, req *http.Request, endpoint string) (*http.Response, error) {
	resp, err := hc.Do(req)
	if err != nil {
		metrics.HTTPRequestsTotal.WithLabelValues(endpoint, metrics.StatusError).Inc()
		logger := config.GetLogger()
		logger.Error().Err(err).Str("endpoint", endpoint).Str("url", req.URL.String()).Msg("Request failed")
		return nil, err
	}
	metrics.HTTPRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// do executes req and returns the whole body whatever the status code.
func (c *client) do(hc *http.Client, req *http.Request, endpoint string) ([]byte, int, error) {
	resp, err := c.send(hc, req, endpoint)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
