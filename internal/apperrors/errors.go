package apperrors

import (
	"errors"
	"fmt"
)

// ErrDownloadNotImplemented is returned by DownloadSubtitle: the site's download
// handshake is not supported.
var ErrDownloadNotImplemented = errors.New("subtitle download is not implemented for this provider")

// ConfigurationError is returned when a provider is constructed with an invalid configuration.
type ConfigurationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *ConfigurationError) Is(target error) bool {
	_, ok := target.(*ConfigurationError)
	return ok
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(reason string) *ConfigurationError {
	return &ConfigurationError{Reason: reason}
}

// AuthenticationError is returned when the login endpoint rejects the credentials.
type AuthenticationError struct {
	Username string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for user %q", e.Username)
}

// Is allows for error checking with errors.Is().
func (e *AuthenticationError) Is(target error) bool {
	_, ok := target.(*AuthenticationError)
	return ok
}

// NewAuthenticationError creates a new AuthenticationError.
func NewAuthenticationError(username string) *AuthenticationError {
	return &AuthenticationError{Username: username}
}

// HTTPStatusError is returned when the site answers with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *HTTPStatusError) Is(target error) bool {
	_, ok := target.(*HTTPStatusError)
	return ok
}

// NewHTTPStatusError creates a new HTTPStatusError.
func NewHTTPStatusError(url string, statusCode int) *HTTPStatusError {
	return &HTTPStatusError{URL: url, StatusCode: statusCode}
}

// ProviderError reports a provider-level failure that is not tied to transport.
type ProviderError struct {
	Reason string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error: %s", e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *ProviderError) Is(target error) bool {
	_, ok := target.(*ProviderError)
	return ok
}

// NewProviderError creates a new ProviderError.
func NewProviderError(reason string) *ProviderError {
	return &ProviderError{Reason: reason}
}
