package pasteportal

import (
	"net/http"
	"time"
)

const (
	defaultBaseURL    = "https://api.pasteportal.info"
	defaultWebBaseURL = "https://pasteportal.info"
	defaultTimeout    = 30 * time.Second
	defaultRetries    = 3

	// anonymousUser is the creator/recipient placeholder the service
	// uses when no GitHub username is supplied.
	anonymousUser = "anonymous"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	webBaseURL string
	httpClient *http.Client
	timeout    time.Duration
	timeoutSet bool
	retries    int
}

// pasteConfig holds configuration for paste creation.
type pasteConfig struct {
	creator   string
	recipient string
}

// Option configures the client.
type Option func(*clientConfig)

// PasteOption configures paste creation.
type PasteOption func(*pasteConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithWebBaseURL sets the base URL used by ShareURL. This is the web
// frontend, not the API.
func WithWebBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.webBaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The supplied value is
// never modified: the client works on a shallow copy, and the copy
// keeps the supplied client's timeout unless WithTimeout is also
// given.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
		c.timeoutSet = true
	}
}

// WithRetries sets the number of retries for API calls.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithCreator sets the creator GitHub username recorded on the paste.
func WithCreator(username string) PasteOption {
	return func(c *pasteConfig) {
		c.creator = username
	}
}

// WithRecipient sets the recipient GitHub username recorded on the
// paste.
func WithRecipient(username string) PasteOption {
	return func(c *pasteConfig) {
		c.recipient = username
	}
}
