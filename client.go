package pasteportal

import (
	"strings"

	"github.com/stiliajohny/pasteportal-sub001/internal/api"
)

// Client is the PastePortal client. It is stateless after construction
// and safe for concurrent use; there is no Close.
type Client struct {
	apiClient  *api.Client
	webBaseURL string
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithRetries(cfg.retries),
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	// A supplied client keeps its own timeout unless one was asked for
	// explicitly.
	if cfg.httpClient == nil || cfg.timeoutSet {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}

	return api.New(apiKey, apiOpts...)
}

// New creates a new PastePortal client with the given API key.
// Construction is local: the key is not verified until the first
// request.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:    defaultBaseURL,
		webBaseURL: defaultWebBaseURL,
		timeout:    defaultTimeout,
		retries:    defaultRetries,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient:  apiClient,
		webBaseURL: strings.TrimRight(cfg.webBaseURL, "/"),
	}, nil
}
