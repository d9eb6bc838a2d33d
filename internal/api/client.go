package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public PastePortal listener endpoint.
const DefaultBaseURL = "https://api.pasteportal.info"

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      *RetryConfig
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithRetries sets the number of retries.
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = retries
	}
}

// WithRetryConfig replaces the whole retry policy.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. The client is stored as a
// shallow copy, so later options (WithTimeout in particular) never
// write into the caller's value. Apply it before WithTimeout when
// combining the two.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		dup := *client
		c.httpClient = &dup
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry: DefaultRetryConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	// Status-code retries are limited to GET: a POST that reached the
	// listener may have stored the paste even though the response was
	// an error, and each attempt would mint a fresh ID.
	retryOnStatus := method == http.MethodGet

	url := c.baseURL + path
	for attempt := 0; ; attempt++ {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("X-API-Key", c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if attempt < c.retry.MaxRetries {
				if werr := c.retry.Wait(ctx, attempt); werr != nil {
					return werr
				}
				continue
			}
			return &NetworkError{Err: err, URL: url, Attempt: attempt}
		}

		if resp.StatusCode >= 400 {
			if retryOnStatus && c.retry.ShouldRetry(attempt, resp.StatusCode) {
				resp.Body.Close()
				if werr := c.retry.Wait(ctx, attempt); werr != nil {
					return werr
				}
				continue
			}
			apiErr := parseErrorResponse(resp)
			resp.Body.Close()
			return apiErr
		}

		if result != nil {
			if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
				resp.Body.Close()
				return fmt.Errorf("failed to decode response: %w", err)
			}
		}
		resp.Body.Close()
		return nil
	}
}

// parseErrorResponse normalizes the listener's assorted error shapes
// into an *APIError.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	requestID := resp.Header.Get("X-Amzn-Requestid")

	// The listener's fallback shape, also used when its own error
	// formatting trips over itself: {"error": "..."}. API Gateway uses
	// a bare {"message": "..."} for auth failures.
	var flat struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &flat); err == nil {
		if flat.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: flat.Error, RequestID: requestID}
		}
		if flat.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: flat.Message, RequestID: requestID}
		}
	}

	// The GET handler reports errors inside the usual wrapper; a
	// missing paste carries "id": "Not Found" on an HTTP 400.
	var wrapped wireResponse
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Response.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    wrapped.Response.Message,
			RequestID:  requestID,
			NotFound:   wrapped.Response.ID == "Not Found",
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: string(body), RequestID: requestID}
}
