package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("invalid or missing API key")
	// ErrPasteNotFound indicates the requested paste does not exist.
	ErrPasteNotFound = errors.New("paste not found")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrPayloadTooLarge indicates the listener rejected the request body size.
	ErrPayloadTooLarge = errors.New("request payload too large")
)

// APIError represents an HTTP error from the PastePortal listener.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
	// NotFound is set when the listener reported a missing paste. The
	// deployed GET handler does that with an HTTP 400 whose body
	// carries "id": "Not Found", so the status code alone is not
	// enough to tell.
	NotFound bool
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// PastePortalError implements the PastePortalError interface.
func (e *APIError) PastePortalError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	if target == ErrPasteNotFound {
		return e.NotFound || e.StatusCode == 404
	}
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 413:
		return target == ErrPayloadTooLarge
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// PastePortalError implements the PastePortalError interface.
func (e *NetworkError) PastePortalError() {}
