package pasteportal

import (
	"errors"
	"fmt"

	"github.com/stiliajohny/pasteportal-sub001/internal/api"
	"github.com/stiliajohny/pasteportal-sub001/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid or missing.
	ErrUnauthorized = errors.New("invalid or missing API key")

	// ErrPasteNotFound is returned when a paste is not found.
	ErrPasteNotFound = errors.New("paste not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrPasteTooLarge is returned when paste content exceeds the 400KB
	// store limit.
	ErrPasteTooLarge = errors.New("paste content exceeds the 400KB limit")

	// ErrEmptyContent is returned when paste content is empty.
	ErrEmptyContent = errors.New("paste content cannot be empty")

	// ErrEmptyPasteID is returned when a paste ID is empty.
	ErrEmptyPasteID = errors.New("paste ID cannot be empty")

	// ErrEmptyEnvelope is returned when encrypted content is empty.
	ErrEmptyEnvelope = errors.New("encrypted content cannot be empty")

	// ErrDecryptionFailed is returned when decryption fails for any
	// reason: malformed envelope, wrong password, or corrupted content.
	// The cause is intentionally not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrPasswordTooShort is returned when a paste password is under 8
	// characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrPasswordTooLong is returned when a paste password is over 30
	// characters.
	ErrPasswordTooLong = errors.New("password must be at most 30 characters")

	// ErrPasswordForbiddenChar is returned when a paste password
	// contains whitespace or control characters.
	ErrPasswordForbiddenChar = errors.New("password must not contain spaces or control characters")

	// ErrPasswordNeedsMixedCase is returned by ValidateAccountPassword
	// when a password lacks both upper and lower case letters.
	ErrPasswordNeedsMixedCase = errors.New("password must contain both uppercase and lowercase letters")

	// ErrPasswordNeedsDigit is returned by ValidateAccountPassword when
	// a password lacks a digit.
	ErrPasswordNeedsDigit = errors.New("password must contain at least one digit")

	// ErrPasswordNeedsSymbol is returned by ValidateAccountPassword when
	// a password lacks a symbol.
	ErrPasswordNeedsSymbol = errors.New("password must contain at least one symbol")
)

// PastePortalError is implemented by all SDK errors.
type PastePortalError interface {
	error
	PastePortalError() // marker method
}

// APIError represents an HTTP error from the PastePortal API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string // if returned by the gateway
	// NotFound marks a missing-paste response. The deployed service
	// reports those with HTTP 400 plus a "Not Found" body marker
	// rather than a 404, so StatusCode alone cannot be used.
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
		return target == ErrPasteTooLarge
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

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// PastePortalError implements the PastePortalError interface.
func (e *NetworkError) PastePortalError() {}

// ValidationError reports a rejected input. Err is the matching
// sentinel, so errors.Is() works against the Err* values above.
type ValidationError struct {
	Field  string // "password", "content", "envelope", "id"
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return e.Err.Error()
}

// Unwrap returns the sentinel this validation failure maps to.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PastePortalError implements the PastePortalError interface.
func (e *ValidationError) PastePortalError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			RequestID:  apiErr.RequestID,
			NotFound:   apiErr.NotFound,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}

// wrapCryptoError converts internal crypto errors to public errors.
// Validation failures become ValidationErrors around the matching
// sentinel; everything that happens after validation collapses to
// ErrDecryptionFailed.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrPasswordTooShort):
		return &ValidationError{Field: "password", Reason: err.Error(), Err: ErrPasswordTooShort}
	case errors.Is(err, crypto.ErrPasswordTooLong):
		return &ValidationError{Field: "password", Reason: err.Error(), Err: ErrPasswordTooLong}
	case errors.Is(err, crypto.ErrPasswordForbiddenChar):
		return &ValidationError{Field: "password", Reason: err.Error(), Err: ErrPasswordForbiddenChar}
	case errors.Is(err, crypto.ErrEmptyPlaintext):
		return &ValidationError{Field: "content", Reason: err.Error(), Err: ErrEmptyContent}
	case errors.Is(err, crypto.ErrEmptyEnvelope):
		return &ValidationError{Field: "envelope", Reason: err.Error(), Err: ErrEmptyEnvelope}
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return ErrDecryptionFailed
	}

	return err
}
