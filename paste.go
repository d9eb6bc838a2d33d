package pasteportal

import (
	"context"
	"net/url"
	"time"

	"github.com/stiliajohny/pasteportal-sub001/internal/api"
)

// MaxPasteSize is the largest paste the service stores, in bytes.
const MaxPasteSize = api.MaxPasteSize

// Paste is a stored paste.
type Paste struct {
	ID        string
	Content   string
	Creator   string
	Recipient string
	// Joke is the service's banter line attached to every response.
	Joke string
}

// PasteReceipt confirms a stored paste.
type PasteReceipt struct {
	ID        string
	CreatedAt time.Time
	Joke      string
}

// CreatePaste stores content and returns a receipt with the paste ID.
// Content must be non-empty and at most MaxPasteSize bytes; both are
// checked before any network call.
func (c *Client) CreatePaste(ctx context.Context, content string, opts ...PasteOption) (*PasteReceipt, error) {
	if content == "" {
		return nil, &ValidationError{Field: "content", Reason: ErrEmptyContent.Error(), Err: ErrEmptyContent}
	}
	if len(content) > MaxPasteSize {
		return nil, &ValidationError{Field: "content", Reason: ErrPasteTooLarge.Error(), Err: ErrPasteTooLarge}
	}

	cfg := &pasteConfig{
		creator:   anonymousUser,
		recipient: anonymousUser,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.creator == "" {
		cfg.creator = anonymousUser
	}
	if cfg.recipient == "" {
		cfg.recipient = anonymousUser
	}

	result, err := c.apiClient.CreatePaste(ctx, api.CreatePasteParams{
		Content:   content,
		Creator:   cfg.creator,
		Recipient: cfg.recipient,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &PasteReceipt{
		ID:        result.ID,
		CreatedAt: api.ParseTimestamp(result.Timestamp),
		Joke:      result.Joke,
	}, nil
}

// GetPaste fetches a paste by ID. Content comes back byte-for-byte as
// stored; the service never normalizes or re-encodes it, so an
// encrypted envelope survives the round trip intact.
//
// A missing paste is reported as ErrPasteNotFound via errors.Is.
func (c *Client) GetPaste(ctx context.Context, id string) (*Paste, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: ErrEmptyPasteID.Error(), Err: ErrEmptyPasteID}
	}

	result, err := c.apiClient.GetPaste(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}

	paste := &Paste{
		ID:        result.ID,
		Content:   result.Paste,
		Creator:   result.Creator,
		Recipient: result.Recipient,
		Joke:      result.Joke,
	}
	if paste.ID == "" {
		paste.ID = id
	}
	return paste, nil
}

// CreateProtectedPaste encrypts plaintext with the password and stores
// the resulting envelope. Password and content validation errors
// surface before any network call.
func (c *Client) CreateProtectedPaste(ctx context.Context, password, plaintext string, opts ...PasteOption) (*PasteReceipt, error) {
	envelope, err := EncryptWithPassword(password, plaintext)
	if err != nil {
		return nil, err
	}
	return c.CreatePaste(ctx, envelope, opts...)
}

// GetProtectedPaste fetches a paste and decrypts its content with the
// password. On success Content holds the plaintext. A wrong password
// fails with ErrDecryptionFailed, exactly like a corrupted envelope.
func (c *Client) GetProtectedPaste(ctx context.Context, id, password string) (*Paste, error) {
	paste, err := c.GetPaste(ctx, id)
	if err != nil {
		return nil, err
	}

	plaintext, err := DecryptWithPassword(password, paste.Content)
	if err != nil {
		return nil, err
	}

	paste.Content = plaintext
	return paste, nil
}

// ShareURL returns the web URL a recipient opens to view a paste.
func (c *Client) ShareURL(id string) string {
	return c.webBaseURL + "/?id=" + url.QueryEscape(id)
}
