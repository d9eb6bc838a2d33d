package api

import (
	"context"
	"net/http"
	"net/url"
)

// CreatePaste stores a paste and returns the listener's receipt.
func (c *Client) CreatePaste(ctx context.Context, params CreatePasteParams) (*CreatePasteResult, error) {
	req := createPasteRequest{
		Paste:     params.Content,
		Creator:   params.Creator,
		Recipient: params.Recipient,
	}

	var resp wireResponse
	if err := c.do(ctx, http.MethodPost, "/", req, &resp); err != nil {
		return nil, err
	}

	return &CreatePasteResult{
		ID:        resp.Response.ID,
		Message:   resp.Response.Message,
		Timestamp: resp.Response.Timestamp,
		Paste:     resp.Response.Paste,
		Joke:      resp.Response.Joke,
	}, nil
}

// GetPaste fetches a paste by ID. The listener requires id to be the
// only query parameter.
func (c *Client) GetPaste(ctx context.Context, id string) (*GetPasteResult, error) {
	path := "/?id=" + url.QueryEscape(id)

	var resp wireResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return &GetPasteResult{
		ID:        resp.Response.ID,
		Message:   resp.Response.Message,
		Paste:     resp.Response.Paste,
		Creator:   resp.Response.Creator,
		Recipient: resp.Response.Recipient,
		Joke:      resp.Response.Joke,
	}, nil
}
