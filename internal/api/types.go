package api

import "time"

// MaxPasteSize is the largest paste content the listener accepts, in
// bytes. The backing store caps items at 400KB.
const MaxPasteSize = 400 * 1024

// CreatePasteParams are the inputs to CreatePaste.
type CreatePasteParams struct {
	Content   string
	Creator   string
	Recipient string
}

// CreatePasteResult is the listener's receipt for a stored paste.
type CreatePasteResult struct {
	ID        string
	Message   string
	Timestamp string
	Paste     string
	Joke      string
}

// GetPasteResult is a fetched paste.
type GetPasteResult struct {
	ID        string
	Message   string
	Paste     string
	Creator   string
	Recipient string
	Joke      string
}

type createPasteRequest struct {
	Paste     string `json:"paste"`
	Creator   string `json:"creator_gh_user"`
	Recipient string `json:"recipient_gh_username"`
}

// wireResponse is the listener's "response" wrapper. One payload struct
// covers both operations; fields absent from a given response are left
// zero.
type wireResponse struct {
	Response wirePayload `json:"response"`
}

type wirePayload struct {
	Message   string `json:"message"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	RawData   string `json:"raw_data"`
	Paste     string `json:"paste"`
	Creator   string `json:"creator_gh_user"`
	Recipient string `json:"recipient_gh_username"`
	Joke      string `json:"joke"`
}

// timestampLayouts are the shapes the listener has been seen to emit.
// The store writes datetime.isoformat() with no timezone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
}

// ParseTimestamp parses a listener timestamp, taking naive values as
// UTC. It returns the zero time when no known layout matches.
func ParseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
