// Package api is the HTTP client for the PastePortal REST listener.
// It handles authentication, request/response serialization, and
// automatic retry with exponential backoff for transient failures.
//
// # Wire Format
//
// The listener exposes two operations: POST / stores a paste, GET /?id=
// fetches one. The API key travels in the X-API-Key header. Successful
// payloads arrive wrapped in a "response" object:
//
//	{"response": {"message": ..., "id": "1a2b3c", "paste": ..., "joke": ...}}
//
// Error bodies are not uniform across the deployed handlers: some paths
// return {"error": "..."}, API Gateway itself returns {"message": "..."},
// and the GET handler reports problems inside the usual "response"
// wrapper with HTTP 400. A missing paste is one of those 400s, flagged
// by "id": "Not Found" rather than by an HTTP 404. parseErrorResponse
// normalizes all of them into an *APIError.
//
// # Retry Behavior
//
// Transport-level failures are retried for every method. HTTP status
// codes (408, 429, 500, 502, 503, 504 by default) only trigger a retry
// for GET requests: a POST that reached the listener may have stored
// the paste even though the response was lost, and the listener assigns
// a fresh ID per attempt. Delays follow exponential backoff with
// jitter; see [RetryConfig].
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// call methods on a single Client simultaneously.
package api
