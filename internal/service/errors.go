package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingQuery is returned when a search is requested with a blank query.
	ErrMissingQuery = errors.New("missing search query")
	// ErrMissingPageToken is returned when a page is requested without a token.
	ErrMissingPageToken = errors.New("missing page token")
	// ErrInvalidPageToken is returned when a page token does not point at the search endpoint.
	ErrInvalidPageToken = errors.New("invalid page token")
	// ErrMissingPrompt is returned when a prompt search is requested with blank text.
	ErrMissingPrompt = errors.New("missing prompt text")
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrDeckNotFound is returned when a deck does not exist.
	ErrDeckNotFound = errors.New("deck not found")
	// ErrInvalidDeckID is returned when a deck ID is not a valid object ID.
	ErrInvalidDeckID = errors.New("invalid deck id")
	// ErrInvalidDeck wraps deck validation failures.
	ErrInvalidDeck = errors.New("invalid deck")
	// ErrImageNotFound is returned when a card or its image does not exist upstream.
	ErrImageNotFound = errors.New("card image not found")
	// ErrImageUnavailable is returned when the image upstream cannot be reached.
	ErrImageUnavailable = errors.New("card image unavailable")
)

// UpstreamError reports a failed call to an upstream HTTP API.
// Either StatusCode is set (non-success response) or Err is (transport failure).
type UpstreamError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream request failed: %v", e.Err)
	}
	return fmt.Sprintf("upstream error %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure was a transport error or a 5xx response.
// Cancellation is never retryable.
func (e *UpstreamError) Retryable() bool {
	if e.Err != nil {
		return !errors.Is(e.Err, context.Canceled)
	}
	return e.StatusCode >= http.StatusInternalServerError
}

// IsNotFound reports whether the upstream answered 404.
func (e *UpstreamError) IsNotFound() bool {
	return e.Err == nil && e.StatusCode == http.StatusNotFound
}

// IsUpstreamError reports whether err is or wraps an *UpstreamError.
func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}
