package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/grimoire-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeBadGateway indicates an upstream dependency failed.
	ErrCodeBadGateway = "upstream_error"
	// ErrCodeUnavailable indicates a dependency is not available.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the endpoint payload (a deck, a deck list or a parsed decklist)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"Missing q or next parameter"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway:
		return ErrCodeBadGateway
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// SearchResponse is returned by the card search endpoints.
// Query and NextPage are null when absent.
// @Description One page of lite cards
type SearchResponse struct {
	Data      []model.LiteCard `json:"data"`
	Query     *string          `json:"query" example:"t:goblin"`
	Count     int              `json:"count" example:"60"`
	HasMore   bool             `json:"has_more" example:"true"`
	NextPage  *string          `json:"next_page" example:"https://api.scryfall.com/cards/search?page=2&q=t%3Agoblin"`
	RequestID string           `json:"request_id,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
} // @name SearchResponse

// NewSearchResponse builds a SearchResponse from a search result.
func NewSearchResponse(query string, result model.SearchResult) SearchResponse {
	cards := result.Cards
	if cards == nil {
		cards = []model.LiteCard{}
	}
	return SearchResponse{
		Data:      cards,
		Query:     optionalString(query),
		Count:     len(cards),
		HasMore:   result.HasMore,
		NextPage:  optionalString(result.NextPage),
		Timestamp: time.Now(),
	}
}

// PromptResponse is returned by the prompt search endpoint.
// @Description Prompt search result with the parsed query parts
type PromptResponse struct {
	SearchResponse
	QueryParts []string `json:"query_parts"`
	Warnings   []string `json:"warnings"`
} // @name PromptResponse

// NewPromptResponse builds a PromptResponse from a prompt result.
func NewPromptResponse(result model.PromptResult) PromptResponse {
	return PromptResponse{
		SearchResponse: NewSearchResponse(result.Query, result.SearchResult),
		QueryParts:     result.QueryParts,
		Warnings:       result.Warnings,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
