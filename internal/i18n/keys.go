package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates a dependency is not configured or reachable.
	ErrKeyServiceUnavailable = "error.service_unavailable"

	// ErrKeyMissingQuery indicates a search without q or next.
	ErrKeyMissingQuery = "error.search.missing_query"
	// ErrKeyInvalidPageToken indicates a next token that does not point at the search upstream.
	ErrKeyInvalidPageToken = "error.search.invalid_next"
	// ErrKeyMissingPrompt indicates a prompt search with blank text.
	ErrKeyMissingPrompt = "error.search.missing_prompt"
	// ErrKeyUpstreamFailed indicates the card-search API failed.
	ErrKeyUpstreamFailed = "error.search.upstream_failed"
	// ErrKeyParserFailed indicates the prompt parser failed.
	ErrKeyParserFailed = "error.search.parser_failed"

	// ErrKeyImageNotFound indicates the card or its image does not exist.
	ErrKeyImageNotFound = "error.image.not_found"
	// ErrKeyImageUnavailable indicates the image upstream cannot be reached.
	ErrKeyImageUnavailable = "error.image.unavailable"

	// ErrKeyDeckNotFound indicates a missing deck.
	ErrKeyDeckNotFound = "error.deck.not_found"
	// ErrKeyInvalidDeckID indicates a malformed deck ID.
	ErrKeyInvalidDeckID = "error.deck.invalid_id"
	// ErrKeyInvalidDeck indicates a deck failed validation.
	ErrKeyInvalidDeck = "error.deck.invalid"
)
