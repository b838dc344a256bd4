package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/grimoire-service/internal/domain/dto"
	"github.com/guttosm/grimoire-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
	// APIKeyIDKey is the context key holding a short fingerprint of the caller's key.
	APIKeyIDKey ContextKey = "api_key_id"
)

// APIKeyAuth returns a middleware that validates API keys.
// It checks X-API-Key, then an Authorization bearer value, then the api_key query parameter.
// If validKeys is nil or empty, authentication is disabled.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := extractAPIKey(c)
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !validKeys[key] {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(string(APIKeyIDKey), keyFingerprint(key))
		c.Next()
	}
}

// MutationsOnly applies next to state-changing requests and lets safe methods through.
func MutationsOnly(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			next(c)
		}
	}
}

// GetAPIKeyID returns the fingerprint set by APIKeyAuth, or "".
func GetAPIKeyID(c *gin.Context) string {
	return c.GetString(string(APIKeyIDKey))
}

func extractAPIKey(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		return key
	}
	if auth := c.GetHeader("Authorization"); len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return c.Query(APIKeyQuery)
}

func keyFingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:6])
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
}
