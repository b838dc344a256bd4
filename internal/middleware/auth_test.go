//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validKeys := map[string]bool{"valid-key-123": true, "another-valid-key": true}

	tests := []struct {
		name           string
		validKeys      map[string]bool
		setupRequest   func(*http.Request)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "allows request with valid API key in header",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "valid-key-123") },
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
		{
			name:           "allows request with bearer API key",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.Header.Set("Authorization", "Bearer another-valid-key") },
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
		{
			name:           "allows request with valid API key in query",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.URL.RawQuery = "api_key=valid-key-123" },
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
		{
			name:           "rejects request without API key",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "API key is required",
		},
		{
			name:           "rejects request with invalid API key",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "wrong") },
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid API key",
		},
		{
			name:           "disabled when no keys configured",
			validKeys:      nil,
			setupRequest:   func(req *http.Request) {},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), APIKeyAuth(tt.validKeys))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestAPIKeyAuth_SetsFingerprint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuth(map[string]bool{"k": true}))
	var id string
	router.GET("/test", func(c *gin.Context) {
		id = GetAPIKeyID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(APIKeyHeader, "k")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Len(t, id, 12)
	assert.NotContains(t, id, "k")
}

func TestMutationsOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	keys := map[string]bool{"deck-key": true}

	tests := []struct {
		name           string
		method         string
		key            string
		expectedStatus int
	}{
		{name: "get passes without key", method: http.MethodGet, expectedStatus: http.StatusOK},
		{name: "post requires key", method: http.MethodPost, expectedStatus: http.StatusUnauthorized},
		{name: "post with key", method: http.MethodPost, key: "deck-key", expectedStatus: http.StatusOK},
		{name: "delete requires key", method: http.MethodDelete, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(MutationsOnly(APIKeyAuth(keys)))
			router.Handle(tt.method, "/decks", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/decks", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
