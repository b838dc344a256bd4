//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	isUUID := func(t *testing.T, id string) {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}

	tests := []struct {
		name        string
		headerValue string
		validate    func(*testing.T, string)
	}{
		{
			name:     "generates new request ID when not provided",
			validate: isUUID,
		},
		{
			name:        "uses provided request ID from header",
			headerValue: "custom-request-id-123",
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "custom-request-id-123", id)
			},
		},
		{
			name:        "replaces request ID with spaces",
			headerValue: "bad id",
			validate:    isUUID,
		},
		{
			name:        "replaces oversized request ID",
			headerValue: strings.Repeat("a", maxRequestIDLength+1),
			validate:    isUUID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.headerValue != "" {
				req.Header.Set(RequestIDHeader, tt.headerValue)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			requestID := w.Body.String()
			assert.Equal(t, requestID, w.Header().Get(RequestIDHeader))
			tt.validate(t, requestID)
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))
}
