//go:build !integration

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		setupHandler   func(*gin.Engine)
		expectedStatus int
		expectedBody   string
		mustContain    []string
		expectLevel    string
	}{
		{
			name: "handles unwritten context errors",
			path: "/error",
			setupHandler: func(router *gin.Engine) {
				router.GET("/error", func(c *gin.Context) {
					_ = c.Error(errors.New("test error"))
				})
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    []string{"internal_error", "An unexpected error occurred"},
			expectLevel:    "error",
		},
		{
			name: "keeps handler response and logs warn for client errors",
			path: "/missing",
			setupHandler: func(router *gin.Engine) {
				router.GET("/missing", func(c *gin.Context) {
					_ = c.Error(errors.New("deck not found"))
					c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
				})
			},
			expectedStatus: http.StatusNotFound,
			mustContain:    []string{"not_found"},
			expectLevel:    "warn",
		},
		{
			name: "does nothing when no errors",
			path: "/ok",
			setupHandler: func(router *gin.Engine) {
				router.GET("/ok", func(c *gin.Context) {
					c.String(http.StatusOK, "ok")
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			tt.setupHandler(router)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
			if tt.expectLevel == "" {
				assert.Empty(t, buf.String())
				return
			}
			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.expectLevel, entry["level"])
		})
	}
}
