//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := strings.Repeat("lightning bolt ", 100)

	tests := []struct {
		name             string
		path             string
		acceptEncoding   string
		expectCompressed bool
	}{
		{
			name:             "compresses when Accept-Encoding includes gzip",
			path:             "/api/cards/search",
			acceptEncoding:   "gzip",
			expectCompressed: true,
		},
		{
			name:             "compresses when Accept-Encoding includes gzip, deflate",
			path:             "/api/cards/search",
			acceptEncoding:   "gzip, deflate",
			expectCompressed: true,
		},
		{
			name:             "does not compress when no Accept-Encoding",
			path:             "/api/cards/search",
			expectCompressed: false,
		},
		{
			name:             "skips excluded image path",
			path:             "/api/card-image/abc",
			acceptEncoding:   "gzip",
			expectCompressed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Compression("/api/card-image/"))
			router.GET("/api/cards/search", func(c *gin.Context) {
				c.String(http.StatusOK, body)
			})
			router.GET("/api/card-image/:id", func(c *gin.Context) {
				c.String(http.StatusOK, body)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.expectCompressed {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
			}
		})
	}
}
