package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/middleware"
	"github.com/guttosm/grimoire-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewRouter(t *testing.T) {
	tests := []struct {
		name string
		cfg  RouterConfig
	}{
		{name: "default config", cfg: DefaultRouterConfig()},
		{
			name: "auth enabled",
			cfg: RouterConfig{
				EnableAuth: true,
				APIKeys:    map[string]bool{"test-key": true},
			},
		},
		{name: "rate limiting", cfg: RouterConfig{RateLimiter: middleware.NewRateLimiter(5, time.Second)}},
		{name: "swagger basic auth", cfg: RouterConfig{SwaggerUser: "admin", SwaggerPass: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cfg.RateLimiter != nil {
				t.Cleanup(tt.cfg.RateLimiter.Stop)
			}
			assert.NotNil(t, NewRouter(NewHealthHandler(), tt.cfg))
		})
	}
}

func TestRouter_Endpoints(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.SearchService = &mocks.MockSearchService{}
	router := NewRouter(NewHealthHandler(), cfg)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "healthz endpoint", method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readyz endpoint", method: http.MethodGet, path: "/readyz", expectedStatus: http.StatusOK},
		{name: "metrics endpoint", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "swagger endpoint", method: http.MethodGet, path: "/swagger/index.html", expectedStatus: http.StatusOK},
		{name: "search without query", method: http.MethodGet, path: "/api/cards/search", expectedStatus: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/api/calculate", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_SwaggerBasicAuth(t *testing.T) {
	router := NewRouter(NewHealthHandler(), RouterConfig{SwaggerUser: "admin", SwaggerPass: "secret"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.SetBasicAuth("admin", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := NewRouter(NewHealthHandler(), DefaultRouterConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/cards/search", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimitScope(t *testing.T) {
	const limit = 5

	search := &mocks.MockSearchService{}
	search.On("SearchLite", mock.Anything, "t:elf").Return(model.SearchResult{}, nil)
	images := &mocks.MockImageService{}
	images.On("Get", mock.Anything, "abc").
		Return(model.CardImage{Data: []byte{0xFF, 0xD8, 0xFF}, ContentType: "image/jpeg"}, nil)

	limiter := middleware.NewRateLimiter(limit, time.Minute)
	t.Cleanup(limiter.Stop)

	cfg := DefaultRouterConfig()
	cfg.RateLimiter = limiter
	cfg.SearchService = search
	cfg.ImageService = images
	router := NewRouter(NewHealthHandler(), cfg)

	t.Run("card images are never throttled", func(t *testing.T) {
		for i := 0; i < limit*3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/card-image/abc", nil)
			req.RemoteAddr = "127.0.0.1:40000"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, "image request %d", i+1)
			assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
		}
	})

	t.Run("search is throttled after the limit", func(t *testing.T) {
		codes := make([]int, 0, limit+1)
		for i := 0; i <= limit; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/cards/search?q=t:elf", nil)
			req.RemoteAddr = "127.0.0.1:40000"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		assert.Equal(t, http.StatusOK, codes[limit-1])
		assert.Equal(t, http.StatusTooManyRequests, codes[limit])
	})

	t.Run("health probes are never throttled", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "127.0.0.1:40000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
