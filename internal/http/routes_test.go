package http

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/grimoire-service/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(router *gin.Engine) []string {
	var routes []string
	for _, r := range router.Routes() {
		routes = append(routes, r.Method+" "+r.Path)
	}
	return routes
}

func TestCardRoutes_RegisterRoutes(t *testing.T) {
	tests := []struct {
		name     string
		cfg      RouterConfig
		expected []string
		absent   []string
	}{
		{
			name: "all card services",
			cfg: RouterConfig{
				SearchService: &mocks.MockSearchService{},
				PromptService: &mocks.MockPromptService{},
				ImageService:  &mocks.MockImageService{},
			},
			expected: []string{"GET /api/cards/search", "POST /api/cards/prompt", "GET /api/card-image/:id"},
		},
		{
			name:     "search without prompt parser",
			cfg:      RouterConfig{SearchService: &mocks.MockSearchService{}},
			expected: []string{"GET /api/cards/search"},
			absent:   []string{"POST /api/cards/prompt", "GET /api/card-image/:id"},
		},
		{
			name:   "no services",
			cfg:    RouterConfig{},
			absent: []string{"GET /api/cards/search", "GET /api/card-image/:id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			NewCardRoutes(&tt.cfg).RegisterRoutes(router.Group("/api"), &tt.cfg)

			routes := registeredRoutes(router)
			for _, r := range tt.expected {
				assert.Contains(t, routes, r)
			}
			for _, r := range tt.absent {
				assert.NotContains(t, routes, r)
			}
		})
	}
}

func TestDeckRoutes_RegisterRoutes(t *testing.T) {
	crud := []string{
		"GET /api/decks",
		"POST /api/decks",
		"GET /api/decks/:id",
		"PUT /api/decks/:id",
		"DELETE /api/decks/:id",
	}

	t.Run("storage enabled", func(t *testing.T) {
		cfg := RouterConfig{DecksStorageEnabled: true}
		router := gin.New()
		NewDeckRoutes(&mocks.MockDeckService{}).RegisterRoutes(router.Group("/api"), &cfg)

		routes := registeredRoutes(router)
		assert.Contains(t, routes, "POST /api/decks/parse")
		for _, r := range crud {
			assert.Contains(t, routes, r)
		}
	})

	t.Run("storage disabled keeps parsing", func(t *testing.T) {
		cfg := RouterConfig{}
		router := gin.New()
		NewDeckRoutes(&mocks.MockDeckService{}).RegisterRoutes(router.Group("/api"), &cfg)

		routes := registeredRoutes(router)
		assert.Equal(t, []string{"POST /api/decks/parse"}, routes)
	})
}
