//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/grimoire-service/config"
	"github.com/guttosm/grimoire-service/internal/circuitbreaker"
	"github.com/guttosm/grimoire-service/internal/mocks"
	"github.com/guttosm/grimoire-service/internal/repository"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router without deck storage",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:      100,
					RateWindow:     time.Minute,
					RequestTimeout: 5 * time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.HealthHandler)
				assert.False(t, components.Config.EnableAuth)
				assert.False(t, components.Config.DecksStorageEnabled)
				assert.NotNil(t, components.Config.DeckService)
				assert.NotNil(t, components.Config.SearchService)
				assert.NotNil(t, components.Config.ImageService)
				assert.NotNil(t, components.RateLimiter)
				assert.Same(t, components.RateLimiter, components.Config.RateLimiter)
				assert.Equal(t, 5*time.Second, components.Config.RequestTimeout)
			},
		},
		{
			name: "creates router with auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  50,
					RateWindow: 30 * time.Second,
				},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.True(t, components.Config.EnableAuth)
				assert.Equal(t, map[string]bool{"test-key": true}, components.Config.APIKeys)
				assert.NotNil(t, components.Config.RateLimiter)
			},
		},
		{
			name: "enables deck storage with a repository",
			dbComponents: &DatabaseComponents{
				DB:                 &repository.MongoDB{},
				DeckRepo:           &mocks.MockDeckRepository{},
				DeckCircuitBreaker: circuitbreaker.New(circuitbreaker.DefaultConfig()),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					CORSOrigins: []string{"http://localhost:3000"},
					SwaggerUser: "admin",
					SwaggerPass: "secret",
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.True(t, components.Config.DecksStorageEnabled)
				assert.Equal(t, []string{"http://localhost:3000"}, components.Config.CORSOrigins)
				assert.Equal(t, "admin", components.Config.SwaggerUser)
				assert.Equal(t, "secret", components.Config.SwaggerPass)
				assert.Nil(t, components.RateLimiter)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := InitializeServices(testConfig())

			components := InitializeRouter(services, tt.dbComponents, tt.cfg)
			if components.RateLimiter != nil {
				t.Cleanup(components.RateLimiter.Stop)
			}

			assert.NotNil(t, components)
			tt.validate(t, components)
		})
	}
}
