// Package app provides router configuration.
package app

import (
	"time"

	"github.com/guttosm/grimoire-service/config"
	"github.com/guttosm/grimoire-service/internal/http"
	"github.com/guttosm/grimoire-service/internal/middleware"
	"github.com/guttosm/grimoire-service/internal/repository"
	"github.com/guttosm/grimoire-service/internal/service"
)

// healthProbeTimeout bounds each readiness probe.
const healthProbeTimeout = 2 * time.Second

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	// RateLimiter is nil when rate limiting is disabled.
	RateLimiter *middleware.RateLimiter
}

// InitializeRouter builds the health handler and router configuration.
// dbComponents may be nil, in which case deck CRUD routes are not mounted.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	var deckRepo repository.DeckRepositoryInterface
	if dbComponents != nil {
		deckRepo = dbComponents.DeckRepo
		healthHandler.RegisterChecker("mongodb", http.NewProbeChecker(dbComponents.DB.HealthCheck, healthProbeTimeout))
		healthHandler.RegisterCircuitBreaker("mongodb", dbComponents.DeckCircuitBreaker)
	}
	if services.ImageCacheProbe != nil {
		healthHandler.RegisterChecker("redis", http.NewProbeChecker(services.ImageCacheProbe, healthProbeTimeout))
	}
	healthHandler.RegisterCircuitBreaker("card-images", services.ImageBreaker)

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	routerCfg := http.RouterConfig{
		RateLimiter:         limiter,
		RequestTimeout:      cfg.Server.RequestTimeout,
		EnableAuth:          cfg.Auth.Enabled,
		APIKeys:             cfg.Auth.APIKeys,
		CORSOrigins:         cfg.Server.CORSOrigins,
		SwaggerUser:         cfg.Server.SwaggerUser,
		SwaggerPass:         cfg.Server.SwaggerPass,
		SearchService:       services.Search,
		PromptService:       services.Prompt,
		ImageService:        services.Images,
		DeckService:         service.NewDeckService(deckRepo),
		DecksStorageEnabled: deckRepo != nil,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
		RateLimiter:   limiter,
	}
}
