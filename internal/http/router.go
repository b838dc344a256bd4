package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/grimoire-service/internal/metrics"
	"github.com/guttosm/grimoire-service/internal/middleware"
	"github.com/guttosm/grimoire-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// imagePathPrefix is excluded from gzip since image bytes are already compressed.
const imagePathPrefix = "/api/card-image/"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	// RateLimiter throttles the search, prompt and deck routes. Card images are
	// not throttled: a single results page fans out into dozens of image loads.
	// The owner of the limiter stops it.
	RateLimiter    *middleware.RateLimiter
	RequestTimeout time.Duration
	APIKeys        map[string]bool
	EnableAuth     bool
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string

	SearchService service.SearchService
	PromptService service.PromptService
	ImageService  service.ImageService
	DeckService   service.DeckService
	// DecksStorageEnabled mounts the deck CRUD routes; parsing is always available.
	DecksStorageEnabled bool
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RequestTimeout: 30 * time.Second,
		EnableAuth:     false,
	}
}

// NewRouter creates and configures the Gin router for the card service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	for _, group := range apiRouteGroups(&cfg) {
		group.RegisterRoutes(api, &cfg)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Accept-Language", "Authorization", "Cache-Control", "X-Requested-With", "X-API-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(imagePathPrefix),
		middleware.RequestLogger("/healthz", "/readyz", "/metrics", imagePathPrefix),
		middleware.ErrorHandler(),
	)
}

// rateLimited returns the rate limit middleware, or none when no limiter is configured.
func (cfg *RouterConfig) rateLimited() []gin.HandlerFunc {
	if cfg.RateLimiter == nil {
		return nil
	}
	return []gin.HandlerFunc{cfg.RateLimiter.RateLimit()}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// apiRouteGroups returns the /api route groups for the configured services.
func apiRouteGroups(cfg *RouterConfig) []RouteGroup {
	groups := []RouteGroup{NewCardRoutes(cfg)}
	if cfg.DeckService != nil {
		groups = append(groups, NewDeckRoutes(cfg.DeckService))
	}
	return groups
}
