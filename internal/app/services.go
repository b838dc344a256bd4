// Package app provides service initialization.
package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/grimoire-service/config"
	"github.com/guttosm/grimoire-service/internal/circuitbreaker"
	"github.com/guttosm/grimoire-service/internal/client"
	"github.com/guttosm/grimoire-service/internal/repository"
	"github.com/guttosm/grimoire-service/internal/service"
)

// ServiceComponents holds the card search and image services.
type ServiceComponents struct {
	ResponseCache *service.ResponseCache
	Search        service.SearchService
	Prompt        service.PromptService
	Images        service.ImageService
	// Prefetcher is nil when prefetching is disabled.
	Prefetcher   *service.Prefetcher
	ImageBreaker *circuitbreaker.CircuitBreaker
	// RedisClient is nil when images are cached in memory.
	RedisClient *redis.Client
	// ImageCacheProbe pings the image cache; nil for the in-memory cache.
	ImageCacheProbe func(ctx context.Context) error
}

// InitializeServices wires the response cache, the search fetcher with its
// prefetcher, the prompt searcher and the image service.
func InitializeServices(cfg config.Config) *ServiceComponents {
	scryfall := client.NewScryfallClient(cfg.Search.CardEndpoint, cfg.Search.HTTPTimeout)
	responseCache := service.NewResponseCache(cfg.Search.CacheTTL, cfg.Search.CacheMaxEntries)

	components := &ServiceComponents{ResponseCache: responseCache}

	searchOpts := []service.SearchOption{
		service.WithSearchEndpoint(cfg.Search.Endpoint),
		service.WithImagePathPrefix(cfg.Search.ImagePathPrefix),
	}
	if cfg.Prefetch.Enabled {
		var warmer service.ImageWarmer
		if cfg.Prefetch.MaxImagesPerPage > 0 && cfg.Prefetch.ImageProxyURL != "" {
			warmer = client.NewImageProxyWarmer(cfg.Prefetch.ImageProxyURL, cfg.Images.FetchTimeout+cfg.Images.DownloadTimeout)
		}
		components.Prefetcher = service.NewPrefetcher(scryfall, responseCache, warmer, service.PrefetchConfig{
			MaxPages:         cfg.Prefetch.MaxPages,
			MaxImagesPerPage: cfg.Prefetch.MaxImagesPerPage,
			Delay:            cfg.Prefetch.Delay,
			ImageConcurrency: cfg.Prefetch.ImageConcurrency,
		})
		searchOpts = append(searchOpts, service.WithPrefetcher(components.Prefetcher))
	}
	search := service.NewSearchFetcher(scryfall, responseCache, searchOpts...)
	components.Search = search

	if cfg.Parser.URL != "" {
		components.Prompt = service.NewPromptSearcher(client.NewNLQClient(cfg.Parser.URL, cfg.Parser.Timeout), search)
	}

	imageCache := initializeImageCache(cfg.Redis, components)
	images := service.NewImageService(scryfall, imageCache, service.ImageConfig{
		CacheTTL:         cfg.Images.CacheTTL,
		NegativeCacheTTL: cfg.Images.NegativeCacheTTL,
		FetchTimeout:     cfg.Images.FetchTimeout,
		DownloadTimeout:  cfg.Images.DownloadTimeout,
		Retries:          cfg.Images.FetchRetries,
		BackoffBase:      cfg.Images.RetryBackoffBase,
		ConcurrencyLimit: cfg.Images.ConcurrencyLimit,
		CircuitThreshold: cfg.Images.CircuitThreshold,
		CircuitTimeout:   cfg.Images.CircuitOpenTimeout,
	})
	components.Images = images
	components.ImageBreaker = images.CircuitBreaker()

	log.Info().
		Dur("cache_ttl", cfg.Search.CacheTTL).
		Int("cache_max_entries", cfg.Search.CacheMaxEntries).
		Bool("prefetch", cfg.Prefetch.Enabled).
		Bool("prompt_search", components.Prompt != nil).
		Bool("redis_image_cache", components.RedisClient != nil).
		Msg("Services initialized")

	return components
}

// initializeImageCache returns a Redis-backed image cache when enabled and
// reachable, and an in-memory cache otherwise.
func initializeImageCache(cfg config.RedisConfig, components *ServiceComponents) repository.ImageCacheInterface {
	if !cfg.Enabled {
		return repository.NewMemoryImageCache(0)
	}

	rdb, err := repository.NewRedisClient(context.Background(), cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		log.Error().Err(err).Str("addr", cfg.Addr).Msg("Failed to connect to Redis - caching images in memory")
		return repository.NewMemoryImageCache(0)
	}

	log.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
	redisCache := repository.NewRedisImageCache(rdb)
	components.RedisClient = rdb
	components.ImageCacheProbe = redisCache.HealthCheck
	return redisCache
}
