// Package config provides configuration management for the grimoire card service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Log      LogConfig
	Server   ServerConfig
	Search   SearchConfig
	Prefetch PrefetchConfig
	Images   ImagesConfig
	Redis    RedisConfig
	Parser   ParserConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port               string
	ShutdownTimeout    time.Duration
	RateLimit          int
	RateWindow         time.Duration
	RequestTimeout     time.Duration
	CORSOrigins        []string
	SwaggerUser        string
	SwaggerPass        string
	CacheStatsInterval time.Duration
}

// SearchConfig holds upstream card-search and response cache configuration.
type SearchConfig struct {
	// Endpoint is the upstream search URL; queries are appended as ?q=.
	Endpoint string
	// CardEndpoint is the upstream single-card lookup prefix;
	// card IDs are appended directly.
	CardEndpoint string
	// ImagePathPrefix is the per-card image reference handed to clients.
	ImagePathPrefix string
	CacheTTL        time.Duration
	CacheMaxEntries int
	HTTPTimeout     time.Duration
}

// PrefetchConfig holds background pagination prefetch configuration.
type PrefetchConfig struct {
	Enabled          bool
	MaxPages         int
	MaxImagesPerPage int
	Delay            time.Duration
	ImageConcurrency int
	// ImageProxyURL is the image-serving path warmed during prefetch.
	ImageProxyURL string
}

// ImagesConfig holds card image proxy configuration.
type ImagesConfig struct {
	CacheTTL         time.Duration
	NegativeCacheTTL time.Duration
	FetchTimeout     time.Duration
	DownloadTimeout  time.Duration
	FetchRetries     int
	RetryBackoffBase time.Duration
	ConcurrencyLimit int
	// CircuitBreaker configuration
	CircuitThreshold   int
	CircuitOpenTimeout time.Duration
}

// RedisConfig holds Redis connection configuration for the image byte cache.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// ParserConfig holds configuration for the natural-language prompt parser service.
type ParserConfig struct {
	URL     string
	Timeout time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI            string
	DatabaseName   string
	Enabled        bool
	MaxPoolSize    int
	ConnectTimeout time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	port := getEnv("PORT", "8080")
	return Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Server: ServerConfig{
			Port:               port,
			ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			RateLimit:          getEnvInt("RATE_LIMIT", 100),
			RateWindow:         getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:        parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:        getEnv("SWAGGER_USER", ""),
			SwaggerPass:        getEnv("SWAGGER_PASS", ""),
			CacheStatsInterval: getEnvDuration("CACHE_STATS_INTERVAL", 15*time.Second),
		},
		Search: SearchConfig{
			Endpoint:        getEnv("SCRYFALL_SEARCH_URL", "https://api.scryfall.com/cards/search"),
			CardEndpoint:    getEnv("SCRYFALL_CARD_URL", "https://api.scryfall.com/cards/"),
			ImagePathPrefix: getEnv("CARD_IMAGE_PATH", "/api/card-image/"),
			CacheTTL:        getEnvDuration("SEARCH_CACHE_TTL", 30*time.Second),
			CacheMaxEntries: getEnvInt("SEARCH_CACHE_MAX_ENTRIES", 200),
			HTTPTimeout:     getEnvDuration("SCRYFALL_TIMEOUT", 10*time.Second),
		},
		Prefetch: PrefetchConfig{
			Enabled:          getEnvBool("PREFETCH_ENABLED", true),
			MaxPages:         getEnvInt("PREFETCH_MAX_PAGES", 2),
			MaxImagesPerPage: getEnvInt("PREFETCH_MAX_IMAGES_PER_PAGE", 20),
			Delay:            getEnvDuration("PREFETCH_DELAY", 200*time.Millisecond),
			ImageConcurrency: getEnvInt("PREFETCH_IMAGE_CONCURRENCY", 8),
			ImageProxyURL:    getEnv("IMAGE_PROXY_URL", "http://localhost:"+port+"/api/card-image"),
		},
		Images: ImagesConfig{
			CacheTTL:           getEnvDuration("IMAGE_CACHE_TTL", 24*time.Hour),
			NegativeCacheTTL:   getEnvDuration("IMAGE_NEG_CACHE_TTL", 5*time.Minute),
			FetchTimeout:       getEnvDuration("IMAGE_FETCH_TIMEOUT", 10*time.Second),
			DownloadTimeout:    getEnvDuration("IMAGE_DOWNLOAD_TIMEOUT", 15*time.Second),
			FetchRetries:       getEnvInt("IMAGE_FETCH_RETRIES", 3),
			RetryBackoffBase:   getEnvDuration("IMAGE_RETRY_BACKOFF_BASE", 200*time.Millisecond),
			ConcurrencyLimit:   getEnvInt("IMAGE_CONCURRENCY_LIMIT", 25),
			CircuitThreshold:   getEnvInt("IMAGE_CIRCUIT_THRESHOLD", 20),
			CircuitOpenTimeout: getEnvDuration("IMAGE_CIRCUIT_OPEN_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Parser: ParserConfig{
			URL:     getEnv("QUERY_API_URL", "http://localhost:8081"),
			Timeout: getEnvDuration("QUERY_API_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "grimoire"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for the local Next.js front end
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
