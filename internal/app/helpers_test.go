package app

import (
	"time"

	"github.com/guttosm/grimoire-service/config"
)

// testConfig points upstream calls at a closed port so nothing leaves the host.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:               "8080",
			RateLimit:          100,
			RateWindow:         time.Minute,
			RequestTimeout:     5 * time.Second,
			CacheStatsInterval: time.Minute,
		},
		Search: config.SearchConfig{
			Endpoint:        "http://127.0.0.1:1/cards/search",
			CardEndpoint:    "http://127.0.0.1:1/cards/",
			ImagePathPrefix: "/api/card-image/",
			CacheTTL:        30 * time.Second,
			CacheMaxEntries: 10,
			HTTPTimeout:     time.Second,
		},
	}
}
