// Package cache defines the cache contracts shared by the service layer.
package cache

import "github.com/guttosm/grimoire-service/internal/domain/model"

// PageCache stores upstream search pages keyed by request identity.
type PageCache interface {
	Get(key string) (model.SearchPage, bool)
	Set(key string, value model.SearchPage)
	// Contains reports whether key holds a live entry without counting a read
	// or refreshing its access time.
	Contains(key string) bool
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// HitRatio returns hits over total reads, or zero when nothing was read.
func (m Metrics) HitRatio() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

// PageCacheWithMetrics extends PageCache with metrics reporting.
type PageCacheWithMetrics interface {
	PageCache
	Len() int
	Metrics() Metrics
}
