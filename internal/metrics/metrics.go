// Package metrics provides Prometheus metrics collection for the grimoire card service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// UpstreamRequestsTotal tracks foreground calls to the card-search API.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_search_requests_total",
			Help: "Total number of upstream card-search requests",
		},
		[]string{"kind", "result"},
	)

	// UpstreamRequestDuration tracks card-search API latency.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_search_duration_seconds",
			Help:    "Upstream card-search request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"kind"},
	)

	// PrefetchPagesTotal tracks pages visited by background prefetch walks.
	PrefetchPagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prefetch_pages_total",
			Help: "Total number of pages handled by prefetch walks",
		},
		[]string{"result"},
	)

	// PrefetchImagesTotal tracks image warm-up attempts during prefetch.
	PrefetchImagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prefetch_images_total",
			Help: "Total number of image warm-up requests issued by prefetch walks",
		},
		[]string{"result"},
	)

	// ImageRequestsTotal tracks card image responses by source and outcome.
	ImageRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_requests_total",
			Help: "Total number of card image requests",
		},
		[]string{"source", "outcome"},
	)

	// ImageFetchDuration tracks image fetch latency from the upstream.
	ImageFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "image_fetch_latency_seconds",
			Help:    "Latency of upstream card image fetches in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// CacheHitRatio tracks the fraction of cache reads that were hits.
	CacheHitRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_hit_ratio",
			Help: "Ratio of cache hits to total cache reads",
		},
	)

	// CircuitBreakerState tracks breaker state per name (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordUpstreamRequest records a foreground card-search call.
func RecordUpstreamRequest(kind, result string, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(kind).Observe(duration.Seconds())
	UpstreamRequestsTotal.WithLabelValues(kind, result).Inc()
}

// RecordPrefetchPage records the outcome of one prefetch walk step.
func RecordPrefetchPage(result string) {
	PrefetchPagesTotal.WithLabelValues(result).Inc()
}

// RecordPrefetchImage records the outcome of one image warm-up.
func RecordPrefetchImage(result string) {
	PrefetchImagesTotal.WithLabelValues(result).Inc()
}

// RecordImageRequest records a card image response.
func RecordImageRequest(source, outcome string) {
	ImageRequestsTotal.WithLabelValues(source, outcome).Inc()
}

// ObserveImageFetch records the latency of an upstream image fetch.
func ObserveImageFetch(duration time.Duration) {
	ImageFetchDuration.Observe(duration.Seconds())
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size, capacity and hit ratio metrics.
func UpdateCacheMetrics(size, capacity int, hits, misses int64) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
	if total := hits + misses; total > 0 {
		CacheHitRatio.Set(float64(hits) / float64(total))
	} else {
		CacheHitRatio.Set(0)
	}
}

// SetCircuitBreakerState records the numeric state of a named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
