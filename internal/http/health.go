package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/grimoire-service/internal/circuitbreaker"
)

// HealthChecker defines the interface for health check operations.
type HealthChecker interface {
	Check() error
}

// probeChecker adapts a context-aware probe into a HealthChecker.
type probeChecker struct {
	probe   func(ctx context.Context) error
	timeout time.Duration
}

// NewProbeChecker wraps probe, bounding each check by timeout.
func NewProbeChecker(probe func(ctx context.Context) error, timeout time.Duration) HealthChecker {
	return probeChecker{probe: probe, timeout: timeout}
}

func (p probeChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	return p.probe(ctx)
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker registers a dependency probed by the readiness endpoint.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	if checker != nil {
		h.checkers[name] = checker
	}
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	if cb != nil {
		h.circuitBreakers[name] = cb
	}
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK if the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @ExampleResponse 200 {"status": "ok"}
// @Router      /healthz [get]
//
// Metrics endpoint is available at /metrics for Prometheus scraping.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Returns OK when deck storage and the image cache answer and no circuit breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @ExampleResponse 200 {"status": "ok", "checks": {"service": "ok"}}
// @ExampleResponse 503 {"status": "degraded", "checks": {"mongodb": "connection failed", "card-images_circuit": "open"}}
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := http.StatusOK
	checks := make(map[string]interface{})

	for name, checker := range h.checkers {
		if err := checker.Check(); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks[name] = "ok"
		}
	}

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			status = http.StatusServiceUnavailable
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	c.JSON(status, gin.H{
		"status": map[bool]string{true: "ok", false: "degraded"}[status == http.StatusOK],
		"checks": checks,
	})
}
