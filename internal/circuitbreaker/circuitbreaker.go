// Package circuitbreaker provides circuit breaker pattern implementation for resilience.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the circuit breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed means the circuit is closed and requests pass through normally.
	StateClosed State = iota
	// StateOpen means the circuit is open and requests are rejected immediately.
	StateOpen
	// StateHalfOpen means the circuit is half-open, allowing trial requests.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures before opening the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive successes needed to close the circuit.
	SuccessThreshold int
	// Timeout is the duration to wait before attempting to half-open the circuit.
	Timeout time.Duration
	// Name is the name of the circuit breaker (for logging and metrics).
	Name string
	// IsFailure decides whether an error counts against the breaker.
	// Nil means every non-nil error is a failure.
	IsFailure func(error) bool
	// OnStateChange is called with the new state after every transition,
	// while the breaker lock is held. It must not call back into the breaker.
	OnStateChange func(name string, state State)
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker implements the circuit breaker pattern.
type CircuitBreaker struct {
	config          Config
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	now             func() time.Time
	mu              sync.RWMutex
}

// New creates a new circuit breaker with the given configuration.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 1
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// Execute executes a function with circuit breaker protection.
// Returns ErrCircuitOpen without calling fn if the circuit is open.
// Calls abandoned by the caller (cancelled, or ctx done before fn returned)
// are not recorded as either a failure or a success.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cb.mu.Lock()
	if cb.state == StateOpen {
		if cb.now().Sub(cb.lastFailureTime) < cb.config.Timeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.successCount = 0
		cb.transition(StateHalfOpen)
	}
	cb.mu.Unlock()

	err := fn()
	if err != nil && callerAbandoned(ctx, err) {
		return err
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil && cb.countsAsFailure(err) {
		cb.onFailure()
		return err
	}

	cb.onSuccess()
	return err
}

func callerAbandoned(ctx context.Context, err error) bool {
	return errors.Is(err, context.Canceled) || ctx.Err() != nil
}

func (cb *CircuitBreaker) countsAsFailure(err error) bool {
	if cb.config.IsFailure == nil {
		return true
	}
	return cb.config.IsFailure(err)
}

func (cb *CircuitBreaker) transition(to State) {
	cb.state = to
	ev := log.Info()
	if to == StateOpen {
		ev = log.Warn().Int("failure_count", cb.failureCount)
	}
	ev.Str("circuit_breaker", cb.config.Name).
		Str("state", to.String()).
		Msg("Circuit breaker state changed")
	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, to)
	}
}

func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.transition(StateOpen)
		}
	case StateHalfOpen:
		// Any failure while half-open reopens immediately
		cb.failureCount = cb.config.FailureThreshold
		cb.transition(StateOpen)
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.failureCount = 0

	switch cb.state {
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.successCount = 0
			cb.transition(StateClosed)
		}
	case StateClosed:
		cb.successCount = 0
	}
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen returns true if the circuit breaker is open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats returns circuit breaker statistics.
type Stats struct {
	Name         string
	State        string
	FailureCount int
	SuccessCount int
	LastFailure  time.Time
	IsHealthy    bool
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
