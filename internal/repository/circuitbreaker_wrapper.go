package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/grimoire-service/internal/circuitbreaker"
	"github.com/guttosm/grimoire-service/internal/domain/model"
)

// IsInfrastructureError reports whether err should count against a repository
// circuit breaker. Missing documents are normal answers, not outages.
func IsInfrastructureError(err error) bool {
	return !errors.Is(err, ErrNotFound)
}

// DeckRepositoryWithCircuitBreaker wraps a deck repository with circuit breaker protection.
type DeckRepositoryWithCircuitBreaker struct {
	repo           DeckRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewDeckRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewDeckRepositoryWithCircuitBreaker(repo DeckRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *DeckRepositoryWithCircuitBreaker {
	return &DeckRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns decks with circuit breaker protection.
func (r *DeckRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.Deck, error) {
	var result []model.Deck
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// Get returns a deck with circuit breaker protection.
func (r *DeckRepositoryWithCircuitBreaker) Get(ctx context.Context, id primitive.ObjectID) (*model.Deck, error) {
	var result *model.Deck
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, id)
		return cbErr
	})
	return result, err
}

// Create inserts a deck with circuit breaker protection.
func (r *DeckRepositoryWithCircuitBreaker) Create(ctx context.Context, name string, cards []model.DeckCard) (*model.Deck, error) {
	var result *model.Deck
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, name, cards)
		return cbErr
	})
	return result, err
}

// Update updates a deck with circuit breaker protection.
func (r *DeckRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, update model.DeckUpdate) (*model.Deck, error) {
	var result *model.Deck
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, update)
		return cbErr
	})
	return result, err
}

// Delete removes a deck with circuit breaker protection.
func (r *DeckRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *DeckRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
