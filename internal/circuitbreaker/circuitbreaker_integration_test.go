//go:build integration

package circuitbreaker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/grimoire-service/internal/circuitbreaker"
	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/repository"
	"github.com/guttosm/grimoire-service/internal/testutil"
)

func newDeckBreaker(name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             name,
		IsFailure:        repository.IsInfrastructureError,
	})
}

func TestCircuitBreakerWithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, mongoContainer.Cleanup(ctx))
	}()

	t.Run("circuit breaker protects deck repository", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongoContainer.URI, "test_decks_protected")
		require.NoError(t, err)
		defer func() {
			_ = db.Close(ctx)
		}()

		cb := newDeckBreaker("test-decks")
		wrappedRepo := repository.NewDeckRepositoryWithCircuitBreaker(repository.NewDeckRepository(db), cb)

		created, err := wrappedRepo.Create(ctx, "Burn", []model.DeckCard{{Name: "Lightning Bolt", Count: 4}})
		require.NoError(t, err)

		got, err := wrappedRepo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Burn", got.Name)

		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
		assert.True(t, cb.GetStats().IsHealthy)
	})

	t.Run("missing decks do not trip the breaker", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongoContainer.URI, "test_decks_missing")
		require.NoError(t, err)
		defer func() {
			_ = db.Close(ctx)
		}()

		cb := newDeckBreaker("test-decks-missing")
		wrappedRepo := repository.NewDeckRepositoryWithCircuitBreaker(repository.NewDeckRepository(db), cb)

		for i := 0; i < 3; i++ {
			_, err := wrappedRepo.Get(ctx, primitive.NewObjectID())
			assert.ErrorIs(t, err, repository.ErrNotFound)
		}

		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	})

	t.Run("disconnected client opens the breaker", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongoContainer.URI, "test_decks_disconnected")
		require.NoError(t, err)
		require.NoError(t, db.Close(ctx))

		cb := newDeckBreaker("test-decks-disconnected")
		wrappedRepo := repository.NewDeckRepositoryWithCircuitBreaker(repository.NewDeckRepository(db), cb)

		for i := 0; i < 2; i++ {
			_, err := wrappedRepo.List(ctx, 10)
			assert.Error(t, err)
		}

		assert.True(t, cb.IsOpen())
		_, err = wrappedRepo.List(ctx, 10)
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})

	t.Run("circuit breaker recovers after timeout", func(t *testing.T) {
		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 1,
			SuccessThreshold: 1,
			Timeout:          50 * time.Millisecond,
			Name:             "test-recovery",
		})

		_ = cb.Execute(ctx, func() error {
			return errors.New("error")
		})
		assert.Equal(t, circuitbreaker.StateOpen, cb.State())

		time.Sleep(60 * time.Millisecond)

		err := cb.Execute(ctx, func() error {
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	})
}
