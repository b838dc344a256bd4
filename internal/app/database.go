// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/grimoire-service/config"
	"github.com/guttosm/grimoire-service/internal/circuitbreaker"
	"github.com/guttosm/grimoire-service/internal/metrics"
	"github.com/guttosm/grimoire-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	DeckRepo           repository.DeckRepositoryInterface
	DeckCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the deck repository.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDBWithConfig(cfg.URI, cfg.DatabaseName, mongoConfig(cfg))
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without deck storage")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	deckCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-decks",
		IsFailure:        repository.IsInfrastructureError,
		OnStateChange: func(name string, state circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(state))
		},
	})

	return &DatabaseComponents{
		DB:                 db,
		DeckRepo:           repository.NewDeckRepositoryWithCircuitBreaker(repository.NewDeckRepository(db), deckCB),
		DeckCircuitBreaker: deckCB,
	}
}

// mongoConfig overlays configured pool limits on the repository defaults.
func mongoConfig(cfg config.DatabaseConfig) repository.MongoConfig {
	mongoCfg := repository.DefaultMongoConfig()
	if cfg.MaxPoolSize > 0 {
		mongoCfg.MaxPoolSize = uint64(cfg.MaxPoolSize)
	}
	if cfg.ConnectTimeout > 0 {
		mongoCfg.ConnectTimeout = cfg.ConnectTimeout
	}
	return mongoCfg
}
