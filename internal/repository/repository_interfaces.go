package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/grimoire-service/internal/domain/model"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// DeckRepositoryInterface defines the interface for deck repository operations.
type DeckRepositoryInterface interface {
	List(ctx context.Context, limit int) ([]model.Deck, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Deck, error)
	Create(ctx context.Context, name string, cards []model.DeckCard) (*model.Deck, error)
	Update(ctx context.Context, id primitive.ObjectID, update model.DeckUpdate) (*model.Deck, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ImageCacheInterface stores card image bytes and negative lookups.
// Get reports found=false with a nil error on a miss.
type ImageCacheInterface interface {
	Get(ctx context.Context, cardID string) (data []byte, found bool, err error)
	Set(ctx context.Context, cardID string, data []byte, ttl time.Duration) error
	IsNegative(ctx context.Context, cardID string) (bool, error)
	SetNegative(ctx context.Context, cardID string, ttl time.Duration) error
}
