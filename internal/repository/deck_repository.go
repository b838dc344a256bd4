package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/grimoire-service/internal/domain/model"
)

// DeckRepository provides methods for deck persistence.
type DeckRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewDeckRepository creates a new deck repository.
func NewDeckRepository(db *MongoDB) *DeckRepository {
	return &DeckRepository{
		collection: db.Decks,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// List returns decks newest first. A non-positive limit returns all decks.
func (r *DeckRepository) List(ctx context.Context, limit int) ([]model.Deck, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	decks := []model.Deck{}
	if err := cursor.All(ctx, &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

// Get returns the deck with the given ID or ErrNotFound.
func (r *DeckRepository) Get(ctx context.Context, id primitive.ObjectID) (*model.Deck, error) {
	var deck model.Deck
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&deck)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

// Create inserts a new deck.
func (r *DeckRepository) Create(ctx context.Context, name string, cards []model.DeckCard) (*model.Deck, error) {
	if cards == nil {
		cards = []model.DeckCard{}
	}
	now := r.now()
	deck := model.Deck{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Cards:     cards,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

// Update applies a partial update and returns the updated deck or ErrNotFound.
// A non-nil Cards slice replaces the whole card list.
func (r *DeckRepository) Update(ctx context.Context, id primitive.ObjectID, update model.DeckUpdate) (*model.Deck, error) {
	set := bson.M{"updated_at": r.now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Cards != nil {
		set["cards"] = update.Cards
	}

	var deck model.Deck
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&deck)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

// Delete removes a deck or returns ErrNotFound.
func (r *DeckRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
