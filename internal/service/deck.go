package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/repository"
)

// MaxDeckNameLength is the longest accepted deck name, in characters.
const MaxDeckNameLength = 200

// DeckService provides deck operations.
type DeckService interface {
	List(ctx context.Context) ([]model.Deck, error)
	Get(ctx context.Context, id string) (*model.Deck, error)
	Create(ctx context.Context, name string, cards []model.DeckCard) (*model.Deck, error)
	Update(ctx context.Context, id string, update model.DeckUpdate) (*model.Deck, error)
	Delete(ctx context.Context, id string) error
	ParseDeckList(raw string) model.ParsedDeckList
}

// DeckServiceImpl implements DeckService.
type DeckServiceImpl struct {
	deckRepo repository.DeckRepositoryInterface
}

// NewDeckService creates a new deck service.
func NewDeckService(deckRepo repository.DeckRepositoryInterface) DeckService {
	return &DeckServiceImpl{deckRepo: deckRepo}
}

func (s *DeckServiceImpl) List(ctx context.Context) ([]model.Deck, error) {
	if s.deckRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.deckRepo.List(ctx, 0)
}

func (s *DeckServiceImpl) Get(ctx context.Context, id string) (*model.Deck, error) {
	if s.deckRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oid, err := parseDeckID(id)
	if err != nil {
		return nil, err
	}
	deck, err := s.deckRepo.Get(ctx, oid)
	return deck, mapRepoError(err)
}

func (s *DeckServiceImpl) Create(ctx context.Context, name string, cards []model.DeckCard) (*model.Deck, error) {
	if s.deckRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	name = strings.TrimSpace(name)
	if err := validateDeckName(name); err != nil {
		return nil, err
	}
	if err := validateDeckCards(cards); err != nil {
		return nil, err
	}
	return s.deckRepo.Create(ctx, name, normalizeCards(cards))
}

func (s *DeckServiceImpl) Update(ctx context.Context, id string, update model.DeckUpdate) (*model.Deck, error) {
	if s.deckRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oid, err := parseDeckID(id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if err := validateDeckName(name); err != nil {
			return nil, err
		}
		update.Name = &name
	}
	if update.Cards != nil {
		if err := validateDeckCards(update.Cards); err != nil {
			return nil, err
		}
		update.Cards = normalizeCards(update.Cards)
	}
	deck, err := s.deckRepo.Update(ctx, oid, update)
	return deck, mapRepoError(err)
}

func (s *DeckServiceImpl) Delete(ctx context.Context, id string) error {
	if s.deckRepo == nil {
		return ErrRepositoryNotConfigured
	}
	oid, err := parseDeckID(id)
	if err != nil {
		return err
	}
	return mapRepoError(s.deckRepo.Delete(ctx, oid))
}

// ParseDeckList parses a plain-text deck list. It does not need the repository.
func (s *DeckServiceImpl) ParseDeckList(raw string) model.ParsedDeckList {
	return ParseDeckList(raw)
}

func parseDeckID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidDeckID
	}
	return oid, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrDeckNotFound
	}
	return err
}

func validateDeckName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDeck)
	}
	if utf8.RuneCountInString(name) > MaxDeckNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidDeck, MaxDeckNameLength)
	}
	return nil
}

func validateDeckCards(cards []model.DeckCard) error {
	for i, c := range cards {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: card %d has no name", ErrInvalidDeck, i+1)
		}
		if c.Count < 1 {
			return fmt.Errorf("%w: card %q must have a count of at least 1", ErrInvalidDeck, c.Name)
		}
	}
	return nil
}

func normalizeCards(cards []model.DeckCard) []model.DeckCard {
	out := make([]model.DeckCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, model.DeckCard{Name: strings.TrimSpace(c.Name), Count: c.Count})
	}
	return out
}
