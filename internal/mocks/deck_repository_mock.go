// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/grimoire-service/internal/domain/model"
)

type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) List(ctx context.Context, limit int) ([]model.Deck, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deck), args.Error(1)
}

func (m *MockDeckRepository) Get(ctx context.Context, id primitive.ObjectID) (*model.Deck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Deck), args.Error(1)
}

func (m *MockDeckRepository) Create(ctx context.Context, name string, cards []model.DeckCard) (*model.Deck, error) {
	args := m.Called(ctx, name, cards)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Deck), args.Error(1)
}

func (m *MockDeckRepository) Update(ctx context.Context, id primitive.ObjectID, update model.DeckUpdate) (*model.Deck, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Deck), args.Error(1)
}

func (m *MockDeckRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
