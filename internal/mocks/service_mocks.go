// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/grimoire-service/internal/domain/model"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) SearchByQuery(ctx context.Context, query string) (model.SearchPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(model.SearchPage), args.Error(1)
}

func (m *MockSearchService) FetchByPageToken(ctx context.Context, token string) (model.SearchPage, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.SearchPage), args.Error(1)
}

func (m *MockSearchService) SearchLite(ctx context.Context, query string) (model.SearchResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(model.SearchResult), args.Error(1)
}

func (m *MockSearchService) PageLite(ctx context.Context, token string) (model.SearchResult, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.SearchResult), args.Error(1)
}

func (m *MockSearchService) ToLiteCards(page model.SearchPage) []model.LiteCard {
	args := m.Called(page)
	return args.Get(0).([]model.LiteCard)
}

type MockPromptService struct {
	mock.Mock
}

func (m *MockPromptService) Search(ctx context.Context, text string) (model.PromptResult, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(model.PromptResult), args.Error(1)
}

type MockQueryParser struct {
	mock.Mock
}

func (m *MockQueryParser) Parse(ctx context.Context, text string) (model.ParsedPrompt, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(model.ParsedPrompt), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Get(ctx context.Context, cardID string) (model.CardImage, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).(model.CardImage), args.Error(1)
}

type MockDeckService struct {
	mock.Mock
}

func (m *MockDeckService) List(ctx context.Context) ([]model.Deck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deck), args.Error(1)
}

func (m *MockDeckService) Get(ctx context.Context, id string) (*model.Deck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Deck), args.Error(1)
}

func (m *MockDeckService) Create(ctx context.Context, name string, cards []model.DeckCard) (*model.Deck, error) {
	args := m.Called(ctx, name, cards)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Deck), args.Error(1)
}

func (m *MockDeckService) Update(ctx context.Context, id string, update model.DeckUpdate) (*model.Deck, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Deck), args.Error(1)
}

func (m *MockDeckService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeckService) ParseDeckList(raw string) model.ParsedDeckList {
	args := m.Called(raw)
	return args.Get(0).(model.ParsedDeckList)
}
