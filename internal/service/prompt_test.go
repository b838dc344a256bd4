//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/mocks"
)

func TestPromptSearcher_Search(t *testing.T) {
	found := model.SearchResult{
		Cards:    []model.LiteCard{{ID: "1", Name: "Goblin Guide"}},
		HasMore:  true,
		NextPage: "URL2",
	}

	tests := []struct {
		name        string
		text        string
		setupMocks  func(*mocks.MockQueryParser, *mocks.MockSearchService)
		expectErr   error
		expectQuery string
		expectCards int
	}{
		{
			name: "joins parts and searches",
			text: "cheap red goblins",
			setupMocks: func(p *mocks.MockQueryParser, s *mocks.MockSearchService) {
				p.On("Parse", mock.Anything, "cheap red goblins").Return(model.ParsedPrompt{
					QueryParts: []string{"t:goblin", "c:r", "mv<=2"},
					Warnings:   []string{"assumed creature"},
				}, nil)
				s.On("SearchLite", mock.Anything, "t:goblin c:r mv<=2").Return(found, nil)
			},
			expectQuery: "t:goblin c:r mv<=2",
			expectCards: 1,
		},
		{
			name: "no parts yields empty result without search",
			text: "???",
			setupMocks: func(p *mocks.MockQueryParser, _ *mocks.MockSearchService) {
				p.On("Parse", mock.Anything, "???").Return(model.ParsedPrompt{}, nil)
			},
			expectQuery: "",
			expectCards: 0,
		},
		{
			name:       "blank text rejected",
			text:       "  ",
			setupMocks: func(*mocks.MockQueryParser, *mocks.MockSearchService) {},
			expectErr:  ErrMissingPrompt,
		},
		{
			name: "parser failure propagates",
			text: "goblins",
			setupMocks: func(p *mocks.MockQueryParser, _ *mocks.MockSearchService) {
				p.On("Parse", mock.Anything, "goblins").Return(model.ParsedPrompt{}, &UpstreamError{StatusCode: 500})
			},
			expectErr: &UpstreamError{StatusCode: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := new(mocks.MockQueryParser)
			search := new(mocks.MockSearchService)
			tt.setupMocks(parser, search)

			result, err := NewPromptSearcher(parser, search).Search(context.Background(), tt.text)

			if tt.expectErr != nil {
				var upstreamErr *UpstreamError
				if errors.As(tt.expectErr, &upstreamErr) {
					assert.True(t, IsUpstreamError(err))
				} else {
					assert.ErrorIs(t, err, tt.expectErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectQuery, result.Query)
			assert.Len(t, result.Cards, tt.expectCards)
			assert.NotNil(t, result.QueryParts)
			assert.NotNil(t, result.Warnings)
			parser.AssertExpectations(t)
			search.AssertExpectations(t)
		})
	}
}
