package service

import (
	"context"
	"strings"

	"github.com/guttosm/grimoire-service/internal/domain/model"
)

// QueryParser turns natural-language text into search query parts.
type QueryParser interface {
	Parse(ctx context.Context, text string) (model.ParsedPrompt, error)
}

// PromptService searches cards from a natural-language prompt.
type PromptService interface {
	Search(ctx context.Context, text string) (model.PromptResult, error)
}

// PromptSearcher joins parsed query parts and runs them through a SearchService.
type PromptSearcher struct {
	parser QueryParser
	search SearchService
}

// NewPromptSearcher creates a PromptSearcher.
func NewPromptSearcher(parser QueryParser, search SearchService) *PromptSearcher {
	return &PromptSearcher{parser: parser, search: search}
}

// Search parses text and searches with the joined query parts.
// When the parser yields no parts the result is empty and no search is made.
func (s *PromptSearcher) Search(ctx context.Context, text string) (model.PromptResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.PromptResult{}, ErrMissingPrompt
	}

	parsed, err := s.parser.Parse(ctx, text)
	if err != nil {
		return model.PromptResult{}, err
	}

	result := model.PromptResult{
		SearchResult: model.SearchResult{Cards: []model.LiteCard{}},
		QueryParts:   nonNil(parsed.QueryParts),
		Warnings:     nonNil(parsed.Warnings),
	}
	result.Query = strings.TrimSpace(strings.Join(parsed.QueryParts, " "))
	if result.Query == "" {
		return result, nil
	}

	found, err := s.search.SearchLite(ctx, result.Query)
	if err != nil {
		return model.PromptResult{}, err
	}
	result.SearchResult = found
	return result, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
