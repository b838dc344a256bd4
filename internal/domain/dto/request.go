// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry request validation.
package dto

import (
	"strings"

	"github.com/guttosm/grimoire-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrPromptTextRequired is returned when a prompt request has blank text.
	ErrPromptTextRequired = &ValidationError{Field: "text", Message: "is required"}
	// ErrDeckNameRequired is returned when a deck request has a blank name.
	ErrDeckNameRequired = &ValidationError{Field: "name", Message: "is required"}
	// ErrEmptyDeckUpdate is returned when an update carries neither name nor cards.
	ErrEmptyDeckUpdate = &ValidationError{Field: "body", Message: "name or cards must be provided"}
)

// PromptRequest is the body of POST /api/cards/prompt.
//
// @Description Natural-language card search
// @Example {"text": "cheap red goblins"}
type PromptRequest struct {
	// Text is the free-form search prompt.
	Text string `json:"text" binding:"required" example:"cheap red goblins"`
} // @name PromptRequest

// Validate rejects blank prompts.
func (r *PromptRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrPromptTextRequired
	}
	return nil
}

// CreateDeckRequest is the body of POST /api/decks.
//
// @Description Request to create a deck
// @Example {"name": "Burn", "cards": [{"name": "Lightning Bolt", "count": 4}]}
type CreateDeckRequest struct {
	Name  string           `json:"name" binding:"required" example:"Burn"`
	Cards []model.DeckCard `json:"cards"`
} // @name CreateDeckRequest

// Validate rejects blank deck names.
func (r *CreateDeckRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrDeckNameRequired
	}
	return nil
}

// UpdateDeckRequest is the body of PUT /api/decks/{id}. Omitted fields are left unchanged.
//
// @Description Partial deck update
// @Example {"name": "Mono Red Burn"}
type UpdateDeckRequest struct {
	Name  *string          `json:"name,omitempty" example:"Mono Red Burn"`
	Cards []model.DeckCard `json:"cards,omitempty"`
} // @name UpdateDeckRequest

// Validate rejects updates that change nothing.
func (r *UpdateDeckRequest) Validate() error {
	if r.Name == nil && r.Cards == nil {
		return ErrEmptyDeckUpdate
	}
	return nil
}

// ToModel converts the request into a domain update.
func (r *UpdateDeckRequest) ToModel() model.DeckUpdate {
	return model.DeckUpdate{Name: r.Name, Cards: r.Cards}
}

// ParseDeckListRequest is the body of POST /api/decks/parse.
//
// @Description Plain-text decklist, one "N Card Name" entry per line
// @Example {"text": "4 Lightning Bolt\n20 Mountain"}
type ParseDeckListRequest struct {
	Text string `json:"text" example:"4 Lightning Bolt"`
} // @name ParseDeckListRequest
