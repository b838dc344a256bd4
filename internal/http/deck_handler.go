package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/grimoire-service/internal/circuitbreaker"
	"github.com/guttosm/grimoire-service/internal/domain/dto"
	"github.com/guttosm/grimoire-service/internal/i18n"
	"github.com/guttosm/grimoire-service/internal/service"
)

// DeckHandler provides HTTP handlers for deck routes.
type DeckHandler struct {
	decks service.DeckService
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(decks service.DeckService) *DeckHandler {
	return &DeckHandler{decks: decks}
}

// ListDecks handles GET /api/decks.
//
// @Summary      List decks
// @Description  Lists saved decks, newest first.
// @Tags         Decks
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Decks"
// @Failure      503 {object} dto.ErrorResponse "Deck storage unavailable"
// @Router       /api/decks [get]
func (h *DeckHandler) ListDecks(c *gin.Context) {
	builder := NewResponseBuilder(c)
	decks, err := h.decks.List(c.Request.Context())
	if err != nil {
		writeDeckError(builder, err)
		return
	}
	builder.SuccessOK(decks)
}

// GetDeck handles GET /api/decks/{id}.
//
// @Summary      Get deck
// @Tags         Decks
// @Produce      json
// @Param        id path string true "Deck ID"
// @Success      200 {object} dto.SuccessResponse "Deck"
// @Failure      400 {object} dto.ErrorResponse "Malformed deck ID"
// @Failure      404 {object} dto.ErrorResponse "Deck not found"
// @Router       /api/decks/{id} [get]
func (h *DeckHandler) GetDeck(c *gin.Context) {
	builder := NewResponseBuilder(c)
	deck, err := h.decks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDeckError(builder, err)
		return
	}
	builder.SuccessOK(deck)
}

// CreateDeck handles POST /api/decks.
//
// @Summary      Create deck
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        request body dto.CreateDeckRequest true "Deck"
// @Success      201 {object} dto.SuccessResponse "Created deck"
// @Failure      400 {object} dto.ErrorResponse "Invalid deck"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/decks [post]
func (h *DeckHandler) CreateDeck(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateDeckRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDeck, err)
		return
	}

	deck, err := h.decks.Create(c.Request.Context(), req.Name, req.Cards)
	if err != nil {
		writeDeckError(builder, err)
		return
	}
	builder.SuccessCreated(deck)
}

// UpdateDeck handles PUT /api/decks/{id}.
//
// @Summary      Update deck
// @Description  Replaces the name and/or the card list of a deck. Omitted fields are left unchanged.
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        id path string true "Deck ID"
// @Param        request body dto.UpdateDeckRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse "Updated deck"
// @Failure      400 {object} dto.ErrorResponse "Invalid deck"
// @Failure      404 {object} dto.ErrorResponse "Deck not found"
// @Security     ApiKeyAuth
// @Router       /api/decks/{id} [put]
func (h *DeckHandler) UpdateDeck(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateDeckRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDeck, err)
		return
	}

	deck, err := h.decks.Update(c.Request.Context(), c.Param("id"), req.ToModel())
	if err != nil {
		writeDeckError(builder, err)
		return
	}
	builder.SuccessOK(deck)
}

// DeleteDeck handles DELETE /api/decks/{id}.
//
// @Summary      Delete deck
// @Tags         Decks
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        id path string true "Deck ID"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Deck not found"
// @Security     ApiKeyAuth
// @Router       /api/decks/{id} [delete]
func (h *DeckHandler) DeleteDeck(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if err := h.decks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeDeckError(builder, err)
		return
	}
	builder.NoContent()
}

// ParseDeckList handles POST /api/decks/parse.
//
// @Summary      Parse decklist
// @Description  Parses a plain-text decklist ("4 Lightning Bolt" per line). Duplicate names are merged and unparseable lines are reported in errors.
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        request body dto.ParseDeckListRequest true "Decklist text"
// @Success      200 {object} dto.SuccessResponse "Parsed decklist"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Router       /api/decks/parse [post]
func (h *DeckHandler) ParseDeckList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ParseDeckListRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	builder.SuccessOK(h.decks.ParseDeckList(req.Text))
}

func writeDeckError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrDeckNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyDeckNotFound, err)
	case errors.Is(err, service.ErrInvalidDeckID):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDeckID, err)
	case errors.Is(err, service.ErrInvalidDeck):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
