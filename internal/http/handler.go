package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/grimoire-service/internal/domain/dto"
	"github.com/guttosm/grimoire-service/internal/i18n"
	"github.com/guttosm/grimoire-service/internal/middleware"
	"github.com/guttosm/grimoire-service/internal/service"
)

// Handler provides HTTP handlers for card search routes.
type Handler struct {
	search service.SearchService
	prompt service.PromptService
}

// NewHandler creates a new Handler. prompt may be nil, in which case the prompt route is not mounted.
func NewHandler(search service.SearchService, prompt service.PromptService) *Handler {
	return &Handler{search: search, prompt: prompt}
}

// SearchCards handles GET /api/cards/search.
//
// @Summary      Search cards
// @Description  Searches cards by query, or fetches a continuation page when next is given. Results are served from a short-lived response cache and the following pages are prefetched in the background.
// @Tags         Cards
// @Produce      json
// @Param        q    query string false "Card search query" example(t:goblin c:r)
// @Param        next query string false "Continuation token returned as next_page"
// @Success      200 {object} dto.SearchResponse "One page of lite cards"
// @Failure      400 {object} dto.ErrorResponse "Missing q or next"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      502 {object} dto.ErrorResponse "Upstream search failed"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Router       /api/cards/search [get]
func (h *Handler) SearchCards(c *gin.Context) {
	builder := NewResponseBuilder(c)
	query := strings.TrimSpace(c.Query("q"))
	next := strings.TrimSpace(c.Query("next"))
	ctx := c.Request.Context()

	var (
		resp dto.SearchResponse
		err  error
	)
	switch {
	case next != "":
		result, fetchErr := h.search.PageLite(ctx, next)
		resp, err = dto.NewSearchResponse(query, result), fetchErr
	case query != "":
		result, fetchErr := h.search.SearchLite(ctx, query)
		resp, err = dto.NewSearchResponse(query, result), fetchErr
	default:
		builder.Error(http.StatusBadRequest, i18n.ErrKeyMissingQuery, service.ErrMissingQuery)
		return
	}
	if err != nil {
		writeSearchError(builder, i18n.ErrKeyUpstreamFailed, err)
		return
	}

	resp.RequestID = middleware.GetRequestID(c)
	c.JSON(http.StatusOK, resp)
}

// PromptSearch handles POST /api/cards/prompt.
//
// @Summary      Search cards from a prompt
// @Description  Parses a natural-language prompt into query parts using the query parser service, joins them and runs a card search.
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        request body dto.PromptRequest true "Prompt"
// @Success      200 {object} dto.PromptResponse "Search result with the parsed query"
// @Failure      400 {object} dto.ErrorResponse "Missing prompt text"
// @Failure      502 {object} dto.ErrorResponse "Parser or upstream search failed"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Router       /api/cards/prompt [post]
func (h *Handler) PromptSearch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.PromptRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyMissingPrompt, err)
		return
	}

	result, err := h.prompt.Search(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrMissingPrompt) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyMissingPrompt, err)
			return
		}
		writeSearchError(builder, i18n.ErrKeyParserFailed, err)
		return
	}

	resp := dto.NewPromptResponse(result)
	resp.RequestID = middleware.GetRequestID(c)
	c.JSON(http.StatusOK, resp)
}

func writeSearchError(builder *ResponseBuilder, upstreamKey string, err error) {
	switch {
	case errors.Is(err, service.ErrMissingQuery), errors.Is(err, service.ErrMissingPageToken):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyMissingQuery, err)
	case errors.Is(err, service.ErrInvalidPageToken):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidPageToken, err)
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	case service.IsUpstreamError(err):
		builder.Error(http.StatusBadGateway, upstreamKey, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
