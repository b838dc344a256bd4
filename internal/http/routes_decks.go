package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/grimoire-service/internal/middleware"
	"github.com/guttosm/grimoire-service/internal/service"
)

// DeckRoutes registers deck routes.
type DeckRoutes struct {
	handler *DeckHandler
}

// NewDeckRoutes creates DeckRoutes for the given service.
func NewDeckRoutes(decks service.DeckService) *DeckRoutes {
	return &DeckRoutes{handler: NewDeckHandler(decks)}
}

// RegisterRoutes mounts /decks. CRUD routes are only mounted when storage is
// available; mutations require an API key when auth is enabled.
func (r *DeckRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	decks := rg.Group("/decks", cfg.rateLimited()...)
	decks.POST("/parse", r.handler.ParseDeckList)

	if !cfg.DecksStorageEnabled {
		return
	}
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		decks.Use(middleware.MutationsOnly(middleware.APIKeyAuth(cfg.APIKeys)))
	}
	decks.GET("", r.handler.ListDecks)
	decks.POST("", r.handler.CreateDeck)
	decks.GET("/:id", r.handler.GetDeck)
	decks.PUT("/:id", r.handler.UpdateDeck)
	decks.DELETE("/:id", r.handler.DeleteDeck)
}
