package http

import (
	"github.com/gin-gonic/gin"
)

// CardRoutes registers card search and image routes.
type CardRoutes struct {
	handler      *Handler
	imageHandler *ImageHandler
}

// NewCardRoutes creates CardRoutes from the configured services.
// Routes whose service is nil are skipped.
func NewCardRoutes(cfg *RouterConfig) *CardRoutes {
	r := &CardRoutes{}
	if cfg.SearchService != nil {
		r.handler = NewHandler(cfg.SearchService, cfg.PromptService)
	}
	if cfg.ImageService != nil {
		r.imageHandler = NewImageHandler(cfg.ImageService)
	}
	return r
}

// RegisterRoutes mounts /cards/search, /cards/prompt and /card-image/:id.
// Only the /cards group is rate limited.
func (r *CardRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	if r.handler != nil {
		cards := rg.Group("/cards", cfg.rateLimited()...)
		cards.GET("/search", r.handler.SearchCards)
		if r.handler.prompt != nil {
			cards.POST("/prompt", r.handler.PromptSearch)
		}
	}
	if r.imageHandler != nil {
		rg.GET("/card-image/:id", r.imageHandler.GetCardImage)
	}
}
