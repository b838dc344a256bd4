package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/grimoire-service/internal/i18n"
	"github.com/guttosm/grimoire-service/internal/service"
)

// ImageCacheControl is sent with every served card image.
const ImageCacheControl = "public, max-age=86400"

// ImageHandler serves card images through the image proxy service.
type ImageHandler struct {
	images service.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images service.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// GetCardImage handles GET /api/card-image/{id}.
//
// @Summary      Card image
// @Description  Returns the image bytes for a card. Images are cached for a day and missing cards are remembered for a few minutes.
// @Tags         Images
// @Produce      image/jpeg
// @Produce      image/png
// @Param        id path string true "Card ID"
// @Success      200 {file} binary "Image bytes"
// @Failure      404 {object} dto.ErrorResponse "Card or image not found"
// @Failure      503 {object} dto.ErrorResponse "Image upstream unavailable"
// @Router       /api/card-image/{id} [get]
func (h *ImageHandler) GetCardImage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	img, err := h.images.Get(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrImageNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyImageNotFound, err)
		return
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
		return
	default:
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyImageUnavailable, err)
		return
	}

	c.Header("Cache-Control", ImageCacheControl)
	c.Data(http.StatusOK, img.ContentType, img.Data)
}
