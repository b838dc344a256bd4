package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/grimoire-service/internal/domain/dto"
	"github.com/guttosm/grimoire-service/internal/i18n"
)

// Timeout returns a middleware that bounds request processing with a context deadline.
// Handlers observe the deadline through c.Request.Context(); if the deadline passes
// before anything was written, the client gets a 504.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout,
				dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c)))
		}
	}
}
