package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/grimoire-service/internal/domain/dto"
	"github.com/guttosm/grimoire-service/internal/i18n"
	"github.com/guttosm/grimoire-service/internal/logger"
)

// Recovery returns a middleware that recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)
				log := logger.Logger()
				log.Error().
					Str("request_id", requestID).
					Str("path", c.Request.URL.Path).
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("PANIC recovered")

				message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
			}
		}()
		c.Next()
	}
}
