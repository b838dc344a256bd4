package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/grimoire-service/internal/domain/dto"
	"github.com/guttosm/grimoire-service/internal/i18n"
	"github.com/guttosm/grimoire-service/internal/logger"
)

// ErrorHandler returns a middleware that logs errors attached to the gin context.
// Handlers that attached an error without writing a response get a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		written := c.Writer.Written()

		level := zerolog.ErrorLevel
		if written && c.Writer.Status() < http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}
		log := logger.Logger()
		log.WithLevel(level).
			Str("request_id", requestID).
			Str("error", err.Error()).
			Int("status_code", c.Writer.Status()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !written {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
