package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/grimoire-service/internal/logger"
)

// RequestLogger returns a middleware that logs HTTP request details in JSON format.
// Requests whose path starts with one of quietPaths are logged at debug level
// unless they fail.
func RequestLogger(quietPaths ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		path := c.Request.URL.Path

		log := logger.Logger().With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", c.Request.URL.RawQuery).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Int("bytes", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		level := getLogLevel(statusCode)
		if level == zerolog.InfoLevel && hasPrefix(path, quietPaths) {
			level = zerolog.DebugLevel
		}
		log.WithLevel(level).Msg("HTTP request")
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
