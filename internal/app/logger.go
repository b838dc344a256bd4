// Package app provides logger initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/grimoire-service/config"
	"github.com/guttosm/grimoire-service/internal/logger"
)

// InitializeLogger configures the global logger from LOG_LEVEL and LOG_PRETTY.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
	log.Debug().Str("level", cfg.Level).Bool("pretty", cfg.Pretty).Msg("Logger initialized")
}
