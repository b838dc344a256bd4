// Package main is the entry point for the grimoire-service application.
//
// @title           Grimoire Service API
// @version         1.0.0
// @description     Card search, card image proxy and deck storage for the grimoire front end.
//
//	Search results are cached per upstream request and the following pages are prefetched in the background.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/grimoire-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for deck mutations. Required if authentication is enabled.
//
// @tag.name        Cards
// @tag.description Card search operations
//
// @tag.name        Images
// @tag.description Cached card image proxy
//
// @tag.name        Decks
// @tag.description Deck storage and decklist parsing
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/grimoire-service/docs" // swagger docs

	"github.com/guttosm/grimoire-service/config"
	"github.com/guttosm/grimoire-service/internal/app"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	application.Start()

	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		app.WithShutdownHook(application.Shutdown),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
