// Command grimoirectl searches cards and parses decklists from the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/guttosm/grimoire-service/config"
	"github.com/guttosm/grimoire-service/internal/cli"
	"github.com/guttosm/grimoire-service/internal/client"
	"github.com/guttosm/grimoire-service/internal/logger"
	"github.com/guttosm/grimoire-service/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	scryfall := client.NewScryfallClient(cfg.Search.CardEndpoint, cfg.Search.HTTPTimeout)
	search := service.NewSearchFetcher(scryfall,
		service.NewResponseCache(cfg.Search.CacheTTL, cfg.Search.CacheMaxEntries),
		service.WithSearchEndpoint(cfg.Search.Endpoint),
		service.WithImagePathPrefix(cfg.Search.ImagePathPrefix),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(search).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
