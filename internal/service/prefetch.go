package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/logger"
	"github.com/guttosm/grimoire-service/internal/metrics"
	"github.com/guttosm/grimoire-service/internal/service/cache"
)

// ImageWarmer fetches a card image through the image-serving path and
// discards the bytes, leaving any downstream image cache populated.
type ImageWarmer interface {
	Warm(ctx context.Context, cardID string) error
}

// PrefetchConfig bounds a prefetch walk.
type PrefetchConfig struct {
	// MaxPages is the depth budget of one walk.
	MaxPages int
	// MaxImagesPerPage caps image warm-ups per fetched page.
	MaxImagesPerPage int
	// Delay is the pause between consecutive pages of a walk.
	Delay time.Duration
	// ImageConcurrency bounds in-flight image warm-ups within a page.
	ImageConcurrency int
}

// DefaultPrefetchConfig returns the default walk limits.
func DefaultPrefetchConfig() PrefetchConfig {
	return PrefetchConfig{
		MaxPages:         2,
		MaxImagesPerPage: 20,
		Delay:            200 * time.Millisecond,
		ImageConcurrency: 8,
	}
}

// Prefetcher walks forward through next_page links in the background,
// storing each page in the cache and warming its card images.
//
// A walk stops when its depth budget is spent, when a page has no
// successor, when a fetch fails, or when it reaches a page that is already
// cached. Walks are not cancelled by callers.
type Prefetcher struct {
	api    SearchAPI
	cache  cache.PageCache
	warmer ImageWarmer
	cfg    PrefetchConfig
	log    zerolog.Logger
	wg     sync.WaitGroup
}

// NewPrefetcher creates a Prefetcher. A nil warmer disables image warm-up.
func NewPrefetcher(api SearchAPI, pageCache cache.PageCache, warmer ImageWarmer, cfg PrefetchConfig) *Prefetcher {
	if cfg.ImageConcurrency <= 0 {
		cfg.ImageConcurrency = 1
	}
	return &Prefetcher{
		api:    api,
		cache:  pageCache,
		warmer: warmer,
		cfg:    cfg,
		log:    logger.Component("prefetch"),
	}
}

// Start launches a walk from token and returns immediately.
func (p *Prefetcher) Start(token string) {
	if token == "" || p.cfg.MaxPages <= 0 {
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		// Detached from any request context
		p.walk(context.Background(), token, p.cfg.MaxPages)
	}()
}

// Wait blocks until every started walk has finished.
func (p *Prefetcher) Wait() {
	p.wg.Wait()
}

// walk runs a single prefetch chain and returns the number of pages fetched.
func (p *Prefetcher) walk(ctx context.Context, token string, depth int) int {
	fetched := 0
	for depth > 0 && token != "" {
		if p.cache.Contains(token) {
			metrics.RecordPrefetchPage("already_cached")
			p.log.Debug().Str("token", token).Msg("Prefetch reached cached page, stopping")
			return fetched
		}

		page, err := p.api.FetchPage(ctx, token)
		if err != nil {
			metrics.RecordPrefetchPage("error")
			p.log.Debug().Err(err).Str("token", token).Msg("Prefetch fetch failed, stopping")
			return fetched
		}
		fetched++
		metrics.RecordPrefetchPage("fetched")

		p.cache.Set(token, page)
		p.warmImages(ctx, page)

		if !page.HasMore || page.NextPage == "" {
			return fetched
		}
		if !p.sleep(ctx) {
			return fetched
		}
		token = page.NextPage
		depth--
	}
	return fetched
}

// warmImages fetches up to MaxImagesPerPage images concurrently.
// Individual failures are recorded and otherwise ignored.
func (p *Prefetcher) warmImages(ctx context.Context, page model.SearchPage) {
	if p.warmer == nil || p.cfg.MaxImagesPerPage <= 0 {
		return
	}

	cards := page.Data
	if len(cards) > p.cfg.MaxImagesPerPage {
		cards = cards[:p.cfg.MaxImagesPerPage]
	}

	var g errgroup.Group
	g.SetLimit(p.cfg.ImageConcurrency)
	for _, card := range cards {
		if card.ID == "" {
			continue
		}
		id := card.ID
		g.Go(func() error {
			if err := p.warmer.Warm(ctx, id); err != nil {
				metrics.RecordPrefetchImage("error")
				p.log.Debug().Err(err).Str("card_id", id).Msg("Image warm-up failed")
				return nil
			}
			metrics.RecordPrefetchImage("success")
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Prefetcher) sleep(ctx context.Context) bool {
	if p.cfg.Delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(p.cfg.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
