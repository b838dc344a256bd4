package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/grimoire-service/internal/circuitbreaker"
	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/logger"
	"github.com/guttosm/grimoire-service/internal/metrics"
	"github.com/guttosm/grimoire-service/internal/repository"
)

const (
	contentTypePNG  = "image/png"
	contentTypeJPEG = "image/jpeg"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// CardSource resolves card metadata and downloads image bytes from the upstream.
type CardSource interface {
	FetchCard(ctx context.Context, cardID string) (model.Card, error)
	Download(ctx context.Context, url string) (data []byte, contentType string, err error)
}

// ImageService serves card images through a byte cache.
type ImageService interface {
	Get(ctx context.Context, cardID string) (model.CardImage, error)
}

// ImageConfig tunes the image proxy.
type ImageConfig struct {
	CacheTTL         time.Duration
	NegativeCacheTTL time.Duration
	FetchTimeout     time.Duration
	DownloadTimeout  time.Duration
	Retries          int
	BackoffBase      time.Duration
	ConcurrencyLimit int
	CircuitThreshold int
	CircuitTimeout   time.Duration
}

// DefaultImageConfig returns the production defaults.
func DefaultImageConfig() ImageConfig {
	return ImageConfig{
		CacheTTL:         24 * time.Hour,
		NegativeCacheTTL: 5 * time.Minute,
		FetchTimeout:     10 * time.Second,
		DownloadTimeout:  15 * time.Second,
		Retries:          3,
		BackoffBase:      200 * time.Millisecond,
		ConcurrencyLimit: 25,
		CircuitThreshold: 20,
		CircuitTimeout:   30 * time.Second,
	}
}

// CardImageService fetches card images upstream and caches the bytes.
type CardImageService struct {
	source  CardSource
	cache   repository.ImageCacheInterface
	cfg     ImageConfig
	sem     chan struct{}
	breaker *circuitbreaker.CircuitBreaker
	sleep   func(ctx context.Context, d time.Duration) error
	log     zerolog.Logger
}

// NewImageService creates an image service. Non-positive limits fall back to defaults.
func NewImageService(source CardSource, imageCache repository.ImageCacheInterface, cfg ImageConfig) *CardImageService {
	defaults := DefaultImageConfig()
	if cfg.Retries <= 0 {
		cfg.Retries = 1
	}
	if cfg.ConcurrencyLimit <= 0 {
		cfg.ConcurrencyLimit = defaults.ConcurrencyLimit
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaults.CacheTTL
	}
	if cfg.NegativeCacheTTL <= 0 {
		cfg.NegativeCacheTTL = defaults.NegativeCacheTTL
	}

	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitThreshold,
		SuccessThreshold: 1,
		Timeout:          cfg.CircuitTimeout,
		Name:             "card-images",
		IsFailure: func(err error) bool {
			return !errors.Is(err, ErrImageNotFound) && !errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, state circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(state))
		},
	})

	return &CardImageService{
		source:  source,
		cache:   imageCache,
		cfg:     cfg,
		sem:     make(chan struct{}, cfg.ConcurrencyLimit),
		breaker: breaker,
		sleep:   sleepContext,
		log:     logger.Component("images"),
	}
}

// CircuitBreaker exposes the upstream breaker for health reporting.
func (s *CardImageService) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.breaker
}

// Get returns the image for a card, consulting the negative and byte caches first.
func (s *CardImageService) Get(ctx context.Context, cardID string) (model.CardImage, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return model.CardImage{}, ErrImageNotFound
	}

	negative, err := s.cache.IsNegative(ctx, cardID)
	if err != nil {
		s.log.Warn().Err(err).Str("card_id", cardID).Msg("negative cache lookup failed")
	} else if negative {
		metrics.RecordImageRequest("negative_cache", "not_found")
		return model.CardImage{}, ErrImageNotFound
	}

	data, found, err := s.cache.Get(ctx, cardID)
	if err != nil {
		s.log.Warn().Err(err).Str("card_id", cardID).Msg("image cache lookup failed")
	} else if found {
		metrics.RecordImageRequest("cache", "hit")
		return model.CardImage{Data: data, ContentType: DetectContentType(data)}, nil
	}

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return model.CardImage{}, ctx.Err()
	}
	defer func() { <-s.sem }()

	var img model.CardImage
	start := time.Now()
	err = s.breaker.Execute(ctx, func() error {
		var fetchErr error
		img, fetchErr = s.fetchWithRetry(ctx, cardID)
		return fetchErr
	})
	metrics.ObserveImageFetch(time.Since(start))

	switch {
	case err == nil:
	case errors.Is(err, ErrImageNotFound):
		if negErr := s.cache.SetNegative(ctx, cardID, s.cfg.NegativeCacheTTL); negErr != nil {
			s.log.Warn().Err(negErr).Str("card_id", cardID).Msg("failed to store negative image entry")
		}
		metrics.RecordImageRequest("upstream", "not_found")
		return model.CardImage{}, ErrImageNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return model.CardImage{}, err
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		metrics.RecordImageRequest("upstream", "circuit_open")
		return model.CardImage{}, fmt.Errorf("%w: %v", ErrImageUnavailable, err)
	default:
		metrics.RecordImageRequest("upstream", "error")
		s.log.Warn().Err(err).Str("card_id", cardID).Msg("card image fetch failed")
		return model.CardImage{}, fmt.Errorf("%w: %v", ErrImageUnavailable, err)
	}

	if setErr := s.cache.Set(ctx, cardID, img.Data, s.cfg.CacheTTL); setErr != nil {
		s.log.Warn().Err(setErr).Str("card_id", cardID).Msg("failed to cache card image")
	}
	metrics.RecordImageRequest("upstream", "success")
	return img, nil
}

func (s *CardImageService) fetchWithRetry(ctx context.Context, cardID string) (model.CardImage, error) {
	var lastErr error
	for attempt := 0; attempt < s.cfg.Retries; attempt++ {
		if attempt > 0 {
			if err := s.sleep(ctx, s.cfg.BackoffBase<<(attempt-1)); err != nil {
				return model.CardImage{}, err
			}
		}

		img, err := s.fetchOnce(ctx, cardID)
		if err == nil {
			return img, nil
		}
		if ctx.Err() != nil {
			return model.CardImage{}, ctx.Err()
		}
		var upstreamErr *UpstreamError
		if !errors.As(err, &upstreamErr) {
			return model.CardImage{}, err
		}
		if upstreamErr.IsNotFound() {
			return model.CardImage{}, ErrImageNotFound
		}
		if !upstreamErr.Retryable() {
			return model.CardImage{}, err
		}
		lastErr = err
		s.log.Debug().Err(err).Str("card_id", cardID).Int("attempt", attempt+1).Msg("retrying card image fetch")
	}
	return model.CardImage{}, lastErr
}

func (s *CardImageService) fetchOnce(ctx context.Context, cardID string) (model.CardImage, error) {
	fetchCtx, cancel := withOptionalTimeout(ctx, s.cfg.FetchTimeout)
	card, err := s.source.FetchCard(fetchCtx, cardID)
	cancel()
	if err != nil {
		return model.CardImage{}, err
	}

	imageURL := card.ImageURL()
	if imageURL == "" {
		return model.CardImage{}, ErrImageNotFound
	}

	downloadCtx, cancel := withOptionalTimeout(ctx, s.cfg.DownloadTimeout)
	defer cancel()
	data, contentType, err := s.source.Download(downloadCtx, imageURL)
	if err != nil {
		return model.CardImage{}, err
	}
	if !strings.HasPrefix(contentType, "image/") {
		contentType = DetectContentType(data)
	}
	return model.CardImage{Data: data, ContentType: contentType}, nil
}

// DetectContentType reports image/png for PNG data and image/jpeg otherwise.
func DetectContentType(data []byte) string {
	if bytes.HasPrefix(data, pngMagic) {
		return contentTypePNG
	}
	return contentTypeJPEG
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
