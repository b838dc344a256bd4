package service

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/logger"
	"github.com/guttosm/grimoire-service/internal/metrics"
	"github.com/guttosm/grimoire-service/internal/service/cache"
)

const (
	// DefaultSearchEndpoint is the upstream card-search URL.
	DefaultSearchEndpoint = "https://api.scryfall.com/cards/search"
	// DefaultImagePathPrefix is the stable image reference handed to callers.
	DefaultImagePathPrefix = "/api/card-image/"
)

// SearchAPI fetches one page of search results from the upstream.
// Implementations return *UpstreamError for non-success responses and transport failures.
type SearchAPI interface {
	FetchPage(ctx context.Context, url string) (model.SearchPage, error)
}

// PagePrefetcher starts a background walk from the given page token.
// Start must not block.
type PagePrefetcher interface {
	Start(token string)
}

// SearchService defines card search operations.
type SearchService interface {
	SearchByQuery(ctx context.Context, query string) (model.SearchPage, error)
	FetchByPageToken(ctx context.Context, token string) (model.SearchPage, error)
	SearchLite(ctx context.Context, query string) (model.SearchResult, error)
	PageLite(ctx context.Context, token string) (model.SearchResult, error)
	ToLiteCards(page model.SearchPage) []model.LiteCard
}

// SearchOption configures a SearchFetcher.
type SearchOption func(*SearchFetcher)

// WithSearchEndpoint sets the upstream search URL used to build query keys.
func WithSearchEndpoint(endpoint string) SearchOption {
	return func(f *SearchFetcher) {
		if endpoint != "" {
			f.endpoint = endpoint
		}
	}
}

// WithImagePathPrefix sets the prefix used to build LiteCard image references.
func WithImagePathPrefix(prefix string) SearchOption {
	return func(f *SearchFetcher) {
		if prefix != "" {
			f.imagePrefix = prefix
		}
	}
}

// WithPrefetcher enables background prefetch of following pages.
func WithPrefetcher(p PagePrefetcher) SearchOption {
	return func(f *SearchFetcher) {
		f.prefetcher = p
	}
}

// SearchFetcher resolves searches and page tokens through a read-through page cache.
type SearchFetcher struct {
	api         SearchAPI
	cache       cache.PageCache
	prefetcher  PagePrefetcher
	endpoint    string
	imagePrefix string
	log         zerolog.Logger
}

// NewSearchFetcher creates a SearchFetcher backed by api and pageCache.
func NewSearchFetcher(api SearchAPI, pageCache cache.PageCache, opts ...SearchOption) *SearchFetcher {
	f := &SearchFetcher{
		api:         api,
		cache:       pageCache,
		endpoint:    DefaultSearchEndpoint,
		imagePrefix: DefaultImagePathPrefix,
		log:         logger.Component("search"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// QueryKey returns the canonical request URL for a search query.
func (f *SearchFetcher) QueryKey(query string) string {
	return f.endpoint + "?q=" + url.QueryEscape(query)
}

// SearchByQuery returns the first result page for query.
func (f *SearchFetcher) SearchByQuery(ctx context.Context, query string) (model.SearchPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.SearchPage{}, ErrMissingQuery
	}
	return f.fetch(ctx, "query", f.QueryKey(query))
}

// FetchByPageToken returns the page behind an upstream pagination link.
// The token is itself the cache key. Tokens that do not point at the search
// endpoint's scheme, host and path are rejected before any cache or network access.
func (f *SearchFetcher) FetchByPageToken(ctx context.Context, token string) (model.SearchPage, error) {
	if strings.TrimSpace(token) == "" {
		return model.SearchPage{}, ErrMissingPageToken
	}
	if !f.isSearchPageURL(token) {
		f.log.Debug().Str("token", token).Msg("Rejected foreign page token")
		return model.SearchPage{}, ErrInvalidPageToken
	}
	return f.fetch(ctx, "page", token)
}

func (f *SearchFetcher) isSearchPageURL(token string) bool {
	endpoint, err := url.Parse(f.endpoint)
	if err != nil {
		return false
	}
	u, err := url.Parse(token)
	if err != nil || u.User != nil || u.Opaque != "" {
		return false
	}
	return strings.EqualFold(u.Scheme, endpoint.Scheme) &&
		strings.EqualFold(u.Host, endpoint.Host) &&
		u.Path == endpoint.Path
}

func (f *SearchFetcher) fetch(ctx context.Context, kind, key string) (model.SearchPage, error) {
	if page, ok := f.cache.Get(key); ok {
		metrics.RecordUpstreamRequest(kind, "cache_hit", 0)
		return page, nil
	}

	start := time.Now()
	page, err := f.api.FetchPage(ctx, key)
	if err != nil {
		metrics.RecordUpstreamRequest(kind, "error", time.Since(start))
		f.log.Warn().Err(err).Str("kind", kind).Str("key", key).Msg("Upstream search failed")
		return model.SearchPage{}, err
	}
	metrics.RecordUpstreamRequest(kind, "success", time.Since(start))

	f.cache.Set(key, page)
	if page.HasMore && page.NextPage != "" && f.prefetcher != nil {
		f.prefetcher.Start(page.NextPage)
	}
	return page, nil
}

// SearchLite searches by query and projects the page for callers.
func (f *SearchFetcher) SearchLite(ctx context.Context, query string) (model.SearchResult, error) {
	page, err := f.SearchByQuery(ctx, query)
	if err != nil {
		return model.SearchResult{}, err
	}
	return f.toResult(page), nil
}

// PageLite follows a page token and projects the page for callers.
func (f *SearchFetcher) PageLite(ctx context.Context, token string) (model.SearchResult, error) {
	page, err := f.FetchByPageToken(ctx, token)
	if err != nil {
		return model.SearchResult{}, err
	}
	return f.toResult(page), nil
}

func (f *SearchFetcher) toResult(page model.SearchPage) model.SearchResult {
	result := model.SearchResult{
		Cards:   f.ToLiteCards(page),
		HasMore: page.HasMore,
	}
	if page.HasMore {
		result.NextPage = page.NextPage
	}
	return result
}

// ToLiteCards projects page using the fetcher's image prefix.
func (f *SearchFetcher) ToLiteCards(page model.SearchPage) []model.LiteCard {
	return projectLiteCards(page, f.imagePrefix)
}

// ToLiteCards projects at most model.LiteCardCap cards from page, in order,
// with images pointing at the default image path.
func ToLiteCards(page model.SearchPage) []model.LiteCard {
	return projectLiteCards(page, DefaultImagePathPrefix)
}

func projectLiteCards(page model.SearchPage, imagePrefix string) []model.LiteCard {
	n := len(page.Data)
	if n > model.LiteCardCap {
		n = model.LiteCardCap
	}
	cards := make([]model.LiteCard, 0, n)
	for _, c := range page.Data[:n] {
		cards = append(cards, model.LiteCard{
			ID:       c.ID,
			Name:     c.Name,
			Image:    imagePrefix + url.PathEscape(c.ID),
			ManaCost: c.ManaCost,
			TypeLine: c.TypeLine,
		})
	}
	return cards
}
