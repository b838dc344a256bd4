// Package client implements HTTP clients for the upstream card API, the image proxy
// and the prompt parser.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/service"
)

const (
	// DefaultCardEndpoint is the upstream single-card lookup prefix.
	DefaultCardEndpoint = "https://api.scryfall.com/cards/"
	userAgent           = "grimoire-service/1.0"
	maxDrainBytes       = 64 << 10
	maxImageBytes       = 20 << 20
)

var (
	_ service.SearchAPI  = (*ScryfallClient)(nil)
	_ service.CardSource = (*ScryfallClient)(nil)
)

// ScryfallClient talks to the card-search API.
type ScryfallClient struct {
	httpClient   *http.Client
	cardEndpoint string
}

// NewScryfallClient creates a client. A non-positive timeout disables the client deadline.
func NewScryfallClient(cardEndpoint string, timeout time.Duration) *ScryfallClient {
	if cardEndpoint == "" {
		cardEndpoint = DefaultCardEndpoint
	}
	if !strings.HasSuffix(cardEndpoint, "/") {
		cardEndpoint += "/"
	}
	return &ScryfallClient{
		httpClient:   &http.Client{Timeout: timeout},
		cardEndpoint: cardEndpoint,
	}
}

// FetchPage GETs a search URL (a query URL or a next_page token) and decodes the page.
func (c *ScryfallClient) FetchPage(ctx context.Context, pageURL string) (model.SearchPage, error) {
	var page model.SearchPage
	if err := c.getJSON(ctx, pageURL, &page); err != nil {
		return model.SearchPage{}, err
	}
	return page, nil
}

// FetchCard looks up a single card by ID.
func (c *ScryfallClient) FetchCard(ctx context.Context, cardID string) (model.Card, error) {
	var card model.Card
	if err := c.getJSON(ctx, c.cardEndpoint+url.PathEscape(cardID), &card); err != nil {
		return model.Card{}, err
	}
	return card, nil
}

// Download fetches raw image bytes and the reported content type.
func (c *ScryfallClient) Download(ctx context.Context, imageURL string) ([]byte, string, error) {
	resp, err := c.do(ctx, imageURL, "image/*")
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", &service.UpstreamError{URL: imageURL, Err: err}
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (c *ScryfallClient) getJSON(ctx context.Context, target string, out any) error {
	resp, err := c.do(ctx, target, "application/json")
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &service.UpstreamError{URL: target, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// do performs a GET and returns the response only for 2xx statuses.
func (c *ScryfallClient) do(ctx context.Context, target, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &service.UpstreamError{URL: target, Err: err}
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &service.UpstreamError{URL: target, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		_ = resp.Body.Close()
		return nil, &service.UpstreamError{URL: target, StatusCode: resp.StatusCode}
	}
	return resp, nil
}
