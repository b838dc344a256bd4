package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/grimoire-service/internal/service"
)

var _ service.ImageWarmer = (*ImageProxyWarmer)(nil)

// ImageProxyWarmer requests card images from the image proxy so they land in its cache.
type ImageProxyWarmer struct {
	httpClient *http.Client
	baseURL    string
}

// NewImageProxyWarmer creates a warmer for the proxy rooted at baseURL.
func NewImageProxyWarmer(baseURL string, timeout time.Duration) *ImageProxyWarmer {
	return &ImageProxyWarmer{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Warm fetches and discards the image for cardID. Non-2xx responses are errors.
func (w *ImageProxyWarmer) Warm(ctx context.Context, cardID string) error {
	target := w.baseURL + "/" + url.PathEscape(cardID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return &service.UpstreamError{URL: target, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("read image body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &service.UpstreamError{URL: target, StatusCode: resp.StatusCode}
	}
	return nil
}
