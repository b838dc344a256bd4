package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/service"
)

var _ service.QueryParser = (*NLQClient)(nil)

type parseRequest struct {
	Text string `json:"text"`
}

// NLQClient calls the natural-language query parser.
type NLQClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewNLQClient creates a parser client rooted at baseURL.
func NewNLQClient(baseURL string, timeout time.Duration) *NLQClient {
	return &NLQClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Parse turns free text into search query parts.
func (c *NLQClient) Parse(ctx context.Context, text string) (model.ParsedPrompt, error) {
	body, err := json.Marshal(parseRequest{Text: strings.TrimSpace(text)})
	if err != nil {
		return model.ParsedPrompt{}, err
	}

	target := c.baseURL + "/nlq/parse"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return model.ParsedPrompt{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ParsedPrompt{}, &service.UpstreamError{URL: target, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		return model.ParsedPrompt{}, &service.UpstreamError{URL: target, StatusCode: resp.StatusCode}
	}

	var parsed model.ParsedPrompt
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.ParsedPrompt{}, &service.UpstreamError{URL: target, Err: fmt.Errorf("decode response: %w", err)}
	}
	if parsed.QueryParts == nil {
		parsed.QueryParts = []string{}
	}
	if parsed.Warnings == nil {
		parsed.Warnings = []string{}
	}
	return parsed, nil
}
