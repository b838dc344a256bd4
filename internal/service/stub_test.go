//go:build !integration

package service

import (
	"context"
	"sync"

	"github.com/guttosm/grimoire-service/internal/domain/model"
)

// stubAPI serves canned pages and counts calls per URL.
type stubAPI struct {
	mu     sync.Mutex
	pages  map[string]model.SearchPage
	errs   map[string]error
	gates  map[string]chan struct{}
	calls  map[string]int
	order  []string
	onCall func(url string)
}

func newStubAPI() *stubAPI {
	return &stubAPI{
		pages: make(map[string]model.SearchPage),
		errs:  make(map[string]error),
		gates: make(map[string]chan struct{}),
		calls: make(map[string]int),
	}
}

func (s *stubAPI) withPage(url string, p model.SearchPage) *stubAPI {
	s.pages[url] = p
	return s
}

func (s *stubAPI) withError(url string, err error) *stubAPI {
	s.errs[url] = err
	return s
}

// gate blocks fetches of url until the returned channel is closed.
func (s *stubAPI) gate(url string) chan struct{} {
	ch := make(chan struct{})
	s.gates[url] = ch
	return ch
}

func (s *stubAPI) FetchPage(ctx context.Context, url string) (model.SearchPage, error) {
	s.mu.Lock()
	s.calls[url]++
	s.order = append(s.order, url)
	gate := s.gates[url]
	onCall := s.onCall
	s.mu.Unlock()

	if onCall != nil {
		onCall(url)
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return model.SearchPage{}, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.errs[url]; ok {
		return model.SearchPage{}, err
	}
	p, ok := s.pages[url]
	if !ok {
		return model.SearchPage{}, &UpstreamError{URL: url, StatusCode: 404}
	}
	return p, nil
}

func (s *stubAPI) callCount(url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[url]
}

func (s *stubAPI) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// recordingWarmer records warmed card IDs and fails for IDs in failures.
type recordingWarmer struct {
	mu       sync.Mutex
	warmed   []string
	failures map[string]error
}

func (w *recordingWarmer) Warm(_ context.Context, cardID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.warmed = append(w.warmed, cardID)
	if err, ok := w.failures[cardID]; ok {
		return err
	}
	return nil
}

func (w *recordingWarmer) ids() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.warmed...)
}

// recordingPrefetcher captures started tokens without walking.
type recordingPrefetcher struct {
	mu     sync.Mutex
	tokens []string
}

func (r *recordingPrefetcher) Start(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = append(r.tokens, token)
}

func (r *recordingPrefetcher) started() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.tokens...)
}
