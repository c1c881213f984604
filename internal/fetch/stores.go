package fetch

import (
	"context"
	"sort"
	"sync"
	"time"

	"teletext/internal/domain"
)

// MemoryStore is an in-memory page source
type MemoryStore struct {
	mu      sync.RWMutex
	pages   map[string]domain.Page
	latency time.Duration
}

// NewMemoryStore creates a new memory-based page store
func NewMemoryStore(pages ...domain.Page) *MemoryStore {
	s := &MemoryStore{
		pages: make(map[string]domain.Page, len(pages)),
	}
	s.AddPages(pages...)
	return s
}

// SetLatency delays every fetch by d, or until the fetch is cancelled
func (s *MemoryStore) SetLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency = d
}

// FetchPage returns a copy of the stored page, or nil if there is none
func (s *MemoryStore) FetchPage(ctx context.Context, id, sessionID string) (*domain.Page, error) {
	s.mu.RLock()
	latency := s.latency
	s.mu.RUnlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, ok := s.GetPage(id)
	if !ok {
		return nil, nil
	}
	return &page, nil
}

func (s *MemoryStore) GetPage(id string) (domain.Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[id]
	if !ok {
		return domain.Page{}, false
	}
	return p.Clone(), true
}

func (s *MemoryStore) AddPages(pages ...domain.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range pages {
		s.pages[p.ID] = p.Clone()
	}
}

func (s *MemoryStore) RemovePage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pages, id)
}

// IDs returns the stored page ids in order
func (s *MemoryStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.pages))
	for id := range s.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Chain returns the page with the given id followed by every page reachable
// through its continuation, in order
func (s *MemoryStore) Chain(id string) []domain.Page {
	var out []domain.Page
	seen := make(map[string]bool)
	for id != "" && !seen[id] {
		seen[id] = true
		p, ok := s.GetPage(id)
		if !ok {
			break
		}
		out = append(out, p)
		id = ""
		if p.Meta.Continuation != nil {
			id = p.Meta.Continuation.NextPage
		}
	}
	return out
}
