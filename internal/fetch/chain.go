package fetch

import (
	"context"
	"errors"
	"fmt"

	"teletext/internal/domain"
)

// MaxChainPages bounds how far LoadChain follows continuation links
const MaxChainPages = 99

// ErrChainTooLong is returned when a continuation chain does not end
var ErrChainTooLong = errors.New("continuation chain too long")

// LoadChain fetches every page of the article that page belongs to, first
// page first. page itself is only used for its continuation links.
func LoadChain(ctx context.Context, f Fetcher, page domain.Page, sessionID string) ([]domain.Page, error) {
	headID := page.ID
	cont := page.Meta.Continuation
	for i := 0; cont.HasPrevious(); i++ {
		if i >= MaxChainPages {
			return nil, ErrChainTooLong
		}
		p, err := fetchOne(ctx, f, cont.PreviousPage, sessionID)
		if err != nil {
			return nil, err
		}
		headID = p.ID
		cont = p.Meta.Continuation
	}

	var pages []domain.Page
	seen := make(map[string]bool)
	for id := headID; id != ""; {
		if seen[id] || len(pages) >= MaxChainPages {
			return nil, ErrChainTooLong
		}
		seen[id] = true

		p, err := fetchOne(ctx, f, id, sessionID)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *p)

		id = ""
		if p.Meta.Continuation.HasNext() {
			id = p.Meta.Continuation.NextPage
		}
	}
	return pages, nil
}

func fetchOne(ctx context.Context, f Fetcher, id, sessionID string) (*domain.Page, error) {
	p, err := f.FetchPage(ctx, id, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page %s: %w", id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("page %s not found", id)
	}
	return p, nil
}
