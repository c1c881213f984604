// Package fetch provides page sources for the navigation service.
package fetch

import (
	"context"

	"teletext/internal/domain"
)

// Fetcher retrieves a raw page by id. A nil page with a nil error means the
// page doesn't exist; callers treat it the same as a failure.
type Fetcher interface {
	FetchPage(ctx context.Context, id, sessionID string) (*domain.Page, error)
}

// FetcherFunc adapts a function to Fetcher
type FetcherFunc func(ctx context.Context, id, sessionID string) (*domain.Page, error)

func (f FetcherFunc) FetchPage(ctx context.Context, id, sessionID string) (*domain.Page, error) {
	return f(ctx, id, sessionID)
}
