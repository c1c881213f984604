package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"teletext/internal/domain"
)

// SessionHeader carries the session id on every page request
const SessionHeader = "X-Session-ID"

// HTTPFetcher fetches pages as JSON from {BaseURL}/pages/{id}
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher creates a fetcher for baseURL with the given client timeout
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchPage requests one page. 404 yields a nil page without error.
func (f *HTTPFetcher) FetchPage(ctx context.Context, id, sessionID string) (*domain.Page, error) {
	endpoint := fmt.Sprintf("%s/pages/%s", f.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("failed to fetch page %s: status %d: %s", id, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var page domain.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode page %s: %w", id, err)
	}
	if page.ID == "" {
		page.ID = id
	}
	return &page, nil
}
