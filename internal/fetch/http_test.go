package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teletext/internal/domain"
)

func TestHTTPFetcher(t *testing.T) {
	var (
		mu         sync.Mutex
		gotSession string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotSession = r.Header.Get(SessionHeader)
		mu.Unlock()
		switch r.URL.Path {
		case "/pages/201":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "201",
				"title": "Headlines",
				"rows": ["one", "two"],
				"links": [{"label": "Sport", "targetPage": "300", "color": "green"}],
				"meta": {"source": "wire", "inputMode": "double",
					"continuation": {"currentPage": "201", "nextPage": "201-2", "totalPages": 2, "currentIndex": 0}}
			}`))
		case "/pages/500":
			http.Error(w, "boom", http.StatusInternalServerError)
		case "/pages/600":
			_, _ = w.Write([]byte(`{not json`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL+"/", time.Second)

	t.Run("decodes page", func(t *testing.T) {
		page, err := f.FetchPage(context.Background(), "201", "session-1")
		require.NoError(t, err)
		require.NotNil(t, page)

		mu.Lock()
		assert.Equal(t, "session-1", gotSession)
		mu.Unlock()
		assert.Equal(t, "Headlines", page.Title)
		assert.Equal(t, []domain.Link{{Label: "Sport", Target: "300", Color: domain.ColorGreen}}, page.Links)
		assert.Equal(t, domain.InputDouble, page.InputMode())
		assert.True(t, page.Meta.Continuation.HasNext())
	})

	t.Run("not found is nil", func(t *testing.T) {
		page, err := f.FetchPage(context.Background(), "404", "")
		assert.NoError(t, err)
		assert.Nil(t, page)
	})

	t.Run("server error", func(t *testing.T) {
		_, err := f.FetchPage(context.Background(), "500", "")
		assert.ErrorContains(t, err, "status 500")
	})

	t.Run("bad body", func(t *testing.T) {
		_, err := f.FetchPage(context.Background(), "600", "")
		assert.ErrorContains(t, err, "failed to decode")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := f.FetchPage(ctx, "201", "")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
