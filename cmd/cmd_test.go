package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teletext/internal/config"
	"teletext/internal/domain"
	"teletext/internal/grid"
	"teletext/internal/navigation"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Storage.FavoritesDB = filepath.Join(t.TempDir(), "favorites.db")
	return cfg
}

func TestRenderIndex(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderPages(context.Background(), &out, testConfig(t), "100", false))

	rows := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, rows, grid.Height)
	assert.NoError(t, grid.Check(rows))
	assert.Contains(t, out.String(), "WELCOME TO TELETEXT")
}

func TestRenderChain(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderPages(context.Background(), &out, testConfig(t), "201", true))

	pages := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n\n")
	require.Greater(t, len(pages), 1)
	for _, p := range pages {
		assert.Len(t, strings.Split(p, "\n"), grid.Height)
	}
}

func TestRenderRejectsBadID(t *testing.T) {
	err := renderPages(context.Background(), &bytes.Buffer{}, testConfig(t), "1000", false)
	assert.ErrorIs(t, err, domain.ErrInvalidPageID)
}

func TestRenderMissingPage(t *testing.T) {
	err := renderPages(context.Background(), &bytes.Buffer{}, testConfig(t), "899", false)
	assert.ErrorContains(t, err, "not found")
}

func TestFavoritesSeededFromConfig(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	require.NoError(t, listFavorites(context.Background(), &out, cfg))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, navigation.FavoriteSlots)
	assert.Equal(t, "f1  200", lines[0])
	assert.Equal(t, "f0  -", lines[9])
}

func TestSetAndClearFavorite(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	require.NoError(t, setFavorite(ctx, cfg, "0", "450"))

	var out bytes.Buffer
	require.NoError(t, listFavorites(ctx, &out, cfg))
	assert.Contains(t, out.String(), "f0  450")
	assert.Contains(t, out.String(), "f1  200")

	require.NoError(t, setFavorite(ctx, cfg, "1", ""))
	out.Reset()
	require.NoError(t, listFavorites(ctx, &out, cfg))
	assert.Contains(t, out.String(), "f1  -")
}

func TestSetFavoriteValidation(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	assert.ErrorIs(t, setFavorite(ctx, cfg, "x", "200"), navigation.ErrFavoriteSlot)
	assert.ErrorIs(t, setFavorite(ctx, cfg, "12", "200"), navigation.ErrFavoriteSlot)
	assert.ErrorIs(t, setFavorite(ctx, cfg, "1", "20"), domain.ErrInvalidPageID)
}
