// Package storage persists session state in SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"teletext/internal/navigation"
)

const schema = `
CREATE TABLE IF NOT EXISTS favorites (
	slot       INTEGER PRIMARY KEY CHECK (slot BETWEEN 0 AND 9),
	page_id    TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// FavoritesDB stores the favorites table, one row per set slot
type FavoritesDB struct {
	db *sql.DB
}

var _ navigation.FavoritesStore = (*FavoritesDB)(nil)

// OpenFavorites opens or creates the database at dbPath
func OpenFavorites(dbPath string) (*FavoritesDB, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &FavoritesDB{db: db}, nil
}

func (f *FavoritesDB) Close() error {
	return f.db.Close()
}

// LoadFavorites reads every slot. Unset slots are empty.
func (f *FavoritesDB) LoadFavorites(ctx context.Context) ([navigation.FavoriteSlots]string, error) {
	var favorites [navigation.FavoriteSlots]string

	rows, err := f.db.QueryContext(ctx, "SELECT slot, page_id FROM favorites ORDER BY slot")
	if err != nil {
		return favorites, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot int
		var pageID string
		if err := rows.Scan(&slot, &pageID); err != nil {
			return favorites, fmt.Errorf("failed to scan favorite: %w", err)
		}
		if slot >= 0 && slot < len(favorites) {
			favorites[slot] = pageID
		}
	}
	if err := rows.Err(); err != nil {
		return favorites, fmt.Errorf("failed to read favorites: %w", err)
	}
	return favorites, nil
}

// SaveFavorites replaces the stored table in one transaction
func (f *FavoritesDB) SaveFavorites(ctx context.Context, favorites [navigation.FavoriteSlots]string) error {
	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM favorites"); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO favorites (slot, page_id, updated_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for slot, pageID := range favorites {
		if pageID == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, slot, pageID, now); err != nil {
			return fmt.Errorf("failed to store favorite %d: %w", slot, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit favorites: %w", err)
	}
	committed = true
	return nil
}
