package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"teletext/internal/catalog"
	"teletext/internal/config"
	"teletext/internal/eventbus"
	"teletext/internal/fetch"
	"teletext/internal/logging"
	"teletext/internal/navigation"
	"teletext/internal/storage"
)

// loadConfig loads the file named by --config. Errors fall back to the
// defaults so the service always starts.
func loadConfig(c *cli.Command, bus eventbus.EventBus) (config.ConfigService, *config.Config) {
	svc := config.NewConfigServiceWithBus(c.String("config"), bus)
	cfg, err := svc.Load()
	if err != nil {
		log.Printf("config: failed to load %s: %v, using defaults", svc.Path(), err)
		cfg = config.DefaultConfig()
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	logging.DebugEnabled = cfg.Debug
	return svc, cfg
}

// setupLogging sends the standard logger to path. The returned func closes it.
func setupLogging(path string) func() {
	if path == "" {
		return func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(os.Stderr)
		logFile.Close()
	}
}

// newFetcher returns the page source selected by the config. The memory
// store is also returned when the built-in catalog is used.
func newFetcher(cfg *config.Config) (fetch.Fetcher, *fetch.MemoryStore, error) {
	if cfg.Fetch.BaseURL != "" {
		log.Printf("fetch: using page server %s", cfg.Fetch.BaseURL)
		return fetch.NewHTTPFetcher(cfg.Fetch.BaseURL, cfg.Fetch.Timeout.Duration), nil, nil
	}

	store, err := catalog.NewStore(time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	return store, store, nil
}

// openFavorites opens the favorites database and reads the table. An empty
// database is seeded from the config. The database is nil when it can't be
// opened; the seed is returned either way.
func openFavorites(ctx context.Context, cfg *config.Config) (*storage.FavoritesDB, [navigation.FavoriteSlots]string) {
	favorites := cfg.FavoritesTable()

	db, err := storage.OpenFavorites(cfg.Storage.FavoritesDB)
	if err != nil {
		log.Printf("storage: %v", err)
		return nil, favorites
	}

	stored, err := db.LoadFavorites(ctx)
	if err != nil {
		log.Printf("storage: %v", err)
		return db, favorites
	}
	if stored != ([navigation.FavoriteSlots]string{}) {
		favorites = stored
	}
	return db, favorites
}
