package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"teletext/internal/domain"
	"teletext/internal/eventbus"
	"teletext/internal/navigation"
	"teletext/internal/storage"
	"teletext/internal/ui"
)

// RunCommand creates the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Start the teletext terminal (default)",
		Action: Run,
	}
}

// Run starts the terminal program
func Run(ctx context.Context, c *cli.Command) error {
	bus := eventbus.New()
	defer bus.Close()

	configSvc, cfg := loadConfig(c, bus)
	closeLog := setupLogging(cfg.LogFile)
	defer closeLog()

	if page := c.String("page"); page != "" {
		if _, err := domain.ParsePageID(page); err != nil {
			return err
		}
		cfg.InitialPage = page
	}

	fetcher, store, err := newFetcher(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		store.SetLatency(cfg.Fetch.Latency.Duration)
	}

	db, favorites := openFavorites(ctx, cfg)
	if db != nil {
		// The bus goes first so no save runs against a closed handle
		defer func() {
			bus.Close()
			db.Close()
		}()
		bus.Subscribe(eventbus.EventFavoritesChanged, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.FavoritesChangedEvent); ok {
				saveFavorites(ctx, db, event.Favorites)
			}
		})
	}

	log.Printf("run: creating UI model...")
	model := ui.NewModel(ui.Options{
		Config:        cfg,
		ConfigService: configSvc,
		Fetcher:       fetcher,
		Bus:           bus,
		Favorites:     favorites,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward events the UI shows to the user
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventNavigationRejected, forward)
	bus.Subscribe(eventbus.EventFavoritesChanged, forward)

	bus.Subscribe(eventbus.EventAppReady, func(eventbus.DomainEvent) {
		log.Printf("run: session %s ready", model.Navigation().SessionID())
		if os.Getenv("TELETEXT_E2E_TEST") == "1" {
			fmt.Fprintln(os.Stderr, "__READY__")
		}
	})

	log.Printf("run: starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("run: error running program: %v", err)
		return fmt.Errorf("failed to run program: %w", err)
	}
	log.Printf("run: UI exited normally")

	if db != nil {
		saveFavorites(context.Background(), db, model.Navigation().Favorites())
	}
	return nil
}

func saveFavorites(ctx context.Context, db *storage.FavoritesDB, favorites [navigation.FavoriteSlots]string) {
	if err := db.SaveFavorites(ctx, favorites); err != nil {
		log.Printf("storage: failed to save favorites: %v", err)
	}
}
