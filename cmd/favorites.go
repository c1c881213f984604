package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"teletext/internal/config"
	"teletext/internal/domain"
	"teletext/internal/navigation"
)

// FavoritesCommand creates the favorites command
func FavoritesCommand() *cli.Command {
	return &cli.Command{
		Name:  "favorites",
		Usage: "Manage favorite pages",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the favorite slots",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, cfg := loadConfig(c, nil)
					return listFavorites(ctx, os.Stdout, cfg)
				},
			},
			{
				Name:      "set",
				Usage:     "Store a page in a slot",
				ArgsUsage: "<digit> <page>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 2 {
						return fmt.Errorf("usage: favorites set <digit> <page>")
					}
					_, cfg := loadConfig(c, nil)
					return setFavorite(ctx, cfg, c.Args().Get(0), c.Args().Get(1))
				},
			},
			{
				Name:      "clear",
				Usage:     "Empty a slot",
				ArgsUsage: "<digit>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("usage: favorites clear <digit>")
					}
					_, cfg := loadConfig(c, nil)
					return setFavorite(ctx, cfg, c.Args().Get(0), "")
				},
			},
		},
	}
}

// listFavorites prints one line per slot in key order, 1 to 9 then 0
func listFavorites(ctx context.Context, w io.Writer, cfg *config.Config) error {
	db, favorites := openFavorites(ctx, cfg)
	if db != nil {
		defer db.Close()
	}

	for _, digit := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0} {
		id := favorites[navigation.FavoriteSlot(digit)]
		if id == "" {
			id = "-"
		}
		if _, err := fmt.Fprintf(w, "f%d  %s\n", digit, id); err != nil {
			return err
		}
	}
	return nil
}

// setFavorite writes id into the slot for digit. An empty id clears it.
func setFavorite(ctx context.Context, cfg *config.Config, digitArg, id string) error {
	digit, err := strconv.Atoi(digitArg)
	if err != nil || digit < 0 || digit > 9 {
		return fmt.Errorf("%w: %q", navigation.ErrFavoriteSlot, digitArg)
	}
	if id != "" {
		if _, err := domain.ParsePageID(id); err != nil {
			return err
		}
	}

	db, favorites := openFavorites(ctx, cfg)
	if db == nil {
		return fmt.Errorf("failed to open favorites database %s", cfg.Storage.FavoritesDB)
	}
	defer db.Close()

	favorites[navigation.FavoriteSlot(digit)] = id
	return db.SaveFavorites(ctx, favorites)
}
