package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"teletext/internal/config"
	"teletext/internal/domain"
	"teletext/internal/fetch"
	"teletext/internal/ui"
)

// RenderCommand creates the render command
func RenderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Print a composed page",
		ArgsUsage: "[page]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "chain",
				Usage: "Print every page of the article the page belongs to",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				id = domain.IndexPageID
			}
			_, cfg := loadConfig(c, nil)
			return renderPages(ctx, os.Stdout, cfg, id, c.Bool("chain"))
		},
	}
}

// renderPages writes the composed page id, or its whole article, to w
func renderPages(ctx context.Context, w io.Writer, cfg *config.Config, id string, chain bool) error {
	if _, err := domain.ParsePageID(id); err != nil {
		return err
	}

	fetcher, _, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	if cfg.Fetch.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Fetch.Timeout.Duration)
		defer cancel()
	}
	sessionID := uuid.NewString()

	page, err := fetcher.FetchPage(ctx, id, sessionID)
	if err != nil {
		return fmt.Errorf("failed to fetch page %s: %w", id, err)
	}
	if page == nil {
		return fmt.Errorf("page %s not found", id)
	}

	pages := []domain.Page{*page}
	if chain {
		pages, err = fetch.LoadChain(ctx, fetcher, *page, sessionID)
		if err != nil {
			return err
		}
	}

	layout, opts := ui.NewLayout(cfg)
	for i := range pages {
		pages[i] = layout.Process(pages[i], opts)
	}

	_, err = io.WriteString(w, ui.RenderChain(pages))
	return err
}
