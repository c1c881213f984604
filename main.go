package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"teletext/cmd"
)

func main() {
	app := &cli.Command{
		Name:  "teletext",
		Usage: "A 40x24 teletext service in your terminal",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path (default: user config dir/teletext/config.toml)",
			},
			&cli.StringFlag{
				Name:  "page",
				Usage: "Page to open first",
			},
		},
		Action: cmd.Run,
		Commands: []*cli.Command{
			cmd.RunCommand(),
			cmd.RenderCommand(),
			cmd.FavoritesCommand(),
		},
	}

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
