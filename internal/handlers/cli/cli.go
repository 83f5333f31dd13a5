package cli

import (
	"context"
	"os"

	"github.com/gabapcia/blocknotify/internal/blocknotify"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the blocknotify CLI application.
//
// Invoked without a command, it starts the block watcher and keeps it
// running until the process receives SIGINT or SIGTERM, or ctx is done.
// Every setting comes from BLOCKNOTIFY_* environment variables, so the
// application takes no flags.
func Run(ctx context.Context, svc blocknotify.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "blocknotify",
		Description:           "Watches a block explorer and posts every newly mined block to a Discord webhook.",
		Usage:                 "blocknotify",
		Action:                watchAction(svc),
	}

	return app.Run(ctx, os.Args)
}
