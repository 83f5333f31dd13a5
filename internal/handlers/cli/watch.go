package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/blocknotify/internal/blocknotify"
	"github.com/gabapcia/blocknotify/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// watchAction starts the watcher and blocks until an interrupt (SIGINT or
// SIGTERM) arrives or ctx is done, then stops it.
func watchAction(svc blocknotify.Service) cli.ActionFunc {
	return func(ctx context.Context, _ *cli.Command) error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		if err := svc.Start(ctx); err != nil {
			return err
		}
		defer svc.Close()

		logger.Info(ctx, "block watcher started")

		select {
		case sig := <-quit:
			logger.Info(ctx, "shutdown signal received", "signal", sig.String())
		case <-ctx.Done():
		}

		return nil
	}
}
