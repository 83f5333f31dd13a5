package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/blocknotify/internal/blocknotify"
	"github.com/gabapcia/blocknotify/internal/config"
	"github.com/gabapcia/blocknotify/internal/handlers/cli"
	"github.com/gabapcia/blocknotify/internal/infra/explorer/iquidus"
	"github.com/gabapcia/blocknotify/internal/infra/notifier/discord"
	"github.com/gabapcia/blocknotify/internal/infra/storage/file"
	"github.com/gabapcia/blocknotify/internal/infra/storage/redis"
	"github.com/gabapcia/blocknotify/internal/pkg/logger"
	"github.com/gabapcia/blocknotify/internal/pkg/resilience/retry"
	"github.com/gabapcia/blocknotify/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/blocknotify/internal/pkg/transport/http"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "blocknotify:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				fmt.Fprintln(os.Stderr, "blocknotify: telemetry shutdown:", err)
			}
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx = logger.Derive(ctx, "network", cfg.Network)

	stateStore, closeStateStore, err := newStateStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStateStore()

	explorer := iquidus.NewClient(
		transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.HTTPTimeout),
			transporthttp.WithRetryMax(cfg.HTTPRetryMax),
		),
		cfg.SummaryURL,
		cfg.BlockHashURL,
		cfg.BlockInfoURL,
	)

	notifier := discord.NewWebhook(
		transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.HTTPTimeout),
			transporthttp.WithRetryMax(0),
		),
		cfg.WebhookURL,
		discord.WithTitle(cfg.EmbedTitle),
		discord.WithColor(cfg.EmbedColor),
	)

	persistRetry := retry.New(
		retry.WithAttempts(cfg.PersistAttempts),
		retry.WithOnRetry(func(n uint, err error) {
			logger.Warn(ctx, "state persistence attempt failed", "attempt", n+1, "error", err)
		}),
	)

	svc := blocknotify.New(explorer, notifier,
		blocknotify.WithStateStore(stateStore),
		blocknotify.WithRetry(persistRetry),
		blocknotify.WithPollInterval(cfg.PollInterval),
		blocknotify.WithRetention(cfg.StateRetention),
		blocknotify.WithBlocksMined(cfg.ShowBlocksMined),
	)

	logger.Info(ctx, "starting blocknotify",
		"state.backend", cfg.StateBackend,
		"poll.interval", cfg.PollInterval.String(),
		"state.retention", cfg.StateRetention,
	)

	return cli.Run(ctx, svc)
}

// newStateStore builds the configured StateStore and the function releasing
// its resources.
func newStateStore(ctx context.Context, cfg config.Config) (blocknotify.StateStore, func(), error) {
	switch cfg.StateBackend {
	case config.StateBackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}

		return client.SeenBlocksStore(cfg.Network), func() {
			if err := client.Close(); err != nil {
				logger.Warn(ctx, "failed to close redis client", "error", err)
			}
		}, nil
	default:
		return file.NewStore(cfg.StateFile), func() {}, nil
	}
}
