// Package config loads the blocknotify settings from BLOCKNOTIFY_* environment
// variables and validates them before anything is wired.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/blocknotify/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "BLOCKNOTIFY"

// Accepted values of BLOCKNOTIFY_STATE_BACKEND.
const (
	// StateBackendFile keeps seen blocks in the JSON file at StateFile.
	StateBackendFile = "file"

	// StateBackendRedis keeps seen blocks in a Redis hash at RedisAddr.
	StateBackendRedis = "redis"
)

// Config holds every runtime setting. Each field is read from
// BLOCKNOTIFY_<envconfig tag>.
type Config struct {
	// Explorer and webhook endpoints
	WebhookURL   string `envconfig:"WEBHOOK_URL" required:"true" validate:"required,url"`
	SummaryURL   string `envconfig:"SUMMARY_URL" default:"https://pepeexplorer.com/ext/getsummary" validate:"required,url"`
	BlockHashURL string `envconfig:"BLOCK_HASH_URL" default:"https://pepeexplorer.com/api/getblockhash" validate:"required,url"`
	BlockInfoURL string `envconfig:"BLOCK_INFO_URL" default:"https://pepeexplorer.com/api/getblock" validate:"required,url"`

	// Polling and HTTP
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"60s" validate:"min=1s"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"min=1s"`
	HTTPRetryMax int           `envconfig:"HTTP_RETRY_MAX" default:"2" validate:"min=0,max=10"`

	// State
	StateBackend    string `envconfig:"STATE_BACKEND" default:"file" validate:"oneof=file redis"`
	StateFile       string `envconfig:"STATE_FILE" default:"mined_blocks.json" validate:"required_if=StateBackend file"`
	StateRetention  int    `envconfig:"STATE_RETENTION" default:"1440" validate:"min=0"`
	PersistAttempts uint   `envconfig:"PERSIST_ATTEMPTS" default:"3" validate:"min=1"`
	Network         string `envconfig:"NETWORK" default:"pepecoin" validate:"required"`

	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"required_if=StateBackend redis"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"min=0"`

	// Message
	ShowBlocksMined bool   `envconfig:"SHOW_BLOCKS_MINED" default:"true"`
	EmbedTitle      string `envconfig:"EMBED_TITLE" default:"New Block Mined!" validate:"required"`
	EmbedColor      int    `envconfig:"EMBED_COLOR" default:"39232" validate:"min=0,max=16777215"`

	// Observability
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"blocknotify" validate:"required"`
}

// Load reads the configuration from the environment, applying defaults, and
// validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
