// Package discord delivers block notifications to a Discord channel through
// an incoming webhook, rendered as a single rich embed.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gabapcia/blocknotify/internal/blocknotify"
	"github.com/gabapcia/blocknotify/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// DefaultTitle is the embed title used unless WithTitle is given.
	DefaultTitle = "New Block Mined!"

	// DefaultColor is the embed color (green) used unless WithColor is given.
	DefaultColor = 39232
)

type embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

type payload struct {
	Embeds []embed `json:"embeds"`
}

type webhook struct {
	httpClient *retryablehttp.Client
	url        string
	title      string
	color      int
}

var _ blocknotify.Notifier = (*webhook)(nil)

// NotifyBlock posts message as the description of one embed. A 204 is a
// success, any status of 400 or above fails with blocknotify.ErrDeliveryFailed
// and any other status is logged and accepted.
func (w *webhook) NotifyBlock(ctx context.Context, message string) error {
	body, err := json.Marshal(payload{
		Embeds: []embed{{
			Title:       w.title,
			Description: message,
			Color:       w.color,
		}},
	})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := w.httpClient.Do(req)
	if err != nil {
		logger.Error(ctx, "failed to reach discord webhook", "error", err)
		return fmt.Errorf("%w: %w", blocknotify.ErrDeliveryFailed, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNoContent:
		logger.Info(ctx, "message sent to discord")
		return nil
	case res.StatusCode >= http.StatusBadRequest:
		logger.Error(ctx, "discord rejected the message", "http.status_code", res.StatusCode)
		return fmt.Errorf("%w: status %d", blocknotify.ErrDeliveryFailed, res.StatusCode)
	default:
		logger.Warn(ctx, "unexpected response from discord", "http.status_code", res.StatusCode)
		return nil
	}
}

type config struct {
	title string
	color int
}

// Option customizes the embed.
type Option func(*config)

// WithTitle sets the embed title. Default: "New Block Mined!".
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithColor sets the embed color as a decimal RGB value. Default: 39232.
func WithColor(color int) Option {
	return func(c *config) {
		c.color = color
	}
}

// NewWebhook creates a Notifier posting to url. The caller should pass an
// HTTP client without retries since each notification is sent once.
func NewWebhook(httpClient *retryablehttp.Client, url string, opts ...Option) *webhook {
	cfg := config{
		title: DefaultTitle,
		color: DefaultColor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &webhook{
		httpClient: httpClient,
		url:        url,
		title:      cfg.title,
		color:      cfg.color,
	}
}
