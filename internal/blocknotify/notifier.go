package blocknotify

import (
	"context"
	"errors"
)

// ErrDeliveryFailed is wrapped by Notifier errors when the chat endpoint
// rejected the message.
var ErrDeliveryFailed = errors.New("notification delivery failed")

// Notifier delivers a rendered block message to a chat channel.
type Notifier interface {
	// NotifyBlock posts message once. Implementations must not retry; a failed
	// delivery is reported through an error wrapping ErrDeliveryFailed.
	NotifyBlock(ctx context.Context, message string) error
}
