// Package retry provides a configurable retry mechanism for operations that may
// fail temporarily. It wraps the retry-go package from Avast behind a small
// interface with functional options.
//
// The package uses exponential backoff. Attempts, base delay, maximum delay and
// a per-retry callback can be customized:
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithDelay(500*time.Millisecond),
//	    retry.WithOnRetry(func(n uint, err error) { ... }),
//	)
//	err := r.Execute(ctx, func() error {
//	    return store.SaveSeenBlocks(ctx, seen)
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation, retrying it on failure.
type Retry interface {
	// Execute runs operation until it returns nil, the configured number of
	// attempts is reached, or ctx is done. The operation must be safe to call
	// more than once.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is invoked after each failed attempt that will be retried. n is
// the zero-based index of the failed attempt.
type OnRetryFunc func(n uint, err error)

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts
	delay       time.Duration // base delay between attempts
	maxDelay    time.Duration // cap for the exponential delay
	lastErrOnly bool          // whether to return only the last error
	onRetry     OnRetryFunc   // optional callback between attempts
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements Retry using retry-go.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates a Retry configured with the given options.
//
// Defaults:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry. The first attempt runs immediately; later ones
// wait with exponential backoff capped at maxDelay.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, including the first one.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts. Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential delay between attempts. Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether only the final error is returned (true)
// or all attempt errors are combined (false). Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a callback invoked after every failed attempt that
// will be retried.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
