// Package blocknotify watches a block explorer for newly mined blocks and
// announces each new block exactly once through a chat notifier, keeping the
// set of announced heights in a StateStore across restarts.
package blocknotify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/blocknotify/internal/pkg/resilience/retry"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	defaultPollInterval = 60 * time.Second
	defaultRetention    = 1440
)

// Service runs the polling loop.
type Service interface {
	// Start restores the persisted state and launches the polling loop in the
	// background. The first poll happens immediately.
	//
	// Returns ErrServiceAlreadyStarted if the service is already running, or
	// the state store error if the state could not be read.
	Start(ctx context.Context) error

	// Close stops the polling loop and waits for the in-flight cycle to
	// return. It is safe to call Close even if the service was never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	explorer   Explorer
	notifier   Notifier
	stateStore StateStore
	retry      retry.Retry

	pollInterval    time.Duration
	retention       int
	showBlocksMined bool

	// seen is only touched by the polling goroutine once Start returns.
	seen SeenBlocks

	instruments instruments
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if err := s.loadState(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go s.run(ctx, done)

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// run polls, then sleeps for the poll interval regardless of the outcome,
// until ctx is canceled. Cycles never overlap.
func (s *service) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		s.pollOnce(ctx)
		timer.Reset(s.pollInterval)
	}
}

type config struct {
	stateStore      StateStore
	retry           retry.Retry
	pollInterval    time.Duration
	retention       int
	showBlocksMined bool
}

// Option configures the service.
type Option func(*config)

// New creates the service. Without options it polls every 60 seconds, keeps
// state in memory only, keeps the latest 1440 heights and includes the
// blocks-mined line in messages.
func New(explorer Explorer, notifier Notifier, opts ...Option) *service {
	cfg := config{
		stateStore:      nopStateStore{},
		retry:           nil,
		pollInterval:    defaultPollInterval,
		retention:       defaultRetention,
		showBlocksMined: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		explorer:        explorer,
		notifier:        notifier,
		stateStore:      cfg.stateStore,
		retry:           cfg.retry,
		pollInterval:    cfg.pollInterval,
		retention:       cfg.retention,
		showBlocksMined: cfg.showBlocksMined,
		instruments:     newInstruments(),
	}
}

// WithStateStore sets where seen blocks are persisted.
func WithStateStore(ss StateStore) Option {
	return func(c *config) {
		c.stateStore = ss
	}
}

// WithRetry retries state persistence with r.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithPollInterval sets the sleep between two polls.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithRetention sets how many heights are kept. Zero keeps all of them.
func WithRetention(n int) Option {
	return func(c *config) {
		c.retention = n
	}
}

// WithBlocksMined toggles the "Blocks Mined (window)" line.
func WithBlocksMined(show bool) Option {
	return func(c *config) {
		c.showBlocksMined = show
	}
}
