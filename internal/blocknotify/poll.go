package blocknotify

import (
	"context"
	"errors"

	"github.com/gabapcia/blocknotify/internal/pkg/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// pollOutcome is how a single poll cycle ended.
type pollOutcome string

const (
	pollFetchFailed    pollOutcome = "fetch_failed"    // summary unavailable, nothing changed
	pollUnchanged      pollOutcome = "unchanged"       // tip already announced
	pollLookupFailed   pollOutcome = "lookup_failed"   // hash or info lookup failed, retried next poll
	pollDeliveryFailed pollOutcome = "delivery_failed" // announced but the webhook rejected it
	pollNotified       pollOutcome = "notified"        // announced and recorded
)

// pollOnce runs one fetch-detect-notify-persist cycle. It never returns an
// error: every failure is logged and the outcome is reported for metrics.
func (s *service) pollOnce(ctx context.Context) pollOutcome {
	ctx, span := s.instruments.tracer.Start(ctx, "blocknotify.poll")
	defer span.End()

	ctx = logger.Derive(ctx, "poll.id", uuid.Must(uuid.NewV7()).String())

	outcome := s.poll(ctx)

	span.SetAttributes(attribute.String("poll.outcome", string(outcome)))
	if outcome == pollFetchFailed || outcome == pollLookupFailed {
		span.SetStatus(codes.Error, string(outcome))
	}
	s.instruments.recordPoll(ctx, outcome)

	return outcome
}

func (s *service) poll(ctx context.Context) pollOutcome {
	summary, err := s.explorer.FetchSummary(ctx)
	if err != nil {
		logFetchError(ctx, "failed to fetch chain summary", err)
		return pollFetchFailed
	}

	ctx = logger.Derive(ctx, "block.height", summary.BlockCount)

	if !s.seen.IsNew(summary.BlockCount) {
		logger.Debug(ctx, "block already processed, skipping")
		return pollUnchanged
	}

	block, err := s.lookupBlock(ctx, summary.BlockCount)
	if err != nil {
		logFetchError(ctx, "failed to look up new block", err)
		return pollLookupFailed
	}

	logger.Info(ctx, "new block detected",
		"block.hash", block.Hash,
		"block.mined_at", block.MinedAt,
		"block.difficulty", summary.Difficulty.String(),
	)

	notification := Notification{
		Height:     block.Height,
		Difficulty: summary.Difficulty,
		MinedAt:    block.MinedAt,
	}
	if s.showBlocksMined {
		mined := s.seen.BlocksInWindow(block.Height)
		notification.BlocksInWindow = &mined
	}

	outcome := pollNotified
	if err := s.notifier.NotifyBlock(ctx, FormatMessage(notification)); err != nil {
		logger.Error(ctx, "failed to deliver block notification", "error", err)
		outcome = pollDeliveryFailed
	}
	s.instruments.recordNotification(ctx, outcome == pollNotified)

	// Delivery is best effort; the block is recorded even if it failed.
	s.seen.Record(block.Height, block.MinedAt)
	if dropped := s.seen.Prune(s.retention, block.Height); dropped > 0 {
		logger.Debug(ctx, "pruned seen blocks", "state.dropped", dropped)
	}
	s.persistState(ctx)
	s.instruments.recordHeight(ctx, block.Height)

	return outcome
}

// logFetchError logs an explorer failure, including the raw body when the
// response could not be decoded.
func logFetchError(ctx context.Context, msg string, err error) {
	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		logger.Error(ctx, msg,
			"error", err,
			"response.endpoint", malformed.Endpoint,
			"response.body", malformed.Body,
		)
		return
	}

	logger.Error(ctx, msg, "error", err)
}
