package blocknotify

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/gabapcia/blocknotify/internal/pkg/logger"
)

var (
	// ErrNoStateFound is returned by LoadSeenBlocks when nothing has been
	// persisted yet.
	ErrNoStateFound = errors.New("no seen blocks state found")

	// ErrCorruptState is returned by LoadSeenBlocks when persisted state exists
	// but cannot be decoded. The service treats it like ErrNoStateFound.
	ErrCorruptState = errors.New("seen blocks state is corrupt")
)

// SeenBlocks maps every announced block height to the unix time it was mined.
// The zero value is an empty set ready to use.
type SeenBlocks struct {
	minedAt map[int64]int64
}

// NewSeenBlocks builds a SeenBlocks holding a copy of entries
// (height -> minedAt).
func NewSeenBlocks(entries map[int64]int64) SeenBlocks {
	s := SeenBlocks{minedAt: make(map[int64]int64, len(entries))}
	maps.Copy(s.minedAt, entries)
	return s
}

// IsNew reports whether height has not been announced yet.
func (s SeenBlocks) IsNew(height int64) bool {
	_, seen := s.minedAt[height]
	return !seen
}

// Len returns the number of recorded heights.
func (s SeenBlocks) Len() int {
	return len(s.minedAt)
}

// MinedAt returns the recorded mining time for height.
func (s SeenBlocks) MinedAt(height int64) (int64, bool) {
	t, ok := s.minedAt[height]
	return t, ok
}

// Heights returns the recorded heights in ascending order.
func (s SeenBlocks) Heights() []int64 {
	return slices.Sorted(maps.Keys(s.minedAt))
}

// Earliest returns the lowest recorded height.
func (s SeenBlocks) Earliest() (int64, bool) {
	if len(s.minedAt) == 0 {
		return 0, false
	}
	return slices.Min(slices.Collect(maps.Keys(s.minedAt))), true
}

// Latest returns the highest recorded height.
func (s SeenBlocks) Latest() (int64, bool) {
	if len(s.minedAt) == 0 {
		return 0, false
	}
	return slices.Max(slices.Collect(maps.Keys(s.minedAt))), true
}

// BlocksInWindow returns how many blocks were mined between the earliest
// retained height and current. It counts since the oldest retained entry, not
// since a calendar boundary, and is zero when nothing is recorded or current
// is below the retained range.
func (s SeenBlocks) BlocksInWindow(current int64) int64 {
	earliest, ok := s.Earliest()
	if !ok || current < earliest {
		return 0
	}
	return current - earliest
}

// Entries returns a copy of the height -> minedAt mapping.
func (s SeenBlocks) Entries() map[int64]int64 {
	return maps.Clone(s.minedAt)
}

// Record marks height as announced, mined at minedAt.
func (s *SeenBlocks) Record(height, minedAt int64) {
	if s.minedAt == nil {
		s.minedAt = make(map[int64]int64)
	}
	s.minedAt[height] = minedAt
}

// Prune keeps at most limit heights and returns how many entries were
// dropped. keep is never dropped, so a just announced height below the
// retained range stays deduplicated; the other slots go to the highest
// heights. A limit of zero or less keeps everything.
func (s *SeenBlocks) Prune(limit int, keep int64) int {
	if limit <= 0 || len(s.minedAt) <= limit {
		return 0
	}

	others := slices.DeleteFunc(s.Heights(), func(h int64) bool { return h == keep })

	retain := limit
	if _, ok := s.minedAt[keep]; ok {
		retain--
	}

	drop := others[:len(others)-retain]
	for _, h := range drop {
		delete(s.minedAt, h)
	}

	return len(drop)
}

// StateStore persists SeenBlocks across restarts.
type StateStore interface {
	// LoadSeenBlocks returns the persisted state. It returns ErrNoStateFound
	// when nothing was saved yet and ErrCorruptState when the saved data
	// cannot be decoded.
	LoadSeenBlocks(ctx context.Context) (SeenBlocks, error)

	// SaveSeenBlocks replaces the persisted state with seen.
	SaveSeenBlocks(ctx context.Context, seen SeenBlocks) error
}

// loadState restores the seen blocks from the state store. Missing or corrupt
// state yields an empty set so that the current block is announced again;
// any other error is returned.
func (s *service) loadState(ctx context.Context) error {
	seen, err := s.stateStore.LoadSeenBlocks(ctx)
	switch {
	case err == nil:
		s.seen = seen
		latest, _ := seen.Latest()
		logger.Info(ctx, "restored seen blocks",
			"state.size", seen.Len(),
			"state.latest_height", latest,
		)
	case errors.Is(err, ErrNoStateFound):
		s.seen = SeenBlocks{}
		logger.Info(ctx, "no persisted state found, starting fresh")
	case errors.Is(err, ErrCorruptState):
		s.seen = SeenBlocks{}
		logger.Warn(ctx, "persisted state is corrupt, starting fresh", "error", err)
	default:
		return err
	}

	return nil
}

// persistState writes the current seen blocks through the state store,
// retrying when a retry policy is configured. Failures are logged and the
// in-memory state is kept, so deduplication still holds until a restart.
func (s *service) persistState(ctx context.Context) {
	save := func() error {
		return s.stateStore.SaveSeenBlocks(ctx, s.seen)
	}

	var err error
	if s.retry != nil {
		err = s.retry.Execute(ctx, save)
	} else {
		err = save()
	}

	if err != nil {
		logger.Error(ctx, "failed to persist seen blocks",
			"state.size", s.seen.Len(),
			"error", err,
		)
	}
}

// nopStateStore keeps nothing. Loading always reports ErrNoStateFound.
type nopStateStore struct{}

func (nopStateStore) LoadSeenBlocks(_ context.Context) (SeenBlocks, error) {
	return SeenBlocks{}, ErrNoStateFound
}

func (nopStateStore) SaveSeenBlocks(_ context.Context, _ SeenBlocks) error {
	return nil
}
