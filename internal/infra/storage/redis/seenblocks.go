package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gabapcia/blocknotify/internal/blocknotify"

	"github.com/redis/go-redis/v9"
)

// seenBlocksKeyPrefix is the namespace prefix for the seen blocks hashes.
const seenBlocksKeyPrefix = "blocknotify"

// seenBlocksKey returns the key of the hash holding the seen blocks of a
// network. The format is:
//
//	"blocknotify:seen:<network>"
func seenBlocksKey(network string) string {
	return fmt.Sprintf("%s:seen:%s", seenBlocksKeyPrefix, network)
}

// seenBlocksStore keeps one network's seen blocks in a Redis hash whose
// fields are heights and whose values are mining times.
type seenBlocksStore struct {
	conn redis.UniversalClient
	key  string
}

var _ blocknotify.StateStore = (*seenBlocksStore)(nil)

// LoadSeenBlocks reads the whole hash. An absent key reports
// blocknotify.ErrNoStateFound and a field that is not an integer reports
// blocknotify.ErrCorruptState.
func (s *seenBlocksStore) LoadSeenBlocks(ctx context.Context) (blocknotify.SeenBlocks, error) {
	fields, err := s.conn.HGetAll(ctx, s.key).Result()
	if err != nil {
		return blocknotify.SeenBlocks{}, err
	}

	if len(fields) == 0 {
		return blocknotify.SeenBlocks{}, blocknotify.ErrNoStateFound
	}

	entries := make(map[int64]int64, len(fields))
	for field, value := range fields {
		height, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return blocknotify.SeenBlocks{}, fmt.Errorf("%w: height %q: %w", blocknotify.ErrCorruptState, field, err)
		}

		minedAt, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return blocknotify.SeenBlocks{}, fmt.Errorf("%w: mined at of height %d: %w", blocknotify.ErrCorruptState, height, err)
		}

		entries[height] = minedAt
	}

	return blocknotify.NewSeenBlocks(entries), nil
}

// SaveSeenBlocks replaces the hash with seen in a single MULTI/EXEC so
// pruned heights disappear together with the new one being added.
func (s *seenBlocksStore) SaveSeenBlocks(ctx context.Context, seen blocknotify.SeenBlocks) error {
	entries := seen.Entries()

	values := make([]any, 0, len(entries)*2)
	for height, minedAt := range entries {
		values = append(values, strconv.FormatInt(height, 10), minedAt)
	}

	_, err := s.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(values) > 0 {
			pipe.HSet(ctx, s.key, values...)
		}
		return nil
	})

	return err
}

// SeenBlocksStore returns the StateStore of network.
func (c *client) SeenBlocksStore(network string) *seenBlocksStore {
	return &seenBlocksStore{
		conn: c.conn,
		key:  seenBlocksKey(network),
	}
}
