package blocknotify

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTransientFetch is wrapped by explorer errors caused by network
	// failures, timeouts or non-200 responses. The next poll may succeed.
	ErrTransientFetch = errors.New("transient fetch failure")

	// ErrMalformedResponse is wrapped by explorer errors caused by a body that
	// could not be decoded into the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// MalformedResponseError reports an explorer response that could not be
// decoded. It keeps the raw body so the failure can be diagnosed from logs.
type MalformedResponseError struct {
	Endpoint string // Logical endpoint name (e.g., "summary", "blockinfo")
	Body     string // Raw response body
	Err      error  // Underlying decode error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s from %s endpoint: %v", ErrMalformedResponse, e.Endpoint, e.Err)
}

// Unwrap exposes both ErrMalformedResponse and the decode error to errors.Is.
func (e *MalformedResponseError) Unwrap() []error {
	return []error{ErrMalformedResponse, e.Err}
}

// Explorer reads chain data from a block explorer.
type Explorer interface {
	// FetchSummary returns the current block count and difficulty.
	FetchSummary(ctx context.Context) (ChainSummary, error)

	// FetchBlockHash returns the hash of the block at the given height.
	FetchBlockHash(ctx context.Context, height int64) (string, error)

	// FetchBlockInfo returns the metadata of the block with the given hash.
	FetchBlockInfo(ctx context.Context, hash string) (BlockInfo, error)
}

// lookupBlock resolves the hash and mining time of the block at height. The
// two calls are sequential because the second needs the first's result.
func (s *service) lookupBlock(ctx context.Context, height int64) (BlockRecord, error) {
	hash, err := s.explorer.FetchBlockHash(ctx, height)
	if err != nil {
		return BlockRecord{}, fmt.Errorf("fetch block hash: %w", err)
	}

	info, err := s.explorer.FetchBlockInfo(ctx, hash)
	if err != nil {
		return BlockRecord{}, fmt.Errorf("fetch block info: %w", err)
	}

	return BlockRecord{
		Height:  height,
		Hash:    hash,
		MinedAt: info.Time,
	}, nil
}
