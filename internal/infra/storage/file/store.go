// Package file persists seen blocks as a JSON object on the local disk,
// mapping each height (as a decimal string key) to its mining time.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabapcia/blocknotify/internal/blocknotify"
)

const fileMode = 0o644

type store struct {
	path string
}

var _ blocknotify.StateStore = (*store)(nil)

// LoadSeenBlocks reads the state file. A missing file reports
// blocknotify.ErrNoStateFound and undecodable content reports
// blocknotify.ErrCorruptState.
func (s *store) LoadSeenBlocks(_ context.Context) (blocknotify.SeenBlocks, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return blocknotify.SeenBlocks{}, blocknotify.ErrNoStateFound
	}
	if err != nil {
		return blocknotify.SeenBlocks{}, fmt.Errorf("read state file: %w", err)
	}

	var entries map[int64]int64
	if err := json.Unmarshal(data, &entries); err != nil {
		return blocknotify.SeenBlocks{}, fmt.Errorf("%w: %s: %w", blocknotify.ErrCorruptState, s.path, err)
	}

	return blocknotify.NewSeenBlocks(entries), nil
}

// SaveSeenBlocks replaces the state file. The content is written to a
// temporary file in the same directory and renamed over the target, so a
// crash never leaves a half written file behind.
func (s *store) SaveSeenBlocks(_ context.Context, seen blocknotify.SeenBlocks) error {
	entries := seen.Entries()
	if entries == nil {
		entries = map[int64]int64{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp state file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), fileMode); err != nil {
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	return nil
}

// NewStore creates a StateStore backed by the file at path. The file is
// created on the first save.
func NewStore(path string) *store {
	return &store{path: path}
}
