// ABOUTME: Slot is a named byte blob in local storage holding the serialized board.
// ABOUTME: FileSlot keeps one file per key with atomic replace; SqliteSlot keeps a row per key.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataKey is the storage key under which the card collection lives.
const DataKey = "reelboard-data"

// ErrSlotEmpty is returned by Load when nothing was ever saved under a key.
var ErrSlotEmpty = errors.New("slot is empty")

// Slot reads and writes whole values by key.
type Slot interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Close() error
}

// FileSlot stores each key as <dir>/<key>.json.
type FileSlot struct {
	dir string
}

var _ Slot = (*FileSlot)(nil)

// NewFileSlot creates a FileSlot rooted at dir, creating the directory if needed.
func NewFileSlot(dir string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create slot dir: %w", err)
	}
	return &FileSlot{dir: dir}, nil
}

func (s *FileSlot) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid slot key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Load returns the bytes stored under key.
func (s *FileSlot) Load(key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return data, nil
}

// Save replaces the value under key atomically: write to a temp file, fsync,
// rename over the target, then fsync the directory so the rename is durable.
func (s *FileSlot) Save(key string, data []byte) error {
	finalPath, err := s.path(key)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write slot data: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("fsync slot: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp slot: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename slot: %w", err)
	}

	if d, err := os.Open(s.dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}

// Close is a no-op for files.
func (s *FileSlot) Close() error {
	return nil
}
