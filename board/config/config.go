// ABOUTME: Board configuration loaded from REELBOARD_* environment variables.
// ABOUTME: Enforces a loopback-only bind and opens the configured storage backend.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/2389-research/reelboard/board/store"
)

var (
	// ErrNonLoopbackBind rejects listen addresses reachable from other machines.
	ErrNonLoopbackBind = errors.New("REELBOARD_BIND must be a loopback address; the board is single-user and local")

	// ErrUnknownStore rejects unsupported REELBOARD_STORE values.
	ErrUnknownStore = errors.New("REELBOARD_STORE must be file or sqlite")
)

// StoreKind selects the storage backend.
type StoreKind string

// Storage backends.
const (
	StoreFile   StoreKind = "file"
	StoreSqlite StoreKind = "sqlite"
)

// DefaultBind is the listen address when REELBOARD_BIND is unset.
const DefaultBind = "127.0.0.1:7771"

// Config holds board configuration loaded from environment variables.
type Config struct {
	Home  string    // Data directory (REELBOARD_HOME, default: $XDG_DATA_HOME/reelboard)
	Bind  string    // Listen address (REELBOARD_BIND, default: 127.0.0.1:7771)
	Store StoreKind // Storage backend (REELBOARD_STORE, default: file)
	Seed  bool      // Seed sample cards on first run (REELBOARD_SEED, default: true)
}

// ConfigFromEnv loads configuration from REELBOARD_* environment variables
// with defaults.
func ConfigFromEnv() (*Config, error) {
	home := envOrDefault("REELBOARD_HOME", "")
	if home == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		home = dir
	}

	bind := envOrDefault("REELBOARD_BIND", DefaultBind)
	if err := CheckLoopback(bind); err != nil {
		return nil, err
	}

	kind := StoreKind(strings.ToLower(envOrDefault("REELBOARD_STORE", string(StoreFile))))
	if kind != StoreFile && kind != StoreSqlite {
		return nil, fmt.Errorf("%w: got %q", ErrUnknownStore, kind)
	}

	seed := true
	switch strings.ToLower(os.Getenv("REELBOARD_SEED")) {
	case "false", "0", "no", "off":
		seed = false
	}

	return &Config{
		Home:  home,
		Bind:  bind,
		Store: kind,
		Seed:  seed,
	}, nil
}

// CheckLoopback accepts only bind addresses on a loopback IP or "localhost".
func CheckLoopback(bind string) error {
	host, _, err := net.SplitHostPort(bind)
	if err != nil {
		return fmt.Errorf("invalid bind address %q: %w", bind, err)
	}
	ip := net.ParseIP(host)
	switch {
	case ip != nil && ip.IsLoopback():
		return nil
	case ip == nil && host == "localhost":
		return nil
	default:
		// Includes the empty host, which listens on every interface.
		return fmt.Errorf("%w: %s", ErrNonLoopbackBind, bind)
	}
}

// DefaultDataDir returns $XDG_DATA_HOME/reelboard, falling back to
// ~/.local/share/reelboard.
func DefaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "reelboard"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "reelboard"), nil
}

// OpenSlot opens the configured storage backend under Home.
func (c *Config) OpenSlot() (store.Slot, error) {
	switch c.Store {
	case StoreSqlite:
		if err := os.MkdirAll(c.Home, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return store.OpenSqliteSlot(filepath.Join(c.Home, "reelboard.db"))
	case StoreFile, "":
		return store.NewFileSlot(c.Home)
	default:
		return nil, fmt.Errorf("%w: got %q", ErrUnknownStore, c.Store)
	}
}

// OpenStore opens the slot and loads the board from it.
func (c *Config) OpenStore() (*store.BoardStore, error) {
	slot, err := c.OpenSlot()
	if err != nil {
		return nil, err
	}
	s, err := store.Open(slot, store.Options{Seed: c.Seed})
	if err != nil {
		_ = slot.Close()
		return nil, err
	}
	return s, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
