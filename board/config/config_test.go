// ABOUTME: Tests for environment-based configuration: defaults, loopback enforcement, and backend selection.
package config_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/2389-research/reelboard/board/config"
	"github.com/2389-research/reelboard/board/core"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REELBOARD_HOME", "REELBOARD_BIND", "REELBOARD_STORE", "REELBOARD_SEED"} {
		t.Setenv(k, "")
	}
}

func TestConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	cfg, err := config.ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Home != filepath.Join("/tmp/xdg", "reelboard") {
		t.Errorf("Home = %q", cfg.Home)
	}
	if cfg.Bind != config.DefaultBind {
		t.Errorf("Bind = %q", cfg.Bind)
	}
	if cfg.Store != config.StoreFile {
		t.Errorf("Store = %q", cfg.Store)
	}
	if !cfg.Seed {
		t.Error("Seed should default to true")
	}
}

func TestConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("REELBOARD_HOME", "/data/board")
	t.Setenv("REELBOARD_BIND", "localhost:9000")
	t.Setenv("REELBOARD_STORE", "SQLite")
	t.Setenv("REELBOARD_SEED", "false")

	cfg, err := config.ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Home != "/data/board" || cfg.Bind != "localhost:9000" || cfg.Store != config.StoreSqlite || cfg.Seed {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfigRejectsNonLoopbackBind(t *testing.T) {
	for _, bind := range []string{"0.0.0.0:7771", "192.168.1.5:80", "example.com:80", ":7771"} {
		t.Run(bind, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("REELBOARD_HOME", t.TempDir())
			t.Setenv("REELBOARD_BIND", bind)
			if _, err := config.ConfigFromEnv(); !errors.Is(err, config.ErrNonLoopbackBind) {
				t.Errorf("err = %v, want ErrNonLoopbackBind", err)
			}
		})
	}
}

func TestConfigAcceptsLoopbackBinds(t *testing.T) {
	for _, bind := range []string{"127.0.0.1:1", "127.0.0.2:8080", "[::1]:7771", "localhost:7771"} {
		clearEnv(t)
		t.Setenv("REELBOARD_HOME", t.TempDir())
		t.Setenv("REELBOARD_BIND", bind)
		if _, err := config.ConfigFromEnv(); err != nil {
			t.Errorf("bind %s: %v", bind, err)
		}
	}
}

func TestConfigRejectsUnknownStore(t *testing.T) {
	clearEnv(t)
	t.Setenv("REELBOARD_HOME", t.TempDir())
	t.Setenv("REELBOARD_STORE", "postgres")
	if _, err := config.ConfigFromEnv(); !errors.Is(err, config.ErrUnknownStore) {
		t.Errorf("err = %v, want ErrUnknownStore", err)
	}
}

func TestOpenStoreBackends(t *testing.T) {
	for _, kind := range []config.StoreKind{config.StoreFile, config.StoreSqlite} {
		t.Run(string(kind), func(t *testing.T) {
			cfg := &config.Config{Home: filepath.Join(t.TempDir(), "nested"), Store: kind, Seed: true}

			s, err := cfg.OpenStore()
			if err != nil {
				t.Fatalf("OpenStore: %v", err)
			}
			if n := len(s.Cards()); n != 5 {
				t.Errorf("seeded cards = %d, want 5", n)
			}
			if _, err := s.Create(core.CardFields{Title: core.Ptr("persisted")}); err != nil {
				t.Fatalf("Create: %v", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			again, err := cfg.OpenStore()
			if err != nil {
				t.Fatalf("OpenStore: %v", err)
			}
			defer func() { _ = again.Close() }()
			if n := len(again.Cards()); n != 6 {
				t.Errorf("reloaded cards = %d, want 6", n)
			}
		})
	}
}

func TestDefaultDataDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/tester")

	dir, err := config.DefaultDataDir()
	if err != nil {
		t.Fatalf("DefaultDataDir: %v", err)
	}
	if dir != filepath.Join("/home/tester", ".local", "share", "reelboard") {
		t.Errorf("dir = %q", dir)
	}
}
