// ABOUTME: Tests for the reelboard CLI entrypoint covering flag parsing, config overrides,
// ABOUTME: and the export mode against a real store.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/2389-research/reelboard/board/config"
	"github.com/2389-research/reelboard/board/store"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.tuiMode || opts.mcpMode || opts.showVersion {
		t.Errorf("modes should default off: %+v", opts)
	}
	if opts.format != "json" {
		t.Errorf("format = %q, want json", opts.format)
	}
	if opts.exportPath != "" || opts.dataDir != "" || opts.bind != "" {
		t.Errorf("paths should default empty: %+v", opts)
	}
}

func TestParseFlagsModes(t *testing.T) {
	opts, err := parseFlags([]string{"-export", "-", "-format", "md", "-data-dir", "/tmp/rb"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.exportPath != "-" || opts.format != "md" || opts.dataDir != "/tmp/rb" {
		t.Errorf("opts = %+v", opts)
	}

	opts, err = parseFlags([]string{"-tui"})
	if err != nil || !opts.tuiMode {
		t.Errorf("-tui: opts=%+v err=%v", opts, err)
	}
}

func TestParseFlagsRejects(t *testing.T) {
	for _, args := range [][]string{
		{"-tui", "-mcp"},
		{"stray"},
		{"-no-such-flag"},
	} {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%v) should fail", args)
		}
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REELBOARD_HOME", "REELBOARD_BIND", "REELBOARD_STORE", "REELBOARD_SEED"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("REELBOARD_HOME", "/from/env")

	dir := t.TempDir()
	cfg, err := loadConfig(options{dataDir: dir, bind: "localhost:9000"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Home != dir || cfg.Bind != "localhost:9000" {
		t.Errorf("cfg = %+v", cfg)
	}

	_, err = loadConfig(options{bind: "0.0.0.0:7771"})
	if !errors.Is(err, config.ErrNonLoopbackBind) {
		t.Errorf("err = %v, want ErrNonLoopbackBind", err)
	}
}

func openSeeded(t *testing.T) *store.BoardStore {
	t.Helper()
	slot, err := store.NewFileSlot(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileSlot: %v", err)
	}
	s, err := store.Open(slot, store.Options{Seed: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestExportBoardStdout(t *testing.T) {
	s := openSeeded(t)
	var buf bytes.Buffer
	if err := exportBoard(s, "-", "json", &buf); err != nil {
		t.Fatalf("exportBoard: %v", err)
	}
	var cards []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &cards); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if len(cards) != 5 {
		t.Errorf("exported %d cards, want 5", len(cards))
	}
}

func TestExportBoardFile(t *testing.T) {
	s := openSeeded(t)
	path := filepath.Join(t.TempDir(), "board.md")
	if err := exportBoard(s, path, "md", nil); err != nil {
		t.Fatalf("exportBoard: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Content Board") {
		t.Errorf("markdown export = %q", data[:min(len(data), 40)])
	}
}

func TestExportBoardUnknownFormat(t *testing.T) {
	s := openSeeded(t)
	if err := exportBoard(s, "-", "xml", &bytes.Buffer{}); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestRunExportMode(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out.yaml")

	if code := run(options{dataDir: dir, exportPath: out, format: "yaml"}); code != 0 {
		t.Fatalf("run exit code = %d", code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Script Ideas") {
		t.Errorf("yaml export missing stage label:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, store.DataKey+".json")); err != nil {
		t.Errorf("first run should persist the seeded board: %v", err)
	}
}

func TestRunBadConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("REELBOARD_STORE", "redis")
	if code := run(options{dataDir: t.TempDir(), exportPath: "-"}); code != 1 {
		t.Errorf("run exit code = %d, want 1", code)
	}
}
