// ABOUTME: CLI entrypoint for reelboard with web (default), terminal, MCP, and export modes.
// ABOUTME: Wires configuration, the persisted board store, and signal handling around each mode.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/2389-research/reelboard/board/automation"
	"github.com/2389-research/reelboard/board/config"
	"github.com/2389-research/reelboard/board/export"
	"github.com/2389-research/reelboard/board/store"
	"github.com/2389-research/reelboard/board/web"
	"github.com/2389-research/reelboard/tui"

	tea "github.com/charmbracelet/bubbletea"
)

var version = "dev"

// options holds the CLI configuration parsed from flags.
type options struct {
	tuiMode     bool
	mcpMode     bool
	exportPath  string
	format      string
	dataDir     string
	bind        string
	showVersion bool
}

func main() {
	loadDotEnv(".env")

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("reelboard %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(opts))
}

// parseFlags parses command-line flags into options.
func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("reelboard", flag.ContinueOnError)
	fs.BoolVar(&opts.tuiMode, "tui", false, "Run the terminal board")
	fs.BoolVar(&opts.mcpMode, "mcp", false, "Serve the automation tools over MCP on stdio")
	fs.StringVar(&opts.exportPath, "export", "", "Write an export to this path (- for stdout) and exit")
	fs.StringVar(&opts.format, "format", "json", "Export format: json, yaml, md")
	fs.StringVar(&opts.dataDir, "data-dir", "", "Data directory (default: $REELBOARD_HOME or $XDG_DATA_HOME/reelboard)")
	fs.StringVar(&opts.bind, "bind", "", "Web listen address, loopback only (default: $REELBOARD_BIND or 127.0.0.1:7771)")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(os.Stderr, version)
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if opts.tuiMode && opts.mcpMode {
		return options{}, errors.New("-tui and -mcp are mutually exclusive")
	}
	return opts, nil
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if opts.dataDir != "" {
		cfg.Home = opts.dataDir
	}
	if opts.bind != "" {
		if err := config.CheckLoopback(opts.bind); err != nil {
			return nil, err
		}
		cfg.Bind = opts.bind
	}
	return cfg, nil
}

// run dispatches to the selected mode. Returns an exit code: 0 for success,
// 1 for failure.
func run(opts options) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	s, err := cfg.OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer s.Close()

	switch {
	case opts.exportPath != "":
		if err := exportBoard(s, opts.exportPath, opts.format, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	case opts.mcpMode:
		return runMCP(s)
	case opts.tuiMode:
		return runTUI(s, cfg.Home)
	default:
		return runServer(s, cfg.Bind)
	}
}

// exportBoard renders the board in the given format to path, or to stdout
// when path is "-".
func exportBoard(s *store.BoardStore, path, format string, stdout io.Writer) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	data, err := export.Render(f, s.Cards())
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(os.Stderr, "exported %d cards to %s\n", len(s.Cards()), path)
	return nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()
	return ctx, cancel
}

// runServer serves the HTML board until interrupted.
func runServer(s *store.BoardStore, bind string) int {
	srv, err := web.NewServer(web.Config{Addr: bind, Store: s})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Fprintf(os.Stderr, "reelboard %s listening on http://%s\n", version, srv.Addr())
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runTUI runs the terminal board. Logging goes to a file in the data
// directory so it doesn't corrupt the screen.
func runTUI(s *store.BoardStore, dataDir string) int {
	logFile, err := tea.LogToFile(filepath.Join(dataDir, "reelboard.log"), "reelboard")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
	}

	model := tui.NewBoardModel(tui.Config{Store: s, ExportDir: dataDir})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runMCP serves the automation tools on stdin/stdout until the client
// disconnects or the process is interrupted.
func runMCP(s *store.BoardStore) int {
	ctx, cancel := signalContext()
	defer cancel()

	if err := automation.ServeStdio(ctx, automation.New(s), version); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
