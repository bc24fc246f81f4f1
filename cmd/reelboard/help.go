// ABOUTME: Help display for the reelboard CLI with modes, grouped flags, examples, and environment status.
package main

import (
	"fmt"
	"io"
	"os"
)

// printHelp writes a formatted help message to w.
func printHelp(w io.Writer, ver string) {
	fmt.Fprintf(w, "reelboard %s: kanban board for short-form video scripts\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  reelboard                           Serve the board on http://127.0.0.1:7771")
	fmt.Fprintln(w, "  reelboard -tui                      Run the terminal board")
	fmt.Fprintln(w, "  reelboard -mcp                      Serve automation tools over MCP (stdio)")
	fmt.Fprintln(w, "  reelboard -export <path|-> [-format json|yaml|md]")
	fmt.Fprintln(w, "                                      Write an export and exit")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -data-dir <dir>       Data directory (overrides REELBOARD_HOME)")
	fmt.Fprintln(w, "  -bind <host:port>     Web listen address, loopback only (overrides REELBOARD_BIND)")
	fmt.Fprintln(w, "  -format <fmt>         Export format: json, yaml, md (default: json)")
	fmt.Fprintln(w, "  -version              Print version and exit")
	fmt.Fprintln(w, "  -help                 Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  reelboard -bind 127.0.0.1:8080")
	fmt.Fprintln(w, "  reelboard -export board.md -format md")
	fmt.Fprintln(w, "  reelboard -export - | jq length")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	for _, key := range []string{"REELBOARD_HOME", "REELBOARD_BIND", "REELBOARD_STORE", "REELBOARD_SEED"} {
		fmt.Fprintf(w, "  %-20s  %s\n", key, envStatus(key))
	}
}

// envStatus returns the value of the named environment variable, or
// "[not set]" when it is empty.
func envStatus(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return "[not set]"
}
