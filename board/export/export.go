// ABOUTME: Board export and import: dated JSON files that round-trip, plus YAML and Markdown renderings.
// ABOUTME: Import goes through the same lenient decoder used for local storage.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2389-research/reelboard/board/core"
)

// Format names an export encoding.
type Format string

// Supported export formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "md"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat reads a format name. Blank means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMarkdown:
		return "md"
	default:
		return "json"
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "application/json"
	}
}

// Filename returns the download name for an export taken at t, e.g.
// reelboard-export-2026-10-19.json.
func Filename(f Format, t time.Time) string {
	return fmt.Sprintf("reelboard-export-%s.%s", t.Format("2006-01-02"), f.Extension())
}

// Render encodes cards in the given format.
func Render(f Format, cards []core.Card) ([]byte, error) {
	switch f {
	case FormatJSON:
		return ExportJSON(cards)
	case FormatYAML:
		out, err := ExportYAML(cards)
		return []byte(out), err
	case FormatMarkdown:
		return []byte(ExportMarkdown(cards)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// ExportJSON encodes cards as the pretty-printed JSON array written to
// export files.
func ExportJSON(cards []core.Card) ([]byte, error) {
	return core.EncodeCardsIndent(cards)
}

// ImportJSON parses an export file. Records are repaired the same way
// stored data is.
func ImportJSON(data []byte) ([]core.Card, error) {
	cards, err := core.DecodeCards(data)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	return cards, nil
}
