// ABOUTME: Strips terminal escape sequences and control characters from user text before it is drawn.
package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// sanitize removes ANSI/OSC sequences and every control character except
// newline, so card text is always shown literally. Tabs become spaces.
func sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}

// sanitizeLine is sanitize for single-line fields.
func sanitizeLine(s string) string {
	return strings.ReplaceAll(sanitize(s), "\n", " ")
}
