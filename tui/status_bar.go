// ABOUTME: Implements a single-line status bar for the bottom of the terminal board.
// ABOUTME: Shows the card total, the drag state, and the latest notice or error.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarModel displays board status in a single line.
type StatusBarModel struct {
	total    int
	dragging string
	notice   string
	isError  bool
	width    int
}

// NewStatusBarModel creates an empty StatusBarModel.
func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{}
}

// SetTotal updates the card count.
func (m *StatusBarModel) SetTotal(n int) {
	m.total = n
}

// SetDragging sets the title of the card being moved; empty clears it.
func (m *StatusBarModel) SetDragging(title string) {
	m.dragging = sanitizeLine(title)
}

// Notify shows an informational notice.
func (m *StatusBarModel) Notify(msg string) {
	m.notice = sanitizeLine(msg)
	m.isError = false
}

// Fail shows an error notice.
func (m *StatusBarModel) Fail(msg string) {
	m.notice = sanitizeLine(msg)
	m.isError = true
}

// Clear drops the current notice.
func (m *StatusBarModel) Clear() {
	m.notice = ""
	m.isError = false
}

// Notice returns the current notice and whether it is an error.
func (m StatusBarModel) Notice() (string, bool) {
	return m.notice, m.isError
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	content := fmt.Sprintf("%d cards", m.total)
	if m.dragging != "" {
		content += fmt.Sprintf(" | moving %q: pick a column, space to drop, esc to cancel", m.dragging)
	} else {
		content += " | ctrl+n new · enter edit · space move · d delete · x export · q quit"
	}
	if m.notice != "" {
		style := SuccessStyle
		if m.isError {
			style = ErrorStyle
		}
		content += " | " + style.Render(m.notice)
	}

	style := StatusBarStyle.Width(m.width)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, style.Render(content))
}
