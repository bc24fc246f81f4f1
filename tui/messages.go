// ABOUTME: Bubble Tea message types used in the terminal board's message loop.
package tui

// ExportDoneMsg reports the result of writing an export file.
type ExportDoneMsg struct {
	Path string
	Err  error
}
