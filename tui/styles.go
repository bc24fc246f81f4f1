// ABOUTME: Defines lipgloss styles for the terminal board: columns, cards, platform tags, editor, and status bar.
// ABOUTME: Provides StyleForPlatform to map a platform code to its tag color.
package tui

import (
	"github.com/2389-research/reelboard/board/core"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Column borders
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
	FocusedColumnStyle = ColumnStyle.
				BorderForeground(lipgloss.Color("204"))
	DropTargetStyle = ColumnStyle.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))
	CountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Cards
	CardTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	SelectedCardStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("204"))
	DraggingCardStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214"))
	HookStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	NotesStyle        = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	AnalyticsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	ViralityStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	// Platform tags
	InstagramStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	TikTokStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	YouTubeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	FacebookStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	// Editor
	EditorStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("204")).
			Padding(1, 2)
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)
	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Delete confirmation
	ConfirmStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2)
)

// StyleForPlatform returns the tag style for a platform.
func StyleForPlatform(p core.Platform) lipgloss.Style {
	switch p {
	case core.PlatformInstagram:
		return InstagramStyle
	case core.PlatformTikTok:
		return TikTokStyle
	case core.PlatformYouTube:
		return YouTubeStyle
	case core.PlatformFacebook:
		return FacebookStyle
	default:
		return InstagramStyle
	}
}
