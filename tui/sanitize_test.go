// ABOUTME: Tests that user text is drawn without terminal escape sequences or control characters.
package tui

import (
	"strings"
	"testing"

	"github.com/2389-research/reelboard/board/core"
	"github.com/2389-research/reelboard/board/store"
	"github.com/2389-research/reelboard/board/view"
	tea "github.com/charmbracelet/bubbletea"
)

const hostileTitle = "x\x1b]0;pwned\x07\x1b[2J"

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{hostileTitle, "x"},
		{"red \x1b[31mtext\x1b[0m", "red text"},
		{"bell\x07 nul\x00 del\x7f", "bell nul del"},
		{"tab\there", "tab here"},
		{"two\nlines", "two\nlines"},
		{"emoji 🎬 ok", "emoji 🎬 ok"},
	}
	for _, tt := range tests {
		if got := sanitize(tt.in); got != tt.want {
			t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := sanitizeLine("two\nlines"); got != "two lines" {
		t.Errorf("sanitizeLine = %q", got)
	}
}

func TestRenderCardDropsEscapes(t *testing.T) {
	card := view.NewCardView(core.Card{
		ID:       "c1",
		Title:    hostileTitle,
		Hook:     "hook\x1b[2J",
		Notes:    "notes\x1b]8;;http://evil.example\x07link",
		Platform: core.PlatformInstagram,
		Status:   core.StageIdeas,
	})
	out := renderCard(card, 40, false, false)
	for _, bad := range []string{"pwned", "\x1b]", "\x1b[2J", "\x07", "evil.example"} {
		if strings.Contains(out, bad) {
			t.Errorf("rendered card contains %q: %q", bad, out)
		}
	}
}

func TestBoardViewDropsEscapesFromStoredText(t *testing.T) {
	slot, err := store.NewFileSlot(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileSlot: %v", err)
	}
	s, err := store.Open(slot, store.Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Create(core.CardFields{Title: core.Ptr(hostileTitle)}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	m := NewBoardModel(Config{Store: s})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(BoardModel)
	if strings.Contains(m.View(), "pwned") || strings.Contains(m.View(), "\x1b]0;") {
		t.Error("board view leaks the OSC title sequence")
	}

	m = press(t, m, runes("d"))
	if out := m.View(); strings.Contains(out, "pwned") || strings.Contains(out, "\x1b[2J") {
		t.Error("delete confirmation leaks escape sequences")
	}
}

func TestFormModelDropsEscapes(t *testing.T) {
	f := core.FormFromCard(core.Card{ID: "c1", Title: hostileTitle, Content: "body\x1b[2J", Status: core.StageIdeas})
	m := NewFormModel(f)
	if got := m.Form().Title; got != "x" {
		t.Errorf("Title = %q, want x", got)
	}
	if got := m.Form().Content; got != "body" {
		t.Errorf("Content = %q, want body", got)
	}
	if strings.Contains(m.View(), "pwned") {
		t.Error("form view leaks the OSC title sequence")
	}
}
