// ABOUTME: Tests for BoardModel key handling over a real file-backed store.
// ABOUTME: Covers navigation, the editor, keyboard drag-and-drop, delete confirmation, export, and rendering.
package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/2389-research/reelboard/board/core"
	"github.com/2389-research/reelboard/board/store"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestBoard(t *testing.T, seed bool) (BoardModel, *store.BoardStore) {
	t.Helper()
	slot, err := store.NewFileSlot(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileSlot: %v", err)
	}
	s, err := store.Open(slot, store.Options{Seed: seed})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	m := NewBoardModel(Config{
		Store:     s,
		ExportDir: t.TempDir(),
		Now:       func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) },
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return updated.(BoardModel), s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m BoardModel, keys ...tea.KeyMsg) BoardModel {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(BoardModel)
	}
	return m
}

func typeText(t *testing.T, m BoardModel, text string) BoardModel {
	t.Helper()
	for _, r := range text {
		m = press(t, m, runes(string(r)))
	}
	return m
}

func TestBoardViewShowsColumns(t *testing.T) {
	m, _ := newTestBoard(t, true)
	out := m.View()
	for _, want := range []string{"Script Ideas", "Ready to Film", "Filmed", "Posted", "Analytics", "(1)", "5 cards"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestBoardViewBeforeResize(t *testing.T) {
	slot, _ := store.NewFileSlot(t.TempDir())
	s, err := store.Open(slot, store.Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	m := NewBoardModel(Config{Store: s})
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q", got)
	}
}

func TestBoardCursorMovement(t *testing.T) {
	m, _ := newTestBoard(t, true)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, runes("l"))
	if m.col != 2 {
		t.Errorf("col = %d, want 2", m.col)
	}
	m = press(t, m, runes("l"), runes("l"), runes("l"), runes("l"))
	if m.col != 4 {
		t.Errorf("col = %d, want clamped 4", m.col)
	}
	m = press(t, m, runes("j"), runes("j"))
	if m.row != 0 {
		t.Errorf("row = %d, want clamped 0 in a one-card column", m.row)
	}
	m = press(t, m, runes("h"), tea.KeyMsg{Type: tea.KeyLeft})
	if m.col != 2 {
		t.Errorf("col = %d, want 2", m.col)
	}
}

func TestBoardCreateCard(t *testing.T) {
	m, s := newTestBoard(t, false)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if !m.session.IsOpen() {
		t.Fatal("ctrl+n should open the editor")
	}
	m = typeText(t, m, "Quick tip")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.session.IsOpen() {
		t.Fatalf("editor still open: %q", m.form.Message())
	}
	cards := s.Cards()
	if len(cards) != 1 {
		t.Fatalf("store has %d cards, want 1", len(cards))
	}
	c := cards[0]
	if c.Title != "Quick tip" || c.Status != core.StageIdeas || c.Platform != core.PlatformInstagram || c.ViralityScore != 5 {
		t.Errorf("card = %+v", c)
	}
	if msg, _ := m.status.Notice(); !strings.Contains(msg, "Quick tip") {
		t.Errorf("notice = %q", msg)
	}
}

func TestBoardBlankTitleKeepsEditorOpen(t *testing.T) {
	m, s := newTestBoard(t, false)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN}, tea.KeyMsg{Type: tea.KeyCtrlS})

	if !m.session.IsOpen() {
		t.Fatal("editor should stay open")
	}
	if m.form.Message() != "Please enter a title for the card" {
		t.Errorf("message = %q", m.form.Message())
	}
	if len(s.Cards()) != 0 {
		t.Error("nothing should be stored")
	}
	if !strings.Contains(m.View(), "Please enter a title") {
		t.Error("View() should show the message")
	}
}

func TestBoardEditCard(t *testing.T) {
	m, s := newTestBoard(t, true)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.session.IsOpen() {
		t.Fatal("enter should open the editor")
	}
	m = typeText(t, m, "!")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	cards := byStage(s)
	if cards[core.StageIdeas].Title != "Why Your Brain Craves Junk Food!" {
		t.Errorf("title = %q", cards[core.StageIdeas].Title)
	}
}

func TestBoardEscClosesEditor(t *testing.T) {
	m, s := newTestBoard(t, false)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m = typeText(t, m, "discard me")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.session.IsOpen() {
		t.Error("esc should close the editor")
	}
	if len(s.Cards()) != 0 {
		t.Error("cancel should not store anything")
	}
}

func TestBoardTypingQInEditorDoesNotQuit(t *testing.T) {
	m, _ := newTestBoard(t, false)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m = press(t, m, runes("q"))
	if !m.session.IsOpen() {
		t.Fatal("editor closed")
	}
	if got := m.form.Form().Title; got != "q" {
		t.Errorf("title = %q, want q typed into the editor", got)
	}
}

func TestBoardQuit(t *testing.T) {
	m, _ := newTestBoard(t, false)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestBoardDragToFilmed(t *testing.T) {
	m, s := newTestBoard(t, true)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if _, ok := m.session.Dragging(); !ok {
		t.Fatal("space should pick up the focused card")
	}
	if !strings.Contains(m.status.View(), "moving") {
		t.Error("status bar should show the drag")
	}
	m = press(t, m, runes("l"), runes("l"), tea.KeyMsg{Type: tea.KeySpace})

	if _, ok := m.session.Dragging(); ok {
		t.Error("drop should end the drag")
	}
	filmed := 0
	for _, c := range s.Cards() {
		if c.Status == core.StageFilmed {
			filmed++
		}
		if c.Title == "Why Your Brain Craves Junk Food" && c.Status != core.StageFilmed {
			t.Errorf("dragged card status = %s, want filmed", c.Status)
		}
	}
	if filmed != 2 {
		t.Errorf("filmed cards = %d, want 2", filmed)
	}
}

func TestBoardEscCancelsDrag(t *testing.T) {
	m, s := newTestBoard(t, true)
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, runes("l"), tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeySpace})

	// The second space picks up the ready card; nothing moved.
	for _, c := range s.Cards() {
		if c.Title == "Why Your Brain Craves Junk Food" && c.Status != core.StageIdeas {
			t.Errorf("cancelled drag moved the card to %s", c.Status)
		}
	}
}

func TestBoardDeleteConfirmation(t *testing.T) {
	m, s := newTestBoard(t, true)

	m = press(t, m, runes("d"))
	if !m.session.Confirming() {
		t.Fatal("d should ask for confirmation")
	}
	if !strings.Contains(m.View(), "Are you sure you want to delete") {
		t.Error("View() should show the confirmation")
	}
	m = press(t, m, runes("n"))
	if m.session.IsOpen() || len(s.Cards()) != 5 {
		t.Fatal("n should cancel and return to the board")
	}

	m = press(t, m, runes("d"), runes("y"))
	if m.session.IsOpen() {
		t.Error("confirming should return to the board")
	}
	if len(s.Cards()) != 4 {
		t.Errorf("store has %d cards, want 4", len(s.Cards()))
	}
	if _, ok := byStage(s)[core.StageIdeas]; ok {
		t.Error("ideas card should be gone")
	}
}

func TestBoardDeleteFromEditorKeepsEditorOnCancel(t *testing.T) {
	m, _ := newTestBoard(t, true)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlD})
	if !m.session.Confirming() {
		t.Fatal("ctrl+d should ask for confirmation")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.session.IsOpen() || m.session.Confirming() {
		t.Error("cancel should keep the editor open")
	}
}

func TestBoardExport(t *testing.T) {
	m, _ := newTestBoard(t, true)
	_, cmd := m.Update(runes("x"))
	if cmd == nil {
		t.Fatal("x should return an export command")
	}
	raw := cmd()
	msg, ok := raw.(ExportDoneMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want ExportDoneMsg", raw)
	}
	if msg.Err != nil {
		t.Fatalf("export: %v", msg.Err)
	}
	if filepath.Base(msg.Path) != "reelboard-export-2026-03-14.json" {
		t.Errorf("path = %q", msg.Path)
	}
	data, err := os.ReadFile(msg.Path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	cards, err := core.DecodeCards(data)
	if err != nil || len(cards) != 5 {
		t.Errorf("exported %d cards, err=%v", len(cards), err)
	}

	updated, _ := m.Update(msg)
	if notice, _ := updated.(BoardModel).status.Notice(); !strings.Contains(notice, "exported to") {
		t.Errorf("notice = %q", notice)
	}
}

// byStage indexes the store's cards by stage; tests only use it when each stage
// holds at most one card of interest.
func byStage(s *store.BoardStore) map[core.Stage]core.Card {
	out := make(map[core.Stage]core.Card)
	for _, c := range s.Cards() {
		if _, seen := out[c.Status]; !seen {
			out[c.Status] = c
		}
	}
	return out
}
