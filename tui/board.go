// ABOUTME: BoardModel is the root Bubble Tea model for the terminal board: five columns, a cursor, and an editor.
// ABOUTME: Keyboard drag-and-drop, editing, and deletion all go through a core.Session over the persisted store.
package tui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2389-research/reelboard/board/core"
	"github.com/2389-research/reelboard/board/export"
	"github.com/2389-research/reelboard/board/store"
	"github.com/2389-research/reelboard/board/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Store is what the terminal board needs from the card store.
type Store interface {
	core.CardStore
	Cards() []core.Card
}

// Config configures a BoardModel.
type Config struct {
	Store     Store
	ExportDir string           // where x writes JSON exports
	Now       func() time.Time // clock for export filenames; defaults to time.Now
}

// BoardModel is the top-level model of the terminal board.
type BoardModel struct {
	store       Store
	session     *core.Session
	col, row    int
	form        FormModel
	quickDelete bool
	status      StatusBarModel
	exportDir   string
	now         func() time.Time
	width       int
	height      int
}

// NewBoardModel creates a BoardModel with the cursor on the first column.
func NewBoardModel(cfg Config) BoardModel {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	m := BoardModel{
		store:     cfg.Store,
		session:   core.NewSession(cfg.Store),
		status:    NewStatusBarModel(),
		exportDir: cfg.ExportDir,
		now:       now,
	}
	m.status.SetTotal(len(cfg.Store.Cards()))
	return m
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.status.SetWidth(msg.Width)
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.status.Fail(fmt.Sprintf("export failed: %v", msg.Err))
		} else {
			m.status.Notify("exported to " + msg.Path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.session.IsOpen() && !m.session.Confirming() {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BoardModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch {
	case m.session.Confirming():
		return m.handleConfirmKey(msg)
	case m.session.IsOpen():
		return m.handleFormKey(msg)
	default:
		return m.handleBoardKey(msg)
	}
}

func (m BoardModel) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
		m.clampCursor()
	case "right", "l":
		if m.col < len(core.Stages)-1 {
			m.col++
		}
		m.clampCursor()
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		m.row++
		m.clampCursor()
	case "enter":
		if id, ok := m.focusedCardID(); ok {
			if f, ok := m.session.OpenEdit(id); ok {
				m.form = NewFormModel(f)
			}
		}
	case "ctrl+n":
		m.form = NewFormModel(m.session.OpenCreate())
	case " ", "space":
		m.toggleDrag()
	case "esc":
		m.session.EndDrag()
		m.status.SetDragging("")
	case "d":
		id, ok := m.focusedCardID()
		if !ok {
			break
		}
		if f, ok := m.session.OpenEdit(id); ok {
			m.form = NewFormModel(f)
			m.quickDelete = m.session.RequestDelete()
		}
	case "x":
		return m, exportCmd(m.exportDir, m.store.Cards(), m.now())
	}
	return m, nil
}

func (m BoardModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.Close()
		return m, nil
	case "tab":
		m.form = m.form.Next()
		return m, nil
	case "shift+tab":
		m.form = m.form.Prev()
		return m, nil
	case "down":
		if !m.form.InTextarea() {
			m.form = m.form.Next()
			return m, nil
		}
	case "up":
		if !m.form.InTextarea() {
			m.form = m.form.Prev()
			return m, nil
		}
	case "ctrl+s":
		m.save()
		return m, nil
	case "enter":
		if !m.form.InTextarea() {
			m.save()
			return m, nil
		}
	case "ctrl+d":
		m.quickDelete = false
		m.session.RequestDelete()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m BoardModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		title := m.form.Form().Title
		deleted, err := m.session.ConfirmDelete()
		switch {
		case err != nil:
			m.status.Fail(err.Error())
		case deleted:
			m.status.Notify(fmt.Sprintf("deleted %q", title))
		default:
			m.status.Fail("card no longer exists")
		}
		if m.quickDelete {
			m.session.Close()
		}
		m.quickDelete = false
		m.refresh()
	case "n", "N", "esc":
		m.session.CancelDelete()
		if m.quickDelete {
			m.session.Close()
		}
		m.quickDelete = false
	}
	return m, nil
}

// save submits the editor. Validation problems keep it open with a message.
func (m *BoardModel) save() {
	f := m.form.Form()
	card, err := m.session.Save(f)
	switch {
	case err == nil:
		m.status.Notify(fmt.Sprintf("saved %q", card.Title))
		m.focusCard(card)
	case core.IsNotFound(err):
		m.status.Fail("card no longer exists")
	case errors.Is(err, store.ErrPersist):
		m.form = m.form.SetMessage(m.session.Form().Message)
		m.status.Fail(err.Error())
	default:
		m.form = m.form.SetMessage(m.session.Form().Message)
	}
	m.refresh()
}

// toggleDrag picks up the focused card, or drops the held card onto the
// focused column.
func (m *BoardModel) toggleDrag() {
	if _, dragging := m.session.Dragging(); dragging {
		stage := core.Stages[m.col]
		moved, err := m.session.Drop(stage)
		m.status.SetDragging("")
		switch {
		case err != nil:
			m.status.Fail(err.Error())
		case moved:
			m.status.Notify("moved to " + stage.Label())
		default:
			m.status.Fail("card no longer exists")
		}
		m.refresh()
		return
	}

	id, ok := m.focusedCardID()
	if !ok {
		return
	}
	if m.session.BeginDrag(id) {
		card, _ := m.store.Get(id)
		m.status.SetDragging(sanitizeLine(card.Title))
		m.status.Clear()
	}
}

func (m BoardModel) board() view.Board {
	return view.BuildBoard(m.store.Cards())
}

func (m BoardModel) focusedCardID() (string, bool) {
	col := m.board().Columns[m.col]
	if m.row < 0 || m.row >= len(col.Cards) {
		return "", false
	}
	return col.Cards[m.row].ID, true
}

// focusCard moves the cursor onto card if it is on the board.
func (m *BoardModel) focusCard(card core.Card) {
	col, ok := m.board().Column(card.Status)
	if !ok {
		return
	}
	for i, cv := range col.Cards {
		if cv.ID == card.ID {
			m.col = card.Status.Index()
			m.row = i
			return
		}
	}
}

func (m *BoardModel) clampCursor() {
	n := len(m.board().Columns[m.col].Cards)
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m *BoardModel) refresh() {
	m.status.SetTotal(len(m.store.Cards()))
	m.clampCursor()
}

// exportCmd writes the board as JSON into dir off the UI loop.
func exportCmd(dir string, cards []core.Card, now time.Time) tea.Cmd {
	return func() tea.Msg {
		data, err := export.ExportJSON(cards)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		path := filepath.Join(dir, export.Filename(export.FormatJSON, now))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return ExportDoneMsg{Err: err}
		}
		log.Printf("component=board.tui action=export path=%s cards=%d", path, len(cards))
		return ExportDoneMsg{Path: path}
	}
}

// View implements tea.Model.
func (m BoardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 10 {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: 40x10.", m.width, m.height)
	}

	bodyHeight := m.height - 1
	var body string
	switch {
	case m.session.Confirming():
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderConfirm())
	case m.session.IsOpen():
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, EditorStyle.Render(m.form.View()))
	default:
		body = m.renderColumns(bodyHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.status.View())
}

func (m BoardModel) renderConfirm() string {
	title := sanitizeLine(m.form.Form().Title)
	text := fmt.Sprintf("Are you sure you want to delete %q?\n\n", title) +
		HelpStyle.Render("y delete · n cancel")
	return ConfirmStyle.Render(text)
}

func (m BoardModel) renderColumns(height int) string {
	b := m.board()
	colWidth := m.width/len(b.Columns) - 2
	dragID, dragging := m.session.Dragging()

	rendered := make([]string, 0, len(b.Columns))
	for i, col := range b.Columns {
		var sb strings.Builder
		sb.WriteString(TitleStyle.Render(col.Label) + " " + CountStyle.Render(fmt.Sprintf("(%d)", col.Count)))
		sb.WriteString("\n")
		for j, card := range col.Cards {
			sb.WriteString("\n")
			sb.WriteString(renderCard(card, colWidth-2, i == m.col && j == m.row, dragging && card.ID == dragID))
		}

		style := ColumnStyle
		if i == m.col {
			style = FocusedColumnStyle
			if dragging {
				style = DropTargetStyle
			}
		}
		rendered = append(rendered, style.Width(colWidth).Height(height-2).Render(sb.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderCard(c view.CardView, width int, selected, dragged bool) string {
	if width < 1 {
		width = 1
	}
	titleStyle := CardTitleStyle
	switch {
	case dragged:
		titleStyle = DraggingCardStyle
	case selected:
		titleStyle = SelectedCardStyle
	}

	lines := []string{
		titleStyle.Render(sanitizeLine(c.Title)),
		StyleForPlatform(c.Platform).Render(string(c.Platform)) + " " + ViralityStyle.Render(c.Virality),
	}
	if c.Hook != "" {
		lines = append(lines, HookStyle.Render(sanitize(c.Hook)))
	}
	if c.Notes != "" {
		lines = append(lines, NotesStyle.Render(sanitize(c.Notes)))
	}
	if a := c.Analytics; a != nil {
		lines = append(lines, AnalyticsStyle.Render(fmt.Sprintf("views %s likes %s", a.Views, a.Likes)))
		lines = append(lines, AnalyticsStyle.Render(fmt.Sprintf("comments %s shares %s", a.Comments, a.Shares)))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}
