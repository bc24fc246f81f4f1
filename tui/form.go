// ABOUTME: FormModel is the terminal card editor: one textinput per field plus a textarea for the script.
// ABOUTME: It renders the editor and converts its inputs back into a core.Form with lenient parsing.
package tui

import (
	"strconv"
	"strings"

	"github.com/2389-research/reelboard/board/core"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type field int

const (
	fieldTitle field = iota
	fieldHook
	fieldPlatform
	fieldVirality
	fieldContent
	fieldNotes
	fieldViews
	fieldLikes
	fieldComments
	fieldShares
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTitle:    "Title",
	fieldHook:     "Hook",
	fieldPlatform: "Platform",
	fieldVirality: "Virality",
	fieldContent:  "Content",
	fieldNotes:    "Notes",
	fieldViews:    "Views",
	fieldLikes:    "Likes",
	fieldComments: "Comments",
	fieldShares:   "Shares",
}

// FormModel edits one card. The content field uses the textarea; every other
// field has its own single-line input.
type FormModel struct {
	base    core.Form
	inputs  [fieldCount]textinput.Model
	content textarea.Model
	order   []field
	focus   int
	message string
}

// NewFormModel builds an editor pre-filled from f with the title focused.
// The analytics inputs are only reachable when f.ShowAnalytics is set. Text
// fields are loaded with control sequences removed, so saving keeps them clean.
func NewFormModel(f core.Form) FormModel {
	m := FormModel{base: f, message: sanitizeLine(f.Message)}

	values := [fieldCount]string{
		fieldTitle:    sanitizeLine(f.Title),
		fieldHook:     sanitizeLine(f.Hook),
		fieldPlatform: string(f.Platform),
		fieldVirality: strconv.Itoa(f.ViralityScore),
		fieldNotes:    sanitizeLine(f.Notes),
		fieldViews:    strconv.FormatInt(f.Analytics.Views, 10),
		fieldLikes:    strconv.FormatInt(f.Analytics.Likes, 10),
		fieldComments: strconv.FormatInt(f.Analytics.Comments, 10),
		fieldShares:   strconv.FormatInt(f.Analytics.Shares, 10),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[fieldTitle].Placeholder = "Enter video title..."
	m.inputs[fieldHook].Placeholder = "Opening hook to grab attention..."
	m.inputs[fieldPlatform].Placeholder = "IG, TT, YT or FB"
	m.inputs[fieldNotes].Placeholder = "Production notes, ideas, etc..."

	ta := textarea.New()
	ta.Placeholder = "Write your script here... (markdown supported)"
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.SetValue(sanitize(f.Content))
	m.content = ta

	m.order = []field{fieldTitle, fieldHook, fieldPlatform, fieldVirality, fieldContent, fieldNotes}
	if f.ShowAnalytics {
		m.order = append(m.order, fieldViews, fieldLikes, fieldComments, fieldShares)
	}
	m = m.setFocus(0)
	return m
}

// Focused returns the field that currently has focus.
func (m FormModel) Focused() field {
	return m.order[m.focus]
}

// InTextarea reports whether the multi-line content field has focus.
func (m FormModel) InTextarea() bool {
	return m.Focused() == fieldContent
}

// Next moves focus to the next field, wrapping at the end.
func (m FormModel) Next() FormModel {
	return m.setFocus((m.focus + 1) % len(m.order))
}

// Prev moves focus to the previous field, wrapping at the start.
func (m FormModel) Prev() FormModel {
	return m.setFocus((m.focus + len(m.order) - 1) % len(m.order))
}

func (m FormModel) setFocus(i int) FormModel {
	for f := range m.inputs {
		m.inputs[f].Blur()
	}
	m.content.Blur()
	m.focus = i
	if m.Focused() == fieldContent {
		m.content.Focus()
	} else {
		m.inputs[m.Focused()].Focus()
	}
	return m
}

// SetMessage sets the feedback line shown under the heading.
func (m FormModel) SetMessage(msg string) FormModel {
	m.message = sanitizeLine(msg)
	return m
}

// Message returns the current feedback line.
func (m FormModel) Message() string {
	return m.message
}

// Update forwards a message to the focused input.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.InTextarea() {
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
	f := m.Focused()
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	return m, cmd
}

// Form returns the edited form. Numbers are parsed leniently: bad virality
// falls back to the default, bad counters to zero, an unknown platform to IG.
func (m FormModel) Form() core.Form {
	f := m.base
	f.Title = strings.TrimSpace(m.inputs[fieldTitle].Value())
	f.Hook = m.inputs[fieldHook].Value()
	f.Platform = core.ParsePlatformOrDefault(m.inputs[fieldPlatform].Value())
	f.ViralityScore = core.ParseScore(m.inputs[fieldVirality].Value())
	f.Content = m.content.Value()
	f.Notes = m.inputs[fieldNotes].Value()
	if f.ShowAnalytics {
		f.Analytics = core.Analytics{
			Views:    core.ParseCount(m.inputs[fieldViews].Value()),
			Likes:    core.ParseCount(m.inputs[fieldLikes].Value()),
			Comments: core.ParseCount(m.inputs[fieldComments].Value()),
			Shares:   core.ParseCount(m.inputs[fieldShares].Value()),
		}
	}
	f.Message = m.message
	return f
}

// View renders the editor body.
func (m FormModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.base.Heading))
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(ErrorStyle.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, f := range m.order {
		if f == fieldViews {
			b.WriteString("\n" + TitleStyle.Render("Analytics") + "\n")
		}
		if f == fieldContent {
			b.WriteString(LabelStyle.Render(fieldLabels[f]) + "\n")
			b.WriteString(m.content.View() + "\n")
			continue
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			LabelStyle.Render(fieldLabels[f]), m.inputs[f].View()))
		b.WriteString("\n")
	}

	help := "tab next field · ctrl+s save · esc cancel"
	if m.base.Editing() {
		help += " · ctrl+d delete"
	}
	b.WriteString("\n" + HelpStyle.Render(help))
	return b.String()
}
