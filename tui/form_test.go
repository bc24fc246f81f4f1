// ABOUTME: Tests for FormModel, the terminal card editor.
// ABOUTME: Covers field order, focus cycling, analytics visibility, and lenient parsing of inputs.
package tui

import (
	"testing"

	"github.com/2389-research/reelboard/board/core"
)

func TestFormModelCreateFields(t *testing.T) {
	m := NewFormModel(core.BlankForm())
	if m.Focused() != fieldTitle {
		t.Errorf("Focused() = %v, want title", m.Focused())
	}
	if len(m.order) != 6 {
		t.Errorf("create form has %d fields, want 6", len(m.order))
	}

	f := m.Form()
	if f.Platform != core.PlatformInstagram || f.ViralityScore != 5 {
		t.Errorf("Form() = %+v, want IG / 5", f)
	}
}

func TestFormModelAnalyticsFields(t *testing.T) {
	card := core.Card{ID: "c1", Title: "Posted", Platform: core.PlatformYouTube, ViralityScore: 8,
		Status: core.StagePosted, Analytics: core.Analytics{Views: 10}}
	m := NewFormModel(core.FormFromCard(card))
	if len(m.order) != 10 {
		t.Fatalf("posted form has %d fields, want 10", len(m.order))
	}
	if got := m.Form().Analytics.Views; got != 10 {
		t.Errorf("Views = %d, want 10", got)
	}
}

func TestFormModelFocusCycles(t *testing.T) {
	m := NewFormModel(core.BlankForm())
	m = m.Prev()
	if m.Focused() != fieldNotes {
		t.Errorf("Prev from title = %v, want notes", m.Focused())
	}
	m = m.Next()
	if m.Focused() != fieldTitle {
		t.Errorf("Next from notes = %v, want title", m.Focused())
	}
	for m.Focused() != fieldContent {
		m = m.Next()
	}
	if !m.InTextarea() {
		t.Error("content field should use the textarea")
	}
}

func TestFormModelLenientParsing(t *testing.T) {
	card := core.Card{ID: "c1", Title: "x", Platform: core.PlatformTikTok, Status: core.StageAnalytics}
	m := NewFormModel(core.FormFromCard(card))
	m.inputs[fieldTitle].SetValue("  Trimmed  ")
	m.inputs[fieldPlatform].SetValue("myspace")
	m.inputs[fieldVirality].SetValue("42")
	m.inputs[fieldViews].SetValue("-3")
	m.inputs[fieldLikes].SetValue("lots")
	m.inputs[fieldShares].SetValue("12")
	m.content.SetValue("# Script")

	f := m.Form()
	if f.Title != "Trimmed" {
		t.Errorf("Title = %q", f.Title)
	}
	if f.Platform != core.PlatformInstagram {
		t.Errorf("Platform = %q, want IG", f.Platform)
	}
	if f.ViralityScore != 10 {
		t.Errorf("ViralityScore = %d, want 10", f.ViralityScore)
	}
	want := core.Analytics{Views: 0, Likes: 0, Comments: 0, Shares: 12}
	if f.Analytics != want {
		t.Errorf("Analytics = %+v, want %+v", f.Analytics, want)
	}
	if f.Content != "# Script" {
		t.Errorf("Content = %q", f.Content)
	}
	if f.CardID != "c1" || f.Status != core.StageAnalytics {
		t.Errorf("Form() lost identity: %+v", f)
	}
}
