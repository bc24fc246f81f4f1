// ABOUTME: Form is the UI-agnostic model of the card editor shown by every board view.
// ABOUTME: Provides blank and pre-filled forms plus lenient parsing of numeric inputs.
package core

import (
	"strconv"
	"strings"
)

// Editor headings.
const (
	HeadingCreate = "Add New Card"
	HeadingEdit   = "Edit Card"
)

// Form is the editable projection of a card.
type Form struct {
	CardID        string // empty when creating a new card
	Heading       string
	Title         string
	Hook          string
	Platform      Platform
	ViralityScore int
	Content       string
	Notes         string
	Status        Stage // read-only in the editor
	Analytics     Analytics
	ShowAnalytics bool
	Message       string // validation feedback for the user
}

// BlankForm returns the create form with the NewCard defaults and the
// analytics section hidden.
func BlankForm() Form {
	return Form{
		Heading:       HeadingCreate,
		Platform:      DefaultPlatform,
		ViralityScore: DefaultViralityScore,
		Status:        DefaultStage,
	}
}

// FormFromCard returns an edit form pre-filled from card. The analytics
// section is shown only once the card is posted or in analytics.
func FormFromCard(card Card) Form {
	return Form{
		CardID:        card.ID,
		Heading:       HeadingEdit,
		Title:         card.Title,
		Hook:          card.Hook,
		Platform:      card.Platform,
		ViralityScore: card.ViralityScore,
		Content:       card.Content,
		Notes:         card.Notes,
		Status:        card.Status,
		Analytics:     card.Analytics,
		ShowAnalytics: card.Status.ShowsAnalytics(),
	}
}

// Editing reports whether the form edits an existing card.
func (f Form) Editing() bool {
	return f.CardID != ""
}

// Fields converts the form into the fields saved on submit. Status is not
// editable from the form and is never included.
func (f Form) Fields() CardFields {
	platform := f.Platform
	if !platform.Valid() {
		platform = DefaultPlatform
	}
	analytics := f.Analytics
	return CardFields{
		Title:         Ptr(f.Title),
		Hook:          Ptr(f.Hook),
		Platform:      &platform,
		ViralityScore: Ptr(ClampScore(f.ViralityScore)),
		Content:       Ptr(f.Content),
		Notes:         Ptr(f.Notes),
		Analytics:     &analytics,
	}
}

// ParseScore reads a virality input. Blank or non-numeric input yields the
// default score; numbers are clamped into 0..10.
func ParseScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultViralityScore
	}
	return ClampScore(n)
}

// ParseCount reads an analytics input. Blank, non-numeric, or negative input
// yields zero.
func ParseCount(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParsePlatformOrDefault reads a platform input, falling back to IG.
func ParsePlatformOrDefault(raw string) Platform {
	p, err := ParsePlatform(raw)
	if err != nil {
		return DefaultPlatform
	}
	return p
}
