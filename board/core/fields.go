// ABOUTME: CardFields is a partial card used for creation overlays and merges.
// ABOUTME: Only present (non-nil) fields are applied; Validate guards the card invariants.
package core

import "fmt"

// CardFields carries an optional value for every user-editable card field.
// A nil field is left untouched by Apply.
type CardFields struct {
	Title         *string    `json:"title,omitempty"`
	Hook          *string    `json:"hook,omitempty"`
	Platform      *Platform  `json:"platform,omitempty"`
	ViralityScore *int       `json:"viralityScore,omitempty"`
	Content       *string    `json:"content,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Status        *Stage     `json:"status,omitempty"`
	Analytics     *Analytics `json:"analytics,omitempty"`
}

// Ptr returns a pointer to v. Handy for building CardFields literals.
func Ptr[T any](v T) *T {
	return &v
}

// Validate checks the present fields against the card invariants. Title
// emptiness is checked by the board, since a merge may omit the title.
func (f CardFields) Validate() error {
	if f.Status != nil && !f.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStage, *f.Status)
	}
	if f.Platform != nil && !f.Platform.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlatform, *f.Platform)
	}
	if f.ViralityScore != nil && (*f.ViralityScore < MinViralityScore || *f.ViralityScore > MaxViralityScore) {
		return fmt.Errorf("%w: got %d", ErrInvalidVirality, *f.ViralityScore)
	}
	if a := f.Analytics; a != nil && (a.Views < 0 || a.Likes < 0 || a.Comments < 0 || a.Shares < 0) {
		return ErrNegativeAnalytics
	}
	return nil
}

// Apply merges the present fields into card.
func (f CardFields) Apply(card *Card) {
	if f.Title != nil {
		card.Title = *f.Title
	}
	if f.Hook != nil {
		card.Hook = *f.Hook
	}
	if f.Platform != nil {
		card.Platform = *f.Platform
	}
	if f.ViralityScore != nil {
		card.ViralityScore = *f.ViralityScore
	}
	if f.Content != nil {
		card.Content = *f.Content
	}
	if f.Notes != nil {
		card.Notes = *f.Notes
	}
	if f.Status != nil {
		card.Status = *f.Status
	}
	if f.Analytics != nil {
		card.Analytics = *f.Analytics
	}
}
