// ABOUTME: Card represents one short-form video script tracked through the pipeline.
// ABOUTME: NewCard fills the documented defaults, then overlays caller-supplied fields.
package core

import "time"

// Default values applied by NewCard.
const (
	DefaultPlatform      = PlatformInstagram
	DefaultViralityScore = 5
	DefaultStage         = StageIdeas

	MinViralityScore = 0
	MaxViralityScore = 10
)

// Analytics holds the four engagement counters of a posted script.
type Analytics struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}

// IsZero reports whether every counter is zero.
func (a Analytics) IsZero() bool {
	return a.Views == 0 && a.Likes == 0 && a.Comments == 0 && a.Shares == 0
}

// Card is a single content-planning unit on the board. JSON field names
// match the board's export format.
type Card struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Hook          string    `json:"hook"`
	Platform      Platform  `json:"platform"`
	ViralityScore int       `json:"viralityScore"`
	Content       string    `json:"content"`
	Notes         string    `json:"notes"`
	Status        Stage     `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	Analytics     Analytics `json:"analytics"`
}

// NewCard creates a Card with a fresh id and default values, then applies
// the given fields on top.
// Defaults: platform=IG, viralityScore=5, status=ideas, analytics zeroed.
func NewCard(fields CardFields) Card {
	card := Card{
		ID:            NewID(),
		Platform:      DefaultPlatform,
		ViralityScore: DefaultViralityScore,
		Status:        DefaultStage,
		CreatedAt:     now(),
	}
	fields.Apply(&card)
	return card
}

// now returns the current UTC time at millisecond precision, which is what
// survives a trip through the export format unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
