// ABOUTME: View model shared by the HTML and terminal boards: columns, counts, and card summaries.
// ABOUTME: Renderers only format what this package computes, so both boards show the same thing.
package view

import (
	"fmt"
	"strconv"

	"github.com/2389-research/reelboard/board/core"
)

// HookExcerptRunes is the length at which a card's hook is cut on the board.
const HookExcerptRunes = 120

// Board is the rendered state of the whole pipeline.
type Board struct {
	Columns []Column
	Total   int
}

// Column is one stage of the pipeline.
type Column struct {
	Stage core.Stage
	Label string
	Count int
	Cards []CardView
}

// CardView is the summary of one card shown inside a column.
type CardView struct {
	ID            string
	Title         string
	Hook          string
	Platform      core.Platform
	PlatformClass string
	Virality      string
	Notes         string
	Status        core.Stage
	Analytics     *AnalyticsView
}

// AnalyticsView holds the formatted engagement counters.
type AnalyticsView struct {
	Views    string
	Likes    string
	Comments string
	Shares   string
}

// BuildBoard groups cards into the five stage columns, keeping collection
// order within each column.
func BuildBoard(cards []core.Card) Board {
	byStage := make(map[core.Stage][]CardView, len(core.Stages))
	for _, c := range cards {
		byStage[c.Status] = append(byStage[c.Status], NewCardView(c))
	}

	b := Board{Columns: make([]Column, 0, len(core.Stages)), Total: len(cards)}
	for _, st := range core.Stages {
		views := byStage[st]
		b.Columns = append(b.Columns, Column{
			Stage: st,
			Label: st.Label(),
			Count: len(views),
			Cards: views,
		})
	}
	return b
}

// Column returns the column for stage.
func (b Board) Column(stage core.Stage) (Column, bool) {
	for _, c := range b.Columns {
		if c.Stage == stage {
			return c, true
		}
	}
	return Column{}, false
}

// NewCardView summarizes one card. Notes appear only when present; the
// analytics summary appears only in the analytics stage and only when some
// counter is non-zero.
func NewCardView(c core.Card) CardView {
	v := CardView{
		ID:            c.ID,
		Title:         c.Title,
		Hook:          Excerpt(c.Hook, HookExcerptRunes),
		Platform:      c.Platform,
		PlatformClass: c.Platform.Class(),
		Virality:      fmt.Sprintf("%d/10", c.ViralityScore),
		Notes:         c.Notes,
		Status:        c.Status,
	}
	if c.Status == core.StageAnalytics && !c.Analytics.IsZero() {
		v.Analytics = &AnalyticsView{
			Views:    FormatCount(c.Analytics.Views),
			Likes:    FormatCount(c.Analytics.Likes),
			Comments: FormatCount(c.Analytics.Comments),
			Shares:   FormatCount(c.Analytics.Shares),
		}
	}
	return v
}

// FormatCount abbreviates large counters: one decimal with "M" from a
// million, one decimal with "K" from a thousand, the plain integer below.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1e6, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1e3, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// Excerpt cuts s to at most max runes, ending with an ellipsis when cut.
func Excerpt(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
