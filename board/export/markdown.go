// ABOUTME: Exports the board as a Markdown document, one section per stage.
package export

import (
	"fmt"
	"strings"

	"github.com/2389-research/reelboard/board/core"
	"github.com/2389-research/reelboard/board/view"
)

// ExportMarkdown renders cards as Markdown. Stages appear in pipeline order
// with their counts; cards keep collection order within a stage.
func ExportMarkdown(cards []core.Card) string {
	var out strings.Builder
	board := core.NewBoard(cards)
	counts := board.Counts()

	fmt.Fprintln(&out, "# Content Board")

	for _, st := range core.Stages {
		fmt.Fprintln(&out)
		fmt.Fprintf(&out, "## %s (%d)\n", st.Label(), counts[st])

		for _, c := range board.ByStage(st) {
			fmt.Fprintln(&out)
			fmt.Fprintf(&out, "### %s\n", c.Title)
			fmt.Fprintln(&out)
			fmt.Fprintf(&out, "- Platform: %s\n", c.Platform)
			fmt.Fprintf(&out, "- Virality: %d/10\n", c.ViralityScore)
			if !c.Analytics.IsZero() {
				fmt.Fprintf(&out, "- Views: %s, Likes: %s, Comments: %s, Shares: %s\n",
					view.FormatCount(c.Analytics.Views),
					view.FormatCount(c.Analytics.Likes),
					view.FormatCount(c.Analytics.Comments),
					view.FormatCount(c.Analytics.Shares))
			}

			if c.Hook != "" {
				fmt.Fprintln(&out)
				fmt.Fprintf(&out, "> %s\n", strings.ReplaceAll(c.Hook, "\n", "\n> "))
			}
			if c.Content != "" {
				fmt.Fprintln(&out)
				fmt.Fprintln(&out, c.Content)
			}
			if c.Notes != "" {
				fmt.Fprintln(&out)
				fmt.Fprintf(&out, "_Notes: %s_\n", c.Notes)
			}
		}
	}

	return out.String()
}
