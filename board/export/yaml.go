// ABOUTME: Exports the board as a YAML document with one entry per stage.
// ABOUTME: Uses gopkg.in/yaml.v3 with the fixed stage order so output is deterministic.
package export

import (
	"fmt"
	"time"

	"github.com/2389-research/reelboard/board/core"
	"gopkg.in/yaml.v3"
)

// YamlCard is the YAML representation of one card.
type YamlCard struct {
	ID            string          `yaml:"id"`
	Title         string          `yaml:"title"`
	Hook          string          `yaml:"hook,omitempty"`
	Platform      string          `yaml:"platform"`
	ViralityScore int             `yaml:"virality_score"`
	Content       string          `yaml:"content,omitempty"`
	Notes         string          `yaml:"notes,omitempty"`
	CreatedAt     string          `yaml:"created_at"`
	Analytics     *core.Analytics `yaml:"analytics,omitempty"`
}

// YamlStage is one pipeline stage and its cards.
type YamlStage struct {
	Stage string     `yaml:"stage"`
	Label string     `yaml:"label"`
	Cards []YamlCard `yaml:"cards"`
}

// YamlBoard is the top-level YAML document.
type YamlBoard struct {
	Name   string      `yaml:"name"`
	Total  int         `yaml:"total"`
	Stages []YamlStage `yaml:"stages"`
}

// ExportYAML renders cards grouped by stage in pipeline order.
func ExportYAML(cards []core.Card) (string, error) {
	board := core.NewBoard(cards)

	doc := YamlBoard{Name: "reelboard", Total: board.Len()}
	for _, st := range core.Stages {
		stageCards := board.ByStage(st)
		yamlCards := make([]YamlCard, 0, len(stageCards))
		for _, c := range stageCards {
			yc := YamlCard{
				ID:            c.ID,
				Title:         c.Title,
				Hook:          c.Hook,
				Platform:      string(c.Platform),
				ViralityScore: c.ViralityScore,
				Content:       c.Content,
				Notes:         c.Notes,
				CreatedAt:     c.CreatedAt.Format(time.RFC3339),
			}
			if !c.Analytics.IsZero() {
				a := c.Analytics
				yc.Analytics = &a
			}
			yamlCards = append(yamlCards, yc)
		}
		doc.Stages = append(doc.Stages, YamlStage{
			Stage: string(st),
			Label: st.Label(),
			Cards: yamlCards,
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("yaml marshal: %w", err)
	}
	return string(data), nil
}
