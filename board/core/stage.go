// ABOUTME: Stage is the fixed pipeline column a card occupies on the board.
// ABOUTME: Five stages in display order, with labels and strict parsing.
package core

import "fmt"

// Stage is one of the five pipeline states a card can be in.
type Stage string

const (
	StageIdeas     Stage = "ideas"
	StageReady     Stage = "ready"
	StageFilmed    Stage = "filmed"
	StagePosted    Stage = "posted"
	StageAnalytics Stage = "analytics"
)

// Stages lists every stage in board order.
var Stages = []Stage{StageIdeas, StageReady, StageFilmed, StagePosted, StageAnalytics}

var stageLabels = map[Stage]string{
	StageIdeas:     "Script Ideas",
	StageReady:     "Ready to Film",
	StageFilmed:    "Filmed",
	StagePosted:    "Posted",
	StageAnalytics: "Analytics",
}

// ParseStage converts a raw string into a Stage, rejecting unknown values.
func ParseStage(s string) (Stage, error) {
	st := Stage(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStage, s)
	}
	return st, nil
}

// Valid reports whether s is one of the five defined stages.
func (s Stage) Valid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Label returns the column heading for the stage.
func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// Index returns the board position of the stage, or -1 if unknown.
func (s Stage) Index() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// ShowsAnalytics reports whether analytics counters are meaningful for a card
// in this stage.
func (s Stage) ShowsAnalytics() bool {
	return s == StagePosted || s == StageAnalytics
}
