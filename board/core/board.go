// ABOUTME: Board is the ordered, in-memory card collection with linear-scan lookups.
// ABOUTME: Create/Update/Move/Remove enforce the card invariants; persistence lives in the store.
package core

import (
	"fmt"
	"strings"
)

// CardStore is the set of card operations the editing session and the
// automation surface need. Board implements it in memory; the persisted
// store implements it by wrapping a Board.
type CardStore interface {
	Get(id string) (Card, bool)
	Create(fields CardFields) (Card, error)
	Update(id string, fields CardFields) (Card, error)
	Move(id string, stage Stage) (Card, error)
	Remove(id string) error
}

var _ CardStore = (*Board)(nil)

// Board holds cards in insertion order. It is not safe for concurrent use.
type Board struct {
	cards []Card
}

// NewBoard creates a Board holding a copy of the given cards.
func NewBoard(cards []Card) *Board {
	b := &Board{cards: make([]Card, len(cards))}
	copy(b.cards, cards)
	return b
}

// Len returns the number of cards.
func (b *Board) Len() int {
	return len(b.cards)
}

// List returns a copy of all cards in order.
func (b *Board) List() []Card {
	out := make([]Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Get returns the card with the given id.
func (b *Board) Get(id string) (Card, bool) {
	if i := b.index(id); i >= 0 {
		return b.cards[i], true
	}
	return Card{}, false
}

// Create builds a card from fields, appends it, and returns it. The title
// must be non-blank.
func (b *Board) Create(fields CardFields) (Card, error) {
	if fields.Title == nil || strings.TrimSpace(*fields.Title) == "" {
		return Card{}, ErrEmptyTitle
	}
	if err := fields.Validate(); err != nil {
		return Card{}, err
	}
	card := NewCard(fields)
	for b.index(card.ID) >= 0 {
		card.ID = NewID()
	}
	b.cards = append(b.cards, card)
	return card, nil
}

// Update merges fields into the card with the given id.
func (b *Board) Update(id string, fields CardFields) (Card, error) {
	i := b.index(id)
	if i < 0 {
		return Card{}, &CardNotFoundError{CardID: id}
	}
	if fields.Title != nil && strings.TrimSpace(*fields.Title) == "" {
		return Card{}, ErrEmptyTitle
	}
	if err := fields.Validate(); err != nil {
		return Card{}, err
	}
	fields.Apply(&b.cards[i])
	return b.cards[i], nil
}

// Move sets the status of the card with the given id.
func (b *Board) Move(id string, stage Stage) (Card, error) {
	if !stage.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidStage, stage)
	}
	i := b.index(id)
	if i < 0 {
		return Card{}, &CardNotFoundError{CardID: id}
	}
	b.cards[i].Status = stage
	return b.cards[i], nil
}

// Remove deletes the card with the given id.
func (b *Board) Remove(id string) error {
	i := b.index(id)
	if i < 0 {
		return &CardNotFoundError{CardID: id}
	}
	b.cards = append(b.cards[:i], b.cards[i+1:]...)
	return nil
}

// ByStage returns the cards in the given stage, in board order.
func (b *Board) ByStage(stage Stage) []Card {
	var out []Card
	for _, c := range b.cards {
		if c.Status == stage {
			out = append(out, c)
		}
	}
	return out
}

// Counts returns the number of cards per stage. Every stage is present.
func (b *Board) Counts() map[Stage]int {
	counts := make(map[Stage]int, len(Stages))
	for _, st := range Stages {
		counts[st] = 0
	}
	for _, c := range b.cards {
		if _, ok := counts[c.Status]; ok {
			counts[c.Status]++
		}
	}
	return counts
}

func (b *Board) index(id string) int {
	for i := range b.cards {
		if b.cards[i].ID == id {
			return i
		}
	}
	return -1
}
