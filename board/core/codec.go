// ABOUTME: JSON encoding of the card collection and lenient decoding of persisted data.
// ABOUTME: Decoding repairs missing defaults, unknown stages, and duplicate ids instead of failing.
package core

import (
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// cardWire is the lenient decode shape: pointers distinguish a missing field
// from a zero value so the factory defaults can be restored.
type cardWire struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Hook          string     `json:"hook"`
	Platform      string     `json:"platform"`
	ViralityScore *int       `json:"viralityScore"`
	Content       string     `json:"content"`
	Notes         string     `json:"notes"`
	Status        string     `json:"status"`
	CreatedAt     *time.Time `json:"createdAt"`
	Analytics     *Analytics `json:"analytics"`
}

// EncodeCards serializes cards as a compact JSON array. A nil slice encodes
// as an empty array.
func EncodeCards(cards []Card) ([]byte, error) {
	if cards == nil {
		cards = []Card{}
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("marshal cards: %w", err)
	}
	return data, nil
}

// EncodeCardsIndent serializes cards as a pretty-printed JSON array with
// two-space indentation.
func EncodeCardsIndent(cards []Card) ([]byte, error) {
	if cards == nil {
		cards = []Card{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal cards: %w", err)
	}
	return data, nil
}

// DecodeCards parses a JSON array of cards. Only malformed JSON is an error;
// records that break a card invariant are repaired and the repair is logged:
// missing fields take the NewCard defaults, unknown stages become ideas,
// unknown platforms become IG, scores are clamped into 0..10, negative
// counters become zero, and later duplicates of an id are dropped.
func DecodeCards(data []byte) ([]Card, error) {
	var wire []cardWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parse cards: %w", err)
	}

	cards := make([]Card, 0, len(wire))
	seen := make(map[string]bool, len(wire))
	for i, w := range wire {
		card := w.toCard(i)
		if seen[card.ID] {
			log.Printf("component=board.core action=decode_drop_duplicate card_id=%s index=%d", card.ID, i)
			continue
		}
		seen[card.ID] = true
		cards = append(cards, card)
	}
	return cards, nil
}

func (w cardWire) toCard(index int) Card {
	card := Card{
		ID:            w.ID,
		Title:         w.Title,
		Hook:          w.Hook,
		Platform:      Platform(w.Platform),
		ViralityScore: DefaultViralityScore,
		Content:       w.Content,
		Notes:         w.Notes,
		Status:        Stage(w.Status),
	}

	if card.ID == "" {
		card.ID = NewID()
		log.Printf("component=board.core action=decode_assign_id card_id=%s index=%d", card.ID, index)
	}
	if w.Platform == "" {
		card.Platform = DefaultPlatform
	} else if p, err := ParsePlatform(w.Platform); err == nil {
		card.Platform = p
	} else {
		log.Printf("component=board.core action=decode_coerce_platform card_id=%s platform=%q", card.ID, w.Platform)
		card.Platform = DefaultPlatform
	}
	if w.Status == "" {
		card.Status = DefaultStage
	} else if !card.Status.Valid() {
		log.Printf("component=board.core action=decode_coerce_stage card_id=%s status=%q", card.ID, w.Status)
		card.Status = DefaultStage
	}
	if w.ViralityScore != nil {
		card.ViralityScore = ClampScore(*w.ViralityScore)
	}
	if w.CreatedAt != nil {
		card.CreatedAt = w.CreatedAt.UTC()
	} else {
		card.CreatedAt = now()
	}
	if w.Analytics != nil {
		card.Analytics = Analytics{
			Views:    nonNegative(w.Analytics.Views),
			Likes:    nonNegative(w.Analytics.Likes),
			Comments: nonNegative(w.Analytics.Comments),
			Shares:   nonNegative(w.Analytics.Shares),
		}
	}
	return card
}

// ClampScore forces a virality score into 0..10.
func ClampScore(score int) int {
	if score < MinViralityScore {
		return MinViralityScore
	}
	if score > MaxViralityScore {
		return MaxViralityScore
	}
	return score
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
