// ABOUTME: Programmatic surface of the board for scripts and agents: add, update, list, auto-populate.
// ABOUTME: Served over the JSON API and as MCP tools; every mutation goes through the persisted store.
package automation

import (
	"context"
	"log"

	"github.com/2389-research/reelboard/board/core"
)

// Store is the part of the persisted board the automation surface needs.
type Store interface {
	Cards() []core.Card
	Create(fields core.CardFields) (core.Card, error)
	Update(id string, fields core.CardFields) (core.Card, error)
}

// API exposes board operations to external callers.
type API struct {
	store Store
}

// New creates an API over store.
func New(store Store) *API {
	return &API{store: store}
}

// AddCard creates a card from fields and returns its id. New cards always
// start in the ideas stage whatever status fields carries.
func (a *API) AddCard(fields core.CardFields) (string, error) {
	fields.Status = core.Ptr(core.StageIdeas)
	card, err := a.store.Create(fields)
	if err != nil {
		return "", err
	}
	log.Printf("component=board.automation action=add_card card_id=%s", card.ID)
	return card.ID, nil
}

// UpdateCard merges fields into the card with the given id. Returns false,
// with a nil error, when no such card exists.
func (a *API) UpdateCard(id string, fields core.CardFields) (bool, error) {
	if _, err := a.store.Update(id, fields); err != nil {
		if core.IsNotFound(err) {
			log.Printf("component=board.automation action=update_card_missing card_id=%s", id)
			return false, nil
		}
		return false, err
	}
	log.Printf("component=board.automation action=update_card card_id=%s", id)
	return true, nil
}

// GetCards returns a copy of the whole collection.
func (a *API) GetCards() []core.Card {
	return a.store.Cards()
}

// AutoPopulate is the hook for a future job that fills the ideas stage with
// generated scripts. It only records the request and adds nothing.
func (a *API) AutoPopulate(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	log.Printf("component=board.automation action=auto_populate added=0 reason=not_configured")
	return 0, nil
}
