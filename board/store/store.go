// ABOUTME: BoardStore wraps the in-memory board and writes the whole collection to a Slot on every change.
// ABOUTME: Handles first-run seeding, corrupt-data recovery, and rollback when a write fails.
package store

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/2389-research/reelboard/board/core"
)

// ErrPersist wraps every failure to write the collection to its slot. The
// in-memory change that triggered the write has been rolled back.
var ErrPersist = errors.New("persist board")

// Options configures Open.
type Options struct {
	// Key is the slot key; DataKey when empty.
	Key string
	// Seed fills a never-written slot with the sample cards.
	Seed bool
}

// BoardStore is a core.CardStore whose every mutation is persisted
// synchronously. It is safe for concurrent use.
type BoardStore struct {
	mu    sync.RWMutex
	slot  Slot
	key   string
	board *core.Board
}

var _ core.CardStore = (*BoardStore)(nil)

// Open reads the whole collection from slot. A never-written slot starts
// empty, or with the sample cards when opts.Seed is set. Data that can't be
// parsed is copied to a backup key and the board starts empty.
func Open(slot Slot, opts Options) (*BoardStore, error) {
	key := opts.Key
	if key == "" {
		key = DataKey
	}
	s := &BoardStore{slot: slot, key: key}

	data, err := slot.Load(key)
	switch {
	case errors.Is(err, ErrSlotEmpty):
		s.board = core.NewBoard(nil)
		if opts.Seed {
			s.board = core.NewBoard(core.SampleCards())
			if err := s.persist(); err != nil {
				return nil, err
			}
			log.Printf("component=board.store action=seed key=%s cards=%d", key, s.board.Len())
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load board: %w", err)
	}

	cards, err := core.DecodeCards(data)
	if err != nil {
		backup := fmt.Sprintf("%s.corrupt-%s", key, time.Now().UTC().Format("20060102T150405Z"))
		log.Printf("component=board.store action=load_corrupt key=%s backup=%s err=%v", key, backup, err)
		if saveErr := slot.Save(backup, data); saveErr != nil {
			return nil, fmt.Errorf("back up unreadable board: %w", saveErr)
		}
		s.board = core.NewBoard(nil)
		return s, nil
	}

	s.board = core.NewBoard(cards)
	log.Printf("component=board.store action=load key=%s cards=%d", key, s.board.Len())
	return s, nil
}

// Close closes the underlying slot.
func (s *BoardStore) Close() error {
	return s.slot.Close()
}

// Cards returns a snapshot of every card in order.
func (s *BoardStore) Cards() []core.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.List()
}

// Get returns the card with the given id.
func (s *BoardStore) Get(id string) (core.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Get(id)
}

// Create adds a card built from fields and persists the collection.
func (s *BoardStore) Create(fields core.CardFields) (core.Card, error) {
	var card core.Card
	err := s.mutate("create", func(b *core.Board) error {
		var err error
		card, err = b.Create(fields)
		return err
	})
	if err != nil {
		return core.Card{}, err
	}
	return card, nil
}

// Update merges fields into the card with the given id and persists.
func (s *BoardStore) Update(id string, fields core.CardFields) (core.Card, error) {
	var card core.Card
	err := s.mutate("update", func(b *core.Board) error {
		var err error
		card, err = b.Update(id, fields)
		return err
	})
	if err != nil {
		return core.Card{}, err
	}
	return card, nil
}

// Move reassigns the card's stage and persists.
func (s *BoardStore) Move(id string, stage core.Stage) (core.Card, error) {
	var card core.Card
	err := s.mutate("move", func(b *core.Board) error {
		var err error
		card, err = b.Move(id, stage)
		return err
	})
	if err != nil {
		return core.Card{}, err
	}
	return card, nil
}

// Remove deletes the card with the given id and persists.
func (s *BoardStore) Remove(id string) error {
	return s.mutate("remove", func(b *core.Board) error {
		return b.Remove(id)
	})
}

// Replace swaps the whole collection for cards and persists.
func (s *BoardStore) Replace(cards []core.Card) error {
	return s.mutate("replace", func(b *core.Board) error {
		*b = *core.NewBoard(cards)
		return nil
	})
}

// mutate applies fn under the write lock and persists. When the write fails
// the board is restored to its state before fn ran.
func (s *BoardStore) mutate(action string, fn func(b *core.Board) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.board.List()
	if err := fn(s.board); err != nil {
		return err
	}
	if err := s.persist(); err != nil {
		s.board = core.NewBoard(prev)
		log.Printf("component=board.store action=%s_rollback key=%s err=%v", action, s.key, err)
		return err
	}
	return nil
}

// persist writes the full collection. Callers hold the write lock.
func (s *BoardStore) persist() error {
	data, err := core.EncodeCards(s.board.List())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := s.slot.Save(s.key, data); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
