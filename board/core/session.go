// ABOUTME: Session is the explicit editing/dragging state of a board view.
// ABOUTME: It holds card ids, never card values, and resolves them on use so deleted cards are harmless.
package core

import (
	"errors"
	"strings"
)

// Session tracks the currently open editor, a pending delete confirmation,
// and the active drag source for one board view. It performs mutations
// through a CardStore and is not safe for concurrent use.
type Session struct {
	store      CardStore
	open       bool
	form       Form
	confirming bool
	draggingID string
}

// NewSession creates a Session with nothing open and nothing dragged.
func NewSession(store CardStore) *Session {
	return &Session{store: store}
}

// OpenCreate opens a blank create form.
func (s *Session) OpenCreate() Form {
	s.open = true
	s.confirming = false
	s.form = BlankForm()
	return s.form
}

// OpenEdit opens the edit form for the card with the given id. Returns false
// and leaves the session untouched if the card doesn't exist.
func (s *Session) OpenEdit(id string) (Form, bool) {
	card, ok := s.store.Get(id)
	if !ok {
		return Form{}, false
	}
	s.open = true
	s.confirming = false
	s.form = FormFromCard(card)
	return s.form, true
}

// IsOpen reports whether an editor is open.
func (s *Session) IsOpen() bool {
	return s.open
}

// Form returns the form of the open editor.
func (s *Session) Form() Form {
	return s.form
}

// EditingID returns the id of the card being edited, if any.
func (s *Session) EditingID() (string, bool) {
	if !s.open || s.form.CardID == "" {
		return "", false
	}
	return s.form.CardID, true
}

// Close closes any open editor and drops a pending delete confirmation.
func (s *Session) Close() {
	s.open = false
	s.confirming = false
	s.form = Form{}
}

// Save validates and stores the form. A blank title keeps the editor open
// with a message and changes nothing. Otherwise the card is created or the
// edits merged into the existing card, and the editor closes. If the edited
// card was deleted in the meantime the editor closes and the not-found error
// is returned.
func (s *Session) Save(f Form) (Card, error) {
	if strings.TrimSpace(f.Title) == "" {
		f.Message = messageFor(ErrEmptyTitle)
		s.form = f
		s.open = true
		return Card{}, ErrEmptyTitle
	}

	var (
		card Card
		err  error
	)
	if f.Editing() {
		card, err = s.store.Update(f.CardID, f.Fields())
	} else {
		card, err = s.store.Create(f.Fields())
	}
	if err != nil {
		if IsNotFound(err) {
			s.Close()
			return Card{}, err
		}
		f.Message = messageFor(err)
		s.form = f
		return Card{}, err
	}
	s.Close()
	return card, nil
}

// RequestDelete asks for confirmation to delete the card being edited.
// Returns false when no existing card is open.
func (s *Session) RequestDelete() bool {
	if _, ok := s.EditingID(); !ok {
		return false
	}
	s.confirming = true
	return true
}

// Confirming reports whether a delete confirmation is pending.
func (s *Session) Confirming() bool {
	return s.confirming
}

// CancelDelete drops a pending confirmation and keeps the editor open.
func (s *Session) CancelDelete() {
	s.confirming = false
}

// ConfirmDelete removes the card being edited after a RequestDelete and
// closes the editor. Returns false when there was nothing to confirm or the
// card had already gone.
func (s *Session) ConfirmDelete() (bool, error) {
	id, ok := s.EditingID()
	if !s.confirming || !ok {
		return false, nil
	}
	err := s.store.Remove(id)
	if err != nil && !IsNotFound(err) {
		s.confirming = false
		return false, err
	}
	s.Close()
	return err == nil, nil
}

// BeginDrag marks the card with the given id as the active drag source.
// Returns false if the card doesn't exist.
func (s *Session) BeginDrag(id string) bool {
	if _, ok := s.store.Get(id); !ok {
		return false
	}
	s.draggingID = id
	return true
}

// Dragging returns the id of the active drag source, if any.
func (s *Session) Dragging() (string, bool) {
	return s.draggingID, s.draggingID != ""
}

// EndDrag clears the drag source without moving anything.
func (s *Session) EndDrag() {
	s.draggingID = ""
}

// Drop releases the drag source over the given stage. With no drag source,
// or when the dragged card no longer exists, it is a no-op returning false.
// The drag ends in every case.
func (s *Session) Drop(stage Stage) (bool, error) {
	id := s.draggingID
	s.draggingID = ""
	if id == "" {
		return false, nil
	}
	if _, err := s.store.Move(id, stage); err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// messageFor turns a save error into the text shown in the editor.
func messageFor(err error) string {
	switch {
	case errors.Is(err, ErrEmptyTitle):
		return "Please enter a title for the card"
	default:
		return err.Error()
	}
}
