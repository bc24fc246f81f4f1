// ABOUTME: JSON handlers for the automation API: list, add, update, and auto-populate.
package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/2389-research/reelboard/board/core"
	"github.com/2389-research/reelboard/board/store"
	"github.com/go-chi/chi/v5"
)

type apiError struct {
	Error string `json:"error"`
}

// handleAPIListCards returns every card.
func (s *Server) handleAPIListCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.api.GetCards())
}

// handleAPICreateCard adds a card to the ideas stage.
func (s *Server) handleAPICreateCard(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}
	id, err := s.api.AddCard(fields)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleAPIUpdateCard merges fields into one card.
func (s *Server) handleAPIUpdateCard(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}
	updated, err := s.api.UpdateCard(chi.URLParam(r, "cardID"), fields)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	status := http.StatusOK
	if !updated {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]bool{"updated": updated})
}

// handleAPIAutoPopulate triggers the (inert) auto-populate hook.
func (s *Server) handleAPIAutoPopulate(w http.ResponseWriter, r *http.Request) {
	n, err := s.api.AutoPopulate(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"added": n})
}

func decodeFields(w http.ResponseWriter, r *http.Request) (core.CardFields, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var fields core.CardFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		if isMaxBytesError(err) {
			writeJSON(w, http.StatusRequestEntityTooLarge, apiError{Error: "request body too large"})
			return core.CardFields{}, false
		}
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body"})
		return core.CardFields{}, false
	}
	return fields, true
}

// writeAPIError maps store and validation errors to status codes.
func writeAPIError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrPersist):
		log.Printf("component=board.web action=api_persist_failed err=%v", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
	case errors.Is(err, core.ErrEmptyTitle),
		errors.Is(err, core.ErrInvalidStage),
		errors.Is(err, core.ErrInvalidPlatform),
		errors.Is(err, core.ErrInvalidVirality),
		errors.Is(err, core.ErrNegativeAnalytics):
		writeJSON(w, http.StatusUnprocessableEntity, apiError{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
	}
}
