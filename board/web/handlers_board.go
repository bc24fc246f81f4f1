// ABOUTME: HTML handlers for the board: viewing, creating, editing, moving, and deleting cards.
// ABOUTME: Each request drives a core.Session so validation and stale-id handling match the terminal board.
package web

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/2389-research/reelboard/board/core"
	"github.com/2389-research/reelboard/board/store"
	"github.com/2389-research/reelboard/board/view"
	"github.com/go-chi/chi/v5"
)

// PageData is the view-model for every page.
type PageData struct {
	Title   string
	Board   view.Board
	Form    *FormData
	Confirm *ConfirmData
	Message string
}

// FormData is the view-model for the card editor modal.
type FormData struct {
	core.Form
	Action      string
	ContentHTML template.HTML
	Platforms   []core.Platform
	Stages      []core.Stage
}

// ConfirmData is the view-model for the delete confirmation dialog.
type ConfirmData struct {
	CardID string
	Title  string
}

func newFormData(f core.Form) *FormData {
	action := "/cards"
	if f.Editing() {
		action = "/cards/" + f.CardID
	}
	return &FormData{
		Form:      f,
		Action:    action,
		Platforms: core.Platforms,
		Stages:    core.Stages,
	}
}

// renderBoard renders the board page with the current cards and any modal in data.
func (s *Server) renderBoard(w http.ResponseWriter, status int, data PageData) {
	if data.Title == "" {
		data.Title = "Board"
	}
	data.Board = view.BuildBoard(s.store.Cards())
	if err := s.templates.Render(w, status, "board.html", data); err != nil {
		log.Printf("component=board.web action=render_board err=%v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// handleBoard renders the five columns.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	s.renderBoard(w, http.StatusOK, PageData{})
}

// handleNewCard renders the board with a blank create form.
func (s *Server) handleNewCard(w http.ResponseWriter, r *http.Request) {
	s.renderBoard(w, http.StatusOK, PageData{Title: core.HeadingCreate, Form: newFormData(core.BlankForm())})
}

// handleCreateCard creates a card from the submitted form.
func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}

	sess := core.NewSession(s.store)
	form := formFromRequest(r, sess.OpenCreate())
	card, err := sess.Save(form)
	if err != nil {
		s.saveFailed(w, sess, err)
		return
	}
	log.Printf("component=board.web action=create_card card_id=%s", card.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleEditCard renders the board with the edit form for one card.
func (s *Server) handleEditCard(w http.ResponseWriter, r *http.Request) {
	sess := core.NewSession(s.store)
	form, ok := sess.OpenEdit(chi.URLParam(r, "cardID"))
	if !ok {
		s.writeHTMLError(w, http.StatusNotFound, "Card not found.")
		return
	}
	fd := newFormData(form)
	fd.ContentHTML = markdownToHTML(form.Content)
	s.renderBoard(w, http.StatusOK, PageData{Title: core.HeadingEdit, Form: fd})
}

// handleSaveCard merges the submitted edits into an existing card.
func (s *Server) handleSaveCard(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}

	sess := core.NewSession(s.store)
	current, ok := sess.OpenEdit(chi.URLParam(r, "cardID"))
	if !ok {
		s.writeHTMLError(w, http.StatusNotFound, "Card not found.")
		return
	}
	card, err := sess.Save(formFromRequest(r, current))
	if err != nil {
		s.saveFailed(w, sess, err)
		return
	}
	log.Printf("component=board.web action=update_card card_id=%s", card.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// saveFailed reports a failed Session.Save: the form again with its message
// for input errors, an error page otherwise.
func (s *Server) saveFailed(w http.ResponseWriter, sess *core.Session, err error) {
	switch {
	case core.IsNotFound(err):
		s.writeHTMLError(w, http.StatusNotFound, "Card not found.")
	case errors.Is(err, store.ErrPersist):
		log.Printf("component=board.web action=save_failed err=%v", err)
		s.writeHTMLError(w, http.StatusInternalServerError, fmt.Sprintf("Could not save the board: %v", err))
	default:
		form := sess.Form()
		s.renderBoard(w, http.StatusUnprocessableEntity, PageData{Title: form.Heading, Form: newFormData(form)})
	}
}

// handleConfirmDelete asks for confirmation before deleting.
func (s *Server) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	card, ok := s.store.Get(chi.URLParam(r, "cardID"))
	if !ok {
		s.writeHTMLError(w, http.StatusNotFound, "Card not found.")
		return
	}
	s.renderBoard(w, http.StatusOK, PageData{
		Title:   "Delete card",
		Confirm: &ConfirmData{CardID: card.ID, Title: card.Title},
	})
}

// handleDeleteCard deletes the card when the confirmation was given.
func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	id := chi.URLParam(r, "cardID")

	sess := core.NewSession(s.store)
	if _, ok := sess.OpenEdit(id); !ok {
		s.writeHTMLError(w, http.StatusNotFound, "Card not found.")
		return
	}
	if r.FormValue("confirm") != "yes" {
		http.Redirect(w, r, "/cards/"+id, http.StatusSeeOther)
		return
	}

	sess.RequestDelete()
	deleted, err := sess.ConfirmDelete()
	if err != nil {
		log.Printf("component=board.web action=delete_failed card_id=%s err=%v", id, err)
		s.writeHTMLError(w, http.StatusInternalServerError, fmt.Sprintf("Could not save the board: %v", err))
		return
	}
	if deleted {
		log.Printf("component=board.web action=delete_card card_id=%s", id)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleMoveCard is the drop target: it reassigns the card to the submitted
// stage. Script requests get 204; plain form posts are redirected to the board.
func (s *Server) handleMoveCard(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	id := chi.URLParam(r, "cardID")

	stage, err := core.ParseStage(r.FormValue("stage"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := core.NewSession(s.store)
	if !sess.BeginDrag(id) {
		log.Printf("component=board.web action=move_card_missing card_id=%s", id)
		s.moved(w, r)
		return
	}
	if _, err := sess.Drop(stage); err != nil {
		log.Printf("component=board.web action=move_failed card_id=%s err=%v", id, err)
		http.Error(w, fmt.Sprintf("Could not save the board: %v", err), http.StatusInternalServerError)
		return
	}
	log.Printf("component=board.web action=move_card card_id=%s stage=%s", id, stage)
	s.moved(w, r)
}

func (s *Server) moved(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Requested-With") == "fetch" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseForm parses a capped url-encoded body. Returns false after writing
// an error response.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := r.ParseForm(); err != nil {
		if isMaxBytesError(err) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "bad request", http.StatusBadRequest)
		return false
	}
	return true
}

// formFromRequest overlays submitted editor inputs on base. Inputs that are
// absent keep the base value; numbers are parsed leniently.
func formFromRequest(r *http.Request, base core.Form) core.Form {
	f := base
	if v, ok := formValue(r, "title"); ok {
		f.Title = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "hook"); ok {
		f.Hook = v
	}
	if v, ok := formValue(r, "platform"); ok {
		f.Platform = core.ParsePlatformOrDefault(v)
	}
	if v, ok := formValue(r, "viralityScore"); ok {
		f.ViralityScore = core.ParseScore(v)
	}
	if v, ok := formValue(r, "content"); ok {
		f.Content = v
	}
	if v, ok := formValue(r, "notes"); ok {
		f.Notes = v
	}
	if v, ok := formValue(r, "views"); ok {
		f.Analytics.Views = core.ParseCount(v)
	}
	if v, ok := formValue(r, "likes"); ok {
		f.Analytics.Likes = core.ParseCount(v)
	}
	if v, ok := formValue(r, "comments"); ok {
		f.Analytics.Comments = core.ParseCount(v)
	}
	if v, ok := formValue(r, "shares"); ok {
		f.Analytics.Shares = core.ParseCount(v)
	}
	return f
}

func formValue(r *http.Request, key string) (string, bool) {
	vs, ok := r.PostForm[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
