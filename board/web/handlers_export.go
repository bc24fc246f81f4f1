// ABOUTME: Handlers for downloading the board as JSON, YAML, or Markdown and importing a JSON export.
// ABOUTME: Import replaces the whole collection through the persisted store.
package web

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/2389-research/reelboard/board/export"
)

// handleExport sends the board as a dated attachment.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := export.Render(format, s.store.Cards())
	if err != nil {
		log.Printf("component=board.web action=export_failed format=%s err=%v", format, err)
		s.writeHTMLError(w, http.StatusInternalServerError, fmt.Sprintf("Export failed: %v", err))
		return
	}

	filename := export.Filename(format, s.now())
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	log.Printf("component=board.web action=export format=%s bytes=%d", format, len(data))
}

// handleImport replaces the board with the cards of an uploaded JSON export.
// Accepts a multipart upload in the "file" field or a raw JSON body.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)

	data, err := readImport(r)
	if err != nil {
		if isMaxBytesError(err) {
			s.writeHTMLError(w, http.StatusRequestEntityTooLarge, "The import file is too large.")
			return
		}
		s.writeHTMLError(w, http.StatusBadRequest, fmt.Sprintf("Could not read the import: %v", err))
		return
	}

	cards, err := export.ImportJSON(data)
	if err != nil {
		s.writeHTMLError(w, http.StatusBadRequest, "The file is not a board export.")
		return
	}
	if err := s.store.Replace(cards); err != nil {
		log.Printf("component=board.web action=import_failed err=%v", err)
		s.writeHTMLError(w, http.StatusInternalServerError, fmt.Sprintf("Could not save the board: %v", err))
		return
	}

	log.Printf("component=board.web action=import cards=%d", len(cards))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func readImport(r *http.Request) ([]byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return nil, err
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, errors.New("no file uploaded")
		}
		defer func() { _ = f.Close() }()
		return io.ReadAll(f)
	}
	return io.ReadAll(r.Body)
}
