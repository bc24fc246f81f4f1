// ABOUTME: HTTP server for the board: chi router, middleware, static assets, and lifecycle.
// ABOUTME: Serves the HTML board, export/import downloads, and the JSON automation API.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/2389-research/reelboard/board/automation"
	"github.com/2389-research/reelboard/board/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxImportBytes caps the size of an uploaded export file.
const maxImportBytes = 5 << 20

// Config holds the server settings.
type Config struct {
	Addr  string // listen address (default: "127.0.0.1:7771")
	Store *store.BoardStore
	// Now returns the current time; used for export filenames.
	Now func() time.Time
}

// Server serves the board over HTTP.
type Server struct {
	store     *store.BoardStore
	api       *automation.API
	templates *TemplateEngine
	router    chi.Router
	addr      string
	now       func() time.Time
}

// NewServer creates a Server over the given store.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("Store must not be nil")
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:7771"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	tmpl, err := NewTemplateEngine()
	if err != nil {
		return nil, fmt.Errorf("initializing templates: %w", err)
	}

	s := &Server{
		store:     cfg.Store,
		api:       automation.New(cfg.Store),
		templates: tmpl,
		addr:      cfg.Addr,
		now:       cfg.Now,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("component=board.web action=shutdown err=%v", err)
		}
	}()

	log.Printf("component=board.web action=listen addr=%s", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	// Browsers send Sec-Fetch-Site/Origin; cross-site writes get 403.
	r.Use(http.NewCrossOriginProtection().Handler)

	staticFS, err := fs.Sub(ContentFS, "static")
	if err != nil {
		log.Printf("component=board.web action=static_fs_failed err=%v", err)
	} else {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", s.handleBoard)
	r.Get("/health", s.handleHealth)

	r.Route("/cards", func(r chi.Router) {
		r.Get("/new", s.handleNewCard)
		r.Post("/", s.handleCreateCard)
		r.Route("/{cardID}", func(r chi.Router) {
			r.Get("/", s.handleEditCard)
			r.Post("/", s.handleSaveCard)
			r.Get("/delete", s.handleConfirmDelete)
			r.Post("/delete", s.handleDeleteCard)
			r.Post("/move", s.handleMoveCard)
		})
	})

	r.Get("/export", s.handleExport)
	r.With(middleware.AllowContentType("multipart/form-data", "application/json")).
		Post("/import", s.handleImport)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cards", s.handleAPIListCards)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/cards", s.handleAPICreateCard)
			r.Patch("/cards/{cardID}", s.handleAPIUpdateCard)
			r.Post("/auto-populate", s.handleAPIAutoPopulate)
		})
	})

	return r
}

// handleHealth returns a JSON health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("component=board.web action=write_json_failed err=%v", err)
	}
}

// writeHTMLError renders the error page, falling back to a bare message when
// the page itself fails to render.
func (s *Server) writeHTMLError(w http.ResponseWriter, status int, msg string) {
	data := PageData{Title: http.StatusText(status), Message: msg}
	if err := s.templates.Render(w, status, "error.html", data); err != nil {
		log.Printf("component=board.web action=render_error_page err=%v", err)
		writeHTMLError(w, status, msg)
	}
}

func writeHTMLError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `<p class="error-msg">%s</p>`, html.EscapeString(msg))
}

// isMaxBytesError reports whether err (or any error in its chain) is an
// *http.MaxBytesError, indicating the request body exceeded the size limit.
func isMaxBytesError(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
