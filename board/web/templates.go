// ABOUTME: TemplateEngine parses the embedded page templates and renders them inside the layout.
// ABOUTME: Script content previews are rendered from Markdown with goldmark.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/yuin/goldmark"
)

// pages are the full-page templates; each is parsed with the layout and partials.
var pages = []string{"board.html", "error.html"}

var partials = []string{
	"templates/card_form.html",
	"templates/confirm_delete.html",
}

// TemplateEngine holds one parsed template set per page.
type TemplateEngine struct {
	templates map[string]*template.Template
}

// NewTemplateEngine parses all embedded templates.
func NewTemplateEngine() (*TemplateEngine, error) {
	engine := &TemplateEngine{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		files := append([]string{"templates/layout.html", "templates/" + page}, partials...)
		t, err := template.New("layout.html").ParseFS(ContentFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		engine.templates[page] = t
	}
	return engine, nil
}

// Render executes the named page with data and writes it to w with the
// given status code. The page is buffered so a template error never leaves
// a half-written response.
func (e *TemplateEngine) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := e.RenderTo(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// RenderTo executes the named page with data into w.
func (e *TemplateEngine) RenderTo(w io.Writer, name string, data any) error {
	t, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// markdownToHTML renders script content for the edit preview. goldmark
// drops raw HTML from the input by default.
func markdownToHTML(input string) template.HTML {
	if input == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(input), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(input))
	}
	return template.HTML(buf.String())
}
