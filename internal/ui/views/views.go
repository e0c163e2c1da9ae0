// Package views renders the dashboard HTML pages from embedded templates.
// Pages share a layout shell; each page also exposes a named content
// fragment so SSE updates can re-render just the dashboard body.
package views

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// pages maps page name to its template file. Every page is parsed
// together with the layout.
var pages = map[string]string{
	"status": "templates/status.tmpl",
	"calls":  "templates/calls.tmpl",
	"sales":  "templates/sales.tmpl",
}

// PageData is the payload handed to every page template.
type PageData struct {
	Title  string
	Active string // nav highlight: "status", "calls", "sales"
	View   any
}

// Renderer holds the parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	// chartJSON encodes a chart spec for a data-spec attribute.
	"chartJSON": func(v any) (string, error) {
		raw, err := json.Marshal(v)
		return string(raw), err
	},
	"stamp": func(t time.Time) string {
		if t.IsZero() {
			return "—"
		}
		return t.Format("2006-01-02 15:04:05 MST")
	},
	"day": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for name, file := range pages {
		tmpl, err := template.New("layout.tmpl").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.tmpl", file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s templates: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

// Page writes the full HTML page.
func (r *Renderer) Page(w io.Writer, page string, data PageData) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page: %s", page)
	}
	return tmpl.ExecuteTemplate(w, "layout.tmpl", data)
}

// Fragment renders the page's dashboard content fragment, the element SSE
// updates patch into the open page.
func (r *Renderer) Fragment(page string, data PageData) (string, error) {
	tmpl, ok := r.templates[page]
	if !ok {
		return "", fmt.Errorf("unknown page: %s", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "content", data); err != nil {
		return "", fmt.Errorf("failed to render %s fragment: %w", page, err)
	}
	return buf.String(), nil
}
