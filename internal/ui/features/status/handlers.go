package status

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brightline-labs/callboard/internal/dashboard"
	"github.com/brightline-labs/callboard/internal/source"
	"github.com/brightline-labs/callboard/internal/ui/views"
)

// Handlers provides HTTP handlers for the status feature.
type Handlers struct {
	src      source.Source
	renderer *views.Renderer
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(src source.Source, renderer *views.Renderer, logger *slog.Logger) *Handlers {
	return &Handlers{src: src, renderer: renderer, logger: logger}
}

// StatusPage renders the status page with the four collection counts.
func (h *Handlers) StatusPage(w http.ResponseWriter, r *http.Request) {
	view, err := dashboard.BuildStatusView(r.Context(), h.src)
	if err != nil {
		// The resilient source only errors on rendering-level faults;
		// data faults already degraded to zeros.
		h.logger.Error("status view failed", "error", err)
	}

	data := views.PageData{Title: "Status", Active: "status", View: view}
	if err := h.renderer.Page(w, "status", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// APIStats returns the collection counts as JSON. Counts degrade to zero
// on fetch failure rather than producing an error response.
func (h *Handlers) APIStats(w http.ResponseWriter, r *http.Request) {
	view, err := dashboard.BuildStatusView(r.Context(), h.src)
	if err != nil {
		h.logger.Error("stats failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]int{
		"contacts":      view.Contacts,
		"opportunities": view.Opportunities,
		"pipelines":     view.Pipelines,
		"users":         view.Users,
	}); err != nil {
		h.logger.Error("failed to encode stats", "error", err)
	}
}
