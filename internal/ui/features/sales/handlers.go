package sales

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/brightline-labs/callboard/internal/dashboard"
	"github.com/brightline-labs/callboard/internal/source"
	"github.com/brightline-labs/callboard/internal/ui/notifier"
	"github.com/brightline-labs/callboard/internal/ui/views"
)

// Handlers provides HTTP handlers for the sales feature.
type Handlers struct {
	src      source.Source
	renderer *views.Renderer
	notifier *notifier.Notifier
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(src source.Source, renderer *views.Renderer, notify *notifier.Notifier, logger *slog.Logger) *Handlers {
	return &Handlers{
		src:      src,
		renderer: renderer,
		notifier: notify,
		logger:   logger,
	}
}

// SalesPage renders the sales dashboard with full content.
func (h *Handlers) SalesPage(w http.ResponseWriter, r *http.Request) {
	view, err := dashboard.BuildSalesView(r.Context(), h.src)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := views.PageData{Title: "Sales", Active: "sales", View: view}
	if err := h.renderer.Page(w, "sales", data); err != nil {
		h.logger.Error("render sales page", "error", err)
	}
}

// SalesUpdates is the long-lived SSE endpoint for the sales dashboard.
// It subscribes to updates and re-renders when a refresh is broadcast.
func (h *Handlers) SalesUpdates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := h.sendSalesView(ctx, sse); err != nil {
				_ = sse.ConsoleError(err)
				// Keep the stream open and retry on the next update.
			}
		}
	}
}

// APISummary serves the sales dashboard as JSON.
func (h *Handlers) APISummary(w http.ResponseWriter, r *http.Request) {
	view, err := dashboard.BuildSalesView(r.Context(), h.src)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		h.logger.Error("encode sales summary", "error", err)
	}
}

// sendSalesView rebuilds the sales view and patches it into the page.
func (h *Handlers) sendSalesView(ctx context.Context, sse *datastar.ServerSentEventGenerator) error {
	view, err := dashboard.BuildSalesView(ctx, h.src)
	if err != nil {
		return err
	}

	data := views.PageData{Title: "Sales", Active: "sales", View: view}
	fragment, err := h.renderer.Fragment("sales", data)
	if err != nil {
		return err
	}
	return sse.PatchElements(fragment)
}
