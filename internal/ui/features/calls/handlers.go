package calls

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/brightline-labs/callboard/internal/dashboard"
	"github.com/brightline-labs/callboard/internal/source"
	"github.com/brightline-labs/callboard/internal/ui/notifier"
	"github.com/brightline-labs/callboard/internal/ui/views"
)

const (
	sessionName = "callboard"
	dateLayout  = "2006-01-02"
)

// Handlers provides HTTP handlers for the calls feature.
type Handlers struct {
	src          source.Source
	renderer     *views.Renderer
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(src source.Source, renderer *views.Renderer, sessionStore sessions.Store, notify *notifier.Notifier, logger *slog.Logger) *Handlers {
	return &Handlers{
		src:          src,
		renderer:     renderer,
		sessionStore: sessionStore,
		notifier:     notify,
		logger:       logger,
	}
}

// CallsPage renders the calls dashboard with full content.
func (h *Handlers) CallsPage(w http.ResponseWriter, r *http.Request) {
	params := h.resolveParams(w, r)

	view, err := dashboard.BuildCallsView(r.Context(), h.src, params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := views.PageData{Title: "Calls", Active: "calls", View: view}
	if err := h.renderer.Page(w, "calls", data); err != nil {
		h.logger.Error("render calls page", "error", err)
	}
}

// CallsUpdates is the long-lived SSE endpoint for the calls dashboard.
// It subscribes to updates and re-renders when a refresh is broadcast.
// The initial state is rendered by CallsPage, so nothing is sent up front.
func (h *Handlers) CallsUpdates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	params := h.sessionParams(r)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := h.sendCallsView(ctx, sse, params); err != nil {
				_ = sse.ConsoleError(err)
				// Keep the stream open and retry on the next update.
			}
		}
	}
}

// APISummary serves the calls dashboard as JSON.
func (h *Handlers) APISummary(w http.ResponseWriter, r *http.Request) {
	params, _ := parseParams(r)

	view, err := dashboard.BuildCallsView(r.Context(), h.src, params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		h.logger.Error("encode calls summary", "error", err)
	}
}

// sendCallsView rebuilds the calls view and patches it into the page.
func (h *Handlers) sendCallsView(ctx context.Context, sse *datastar.ServerSentEventGenerator, params dashboard.CallsParams) error {
	view, err := dashboard.BuildCallsView(ctx, h.src, params)
	if err != nil {
		return err
	}

	data := views.PageData{Title: "Calls", Active: "calls", View: view}
	fragment, err := h.renderer.Fragment("calls", data)
	if err != nil {
		return err
	}
	return sse.PatchElements(fragment)
}

// resolveParams reads the date filter from the query string, falling back to
// the session copy, and persists whatever was chosen so the SSE stream sees
// the same range.
func (h *Handlers) resolveParams(w http.ResponseWriter, r *http.Request) dashboard.CallsParams {
	params, fromQuery := parseParams(r)
	if !fromQuery {
		return h.sessionParams(r)
	}

	session, err := h.sessionStore.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie yields a fresh session, keep going.
		h.logger.Debug("decode session", "error", err)
	}
	session.Values["calls_start"] = formatDate(params.Start)
	session.Values["calls_end"] = formatDate(params.End)
	if err := session.Save(r, w); err != nil {
		h.logger.Warn("save session", "error", err)
	}
	return params
}

// sessionParams restores the persisted date filter, if any.
func (h *Handlers) sessionParams(r *http.Request) dashboard.CallsParams {
	session, err := h.sessionStore.Get(r, sessionName)
	if err != nil {
		return dashboard.CallsParams{}
	}

	var params dashboard.CallsParams
	if raw, ok := session.Values["calls_start"].(string); ok {
		params.Start, _ = time.Parse(dateLayout, raw)
	}
	if raw, ok := session.Values["calls_end"].(string); ok {
		params.End, _ = time.Parse(dateLayout, raw)
	}
	return params
}

// parseParams reads start/end query parameters. The second return reports
// whether either parameter was present in the query string.
func parseParams(r *http.Request) (dashboard.CallsParams, bool) {
	query := r.URL.Query()
	if !query.Has("start") && !query.Has("end") {
		return dashboard.CallsParams{}, false
	}

	var params dashboard.CallsParams
	if raw := query.Get("start"); raw != "" {
		params.Start, _ = time.Parse(dateLayout, raw)
	}
	if raw := query.Get("end"); raw != "" {
		params.End, _ = time.Parse(dateLayout, raw)
	}
	return params, true
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
