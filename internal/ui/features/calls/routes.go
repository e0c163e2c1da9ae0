// Package calls provides the call-center dashboard feature.
package calls

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/brightline-labs/callboard/internal/source"
	"github.com/brightline-labs/callboard/internal/ui/notifier"
	"github.com/brightline-labs/callboard/internal/ui/views"
)

// SetupRoutes configures routes for the calls feature.
func SetupRoutes(
	router chi.Router,
	src source.Source,
	renderer *views.Renderer,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	logger *slog.Logger,
) {
	handlers := NewHandlers(src, renderer, sessionStore, notify, logger)

	router.Get("/calls", handlers.CallsPage)
	router.Get("/calls/updates", handlers.CallsUpdates)
	router.Get("/api/calls/summary", handlers.APISummary)
}
