// Package router sets up HTTP routes for the dashboard server.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/brightline-labs/callboard/internal/source"
	callsFeature "github.com/brightline-labs/callboard/internal/ui/features/calls"
	salesFeature "github.com/brightline-labs/callboard/internal/ui/features/sales"
	statusFeature "github.com/brightline-labs/callboard/internal/ui/features/status"
	"github.com/brightline-labs/callboard/internal/ui/notifier"
	"github.com/brightline-labs/callboard/internal/ui/resources"
	"github.com/brightline-labs/callboard/internal/ui/views"
)

// SetupRoutes configures all routes for the dashboard server.
func SetupRoutes(
	router chi.Router,
	src source.Source,
	renderer *views.Renderer,
	sessionStore *sessions.CookieStore,
	notify *notifier.Notifier,
	logger *slog.Logger,
) {
	// Static assets
	router.Handle("/static/*", resources.Handler())

	// A manual refresh re-renders every open dashboard page.
	router.Post("/refresh", func(w http.ResponseWriter, _ *http.Request) {
		notify.Broadcast()
		w.WriteHeader(http.StatusNoContent)
	})

	// Feature routes
	statusFeature.SetupRoutes(router, src, renderer, logger)
	callsFeature.SetupRoutes(router, src, renderer, sessionStore, notify, logger)
	salesFeature.SetupRoutes(router, src, renderer, notify, logger)
}
