// Package status provides the collection status page and its JSON API.
package status

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/brightline-labs/callboard/internal/source"
	"github.com/brightline-labs/callboard/internal/ui/views"
)

// SetupRoutes configures routes for the status feature.
func SetupRoutes(router chi.Router, src source.Source, renderer *views.Renderer, logger *slog.Logger) {
	handlers := NewHandlers(src, renderer, logger)

	router.Get("/", handlers.StatusPage)
	router.Get("/api/stats", handlers.APIStats)
}
