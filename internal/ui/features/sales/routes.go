// Package sales provides the sales pipeline dashboard feature.
package sales

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/brightline-labs/callboard/internal/source"
	"github.com/brightline-labs/callboard/internal/ui/notifier"
	"github.com/brightline-labs/callboard/internal/ui/views"
)

// SetupRoutes configures routes for the sales feature.
func SetupRoutes(
	router chi.Router,
	src source.Source,
	renderer *views.Renderer,
	notify *notifier.Notifier,
	logger *slog.Logger,
) {
	handlers := NewHandlers(src, renderer, notify, logger)

	router.Get("/sales", handlers.SalesPage)
	router.Get("/sales/updates", handlers.SalesUpdates)
	router.Get("/api/sales/summary", handlers.APISummary)
}
