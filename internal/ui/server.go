// Package ui provides the web server for the reporting dashboards.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/brightline-labs/callboard/internal/source"
	"github.com/brightline-labs/callboard/internal/ui/notifier"
	"github.com/brightline-labs/callboard/internal/ui/router"
	"github.com/brightline-labs/callboard/internal/ui/views"
)

// Server is the dashboard web server.
type Server struct {
	src          source.Source
	sessionStore *sessions.CookieStore
	port         int
	refreshEvery time.Duration
	watchPath    string
	logger       *slog.Logger
	notifier     *notifier.Notifier
}

// Config holds configuration for the dashboard server.
type Config struct {
	Source        source.Source
	Port          int
	RefreshEvery  time.Duration
	WatchPath     string // database file to watch, empty disables watching
	SessionSecret string
	Logger        *slog.Logger
}

// NewServer creates a new dashboard server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return &Server{
		src:          cfg.Source,
		sessionStore: sessionStore,
		port:         cfg.Port,
		refreshEvery: cfg.RefreshEvery,
		watchPath:    cfg.WatchPath,
		logger:       cfg.Logger,
		notifier:     notifier.New(),
	}
}

// Serve starts the dashboard server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting dashboard server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	renderer, err := views.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	router.SetupRoutes(r, s.src, renderer, s.sessionStore, s.notifier, s.logger)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Periodic refresh keeps open dashboards current.
	if s.refreshEvery > 0 {
		eg.Go(func() error {
			return s.refreshLoop(egctx)
		})
	}

	// Re-render as soon as the database file changes.
	if s.watchPath != "" {
		eg.Go(func() error {
			return s.watchDatabase(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dashboard server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// refreshLoop broadcasts a re-render to all SSE clients on a fixed interval.
func (s *Server) refreshLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.notifier.Broadcast()
		}
	}
}

// watchDatabase watches the database file and broadcasts on writes.
// SQLite rewrites the file in place, so the parent directory is watched
// and events are filtered to the database path.
func (s *Server) watchDatabase(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(s.watchPath)); err != nil {
		s.logger.Error("failed to watch database directory", "error", err)
		// Don't fail - continue without watching
		return nil
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			base := filepath.Base(s.watchPath)
			name := filepath.Base(event.Name)
			if name != base && name != base+"-wal" {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("database changed, refreshing dashboards", "file", event.Name)
				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
