package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/brightline-labs/callboard/internal/cli/config"
	"github.com/brightline-labs/callboard/internal/source"
	"github.com/brightline-labs/callboard/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port  int
	Watch bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		Long: `Start a local web server hosting the reporting dashboards.

The server provides:
- Sync status page with collection counts
- Call dashboard with date filtering and agent performance
- Sales dashboard with opportunity and pipeline breakdowns
- JSON APIs mirroring each dashboard

Open pages refresh automatically; a file watcher re-renders them as
soon as the sync job updates the database.`,
		Example: `  # Serve on the default port
  callboard serve

  # Serve on a custom port without the file watcher
  callboard serve --port 3000 --watch=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8090)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Watch the database for changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	// CLI flags override config file
	port := cfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	watch := cfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	watchPath := ""
	if watch && cfg.Database != ":memory:" {
		watchPath = store.Path()
	}

	serverCfg := ui.Config{
		Source:        source.NewResilient(store, logger),
		Port:          port,
		RefreshEvery:  time.Duration(cfg.RefreshInterval) * time.Second,
		WatchPath:     watchPath,
		SessionSecret: sessionSecret(cfg),
		Logger:        logger,
	}

	server := ui.NewServer(serverCfg)

	fmt.Printf("Starting dashboard server on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}

// sessionSecret resolves the cookie-signing secret.
func sessionSecret(cfg *config.Config) string {
	if cfg.SessionSecret != "" {
		return cfg.SessionSecret
	}
	// Default secret for development (nolint:gosec)
	return "callboard-dev-secret-change-in-production" //nolint:gosec
}
