package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/brightline-labs/callboard/internal/dashboard"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show document counts per synced collection",
		Long: `Show the number of documents in each synced collection.

This is the terminal equivalent of the status page and its /api/stats
endpoint.`,
		Example: `  # Show counts as a table
  callboard stats

  # Show counts as JSON
  callboard stats --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd)
		},
	}
	return cmd
}

func runStats(cmd *cobra.Command) error {
	cfg := getConfig()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	collections := []string{
		dashboard.CollectionContacts,
		dashboard.CollectionOpportunities,
		dashboard.CollectionPipelines,
		dashboard.CollectionUsers,
		dashboard.CollectionCalls,
	}

	counts := make(map[string]int, len(collections))
	for _, c := range collections {
		n, err := store.Count(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", c, err)
		}
		counts[c] = n
	}

	w := cmd.OutOrStdout()
	switch cfg.OutputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	case "md", "markdown":
		renderStatsTable(w, collections, counts, true)
	default:
		renderStatsTable(w, collections, counts, false)
	}
	return nil
}

func renderStatsTable(w io.Writer, collections []string, counts map[string]int, markdown bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Collection", "Documents"})

	total := 0
	for _, c := range collections {
		t.AppendRow(table.Row{c, counts[c]})
		total += counts[c]
	}
	t.AppendFooter(table.Row{"Total", total})

	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}
