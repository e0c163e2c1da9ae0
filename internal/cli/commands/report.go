package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/brightline-labs/callboard/internal/cli/config"
	"github.com/brightline-labs/callboard/internal/dashboard"
	"github.com/brightline-labs/callboard/internal/source"
)

const reportDateLayout = "2006-01-02"

// ReportOptions holds options for the report command.
type ReportOptions struct {
	Start string
	End   string
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report <calls|sales>",
		Short: "Print a dashboard as a terminal report",
		Long: `Print the calls or sales dashboard as a terminal report.

The report runs the same aggregation as the web dashboard and renders
the KPIs and tables for the terminal.`,
		Example: `  # Call report for a date range
  callboard report calls --start 2026-03-01 --end 2026-03-31

  # Sales report as JSON
  callboard report sales --output json`,
		ValidArgs: []string{"calls", "sales"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Start, "start", "", "Start date (YYYY-MM-DD, calls only)")
	cmd.Flags().StringVar(&opts.End, "end", "", "End date (YYYY-MM-DD, calls only)")

	return cmd
}

func runReport(cmd *cobra.Command, kind string, opts *ReportOptions) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	src := source.NewResilient(store, logger)
	w := cmd.OutOrStdout()

	switch kind {
	case "calls":
		params, err := parseRange(opts)
		if err != nil {
			return err
		}
		view, err := dashboard.BuildCallsView(cmd.Context(), src, params)
		if err != nil {
			return err
		}
		if cfg.OutputFormat == "json" {
			return renderViewJSON(w, view)
		}
		renderCallsReport(w, view, cfg.OutputFormat)
	case "sales":
		view, err := dashboard.BuildSalesView(cmd.Context(), src)
		if err != nil {
			return err
		}
		if cfg.OutputFormat == "json" {
			return renderViewJSON(w, view)
		}
		renderSalesReport(w, view, cfg.OutputFormat)
	}
	return nil
}

func parseRange(opts *ReportOptions) (dashboard.CallsParams, error) {
	var params dashboard.CallsParams
	if opts.Start != "" {
		t, err := time.Parse(reportDateLayout, opts.Start)
		if err != nil {
			return params, fmt.Errorf("invalid --start date %q: %w", opts.Start, err)
		}
		params.Start = t
	}
	if opts.End != "" {
		t, err := time.Parse(reportDateLayout, opts.End)
		if err != nil {
			return params, fmt.Errorf("invalid --end date %q: %w", opts.End, err)
		}
		params.End = t
	}
	return params, nil
}

func renderViewJSON(w io.Writer, view any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

func renderCallsReport(w io.Writer, view dashboard.CallsView, format string) {
	fmt.Fprintln(w, "Call Report")
	if !view.Start.IsZero() || !view.End.IsZero() {
		fmt.Fprintf(w, "Range: %s to %s\n",
			orDash(view.Start), orDash(view.End))
	}
	fmt.Fprintf(w, "Total Calls: %d\n", view.TotalCalls)
	fmt.Fprintf(w, "Connections: %d (%s)\n", view.Connections, view.ConnectionRate)
	fmt.Fprintf(w, "Total Talk Time: %s\n\n", view.TalkTime)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Agent", "Calls", "Connections", "Rate", "Talk Time"})
	for _, row := range view.AgentTable {
		t.AppendRow(table.Row{row.Agent, row.Calls, row.Connections, row.Rate, row.TalkTime})
	}
	if format == "md" || format == "markdown" {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

func renderSalesReport(w io.Writer, view dashboard.SalesView, format string) {
	fmt.Fprintln(w, "Sales Report")
	fmt.Fprintf(w, "Total Opportunities: %d\n", view.TotalOpportunities)
	fmt.Fprintf(w, "With Setter: %d\n", view.WithSetter)
	fmt.Fprintf(w, "Unique Setters: %d\n", view.UniqueSetters)
	fmt.Fprintf(w, "Teams Active: %d\n\n", view.TeamsActive)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(view.TableColumns))
	for i, col := range view.TableColumns {
		header[i] = col
	}
	t.AppendHeader(header)
	for _, r := range view.TableRows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}
		t.AppendRow(row)
	}
	if format == "md" || format == "markdown" {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

func orDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(reportDateLayout)
}
