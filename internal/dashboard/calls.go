package dashboard

import (
	"context"
	"time"

	"github.com/brightline-labs/callboard/internal/chart"
	"github.com/brightline-labs/callboard/internal/frame"
	"github.com/brightline-labs/callboard/internal/source"
)

const topAgents = 10

// CallsParams are the trigger parameters of a calls recompute. A zero
// Start and End disables date filtering.
type CallsParams struct {
	Start time.Time
	End   time.Time
}

// AgentRow is one row of the agent performance table.
type AgentRow struct {
	Agent       string `json:"agent"`
	Calls       int    `json:"calls"`
	Connections int    `json:"connections"`
	Rate        string `json:"connectionRate"`
	TalkTime    string `json:"talkTime"`
}

// CallsView is the rendered calls dashboard.
type CallsView struct {
	TotalCalls     int        `json:"totalCalls"`
	Connections    int        `json:"connections"`
	ConnectionRate string     `json:"connectionRate"`
	TalkTime       string     `json:"talkTime"`
	OutcomeChart   chart.Spec `json:"outcomeChart"`
	AgentChart     chart.Spec `json:"agentChart"`
	AgentTable     []AgentRow `json:"agentTable"`
	Start          time.Time  `json:"start,omitzero"`
	End            time.Time  `json:"end,omitzero"`
	GeneratedAt    time.Time  `json:"generatedAt"`
}

// BuildCallsView fetches the call collection and aggregates it into the
// calls dashboard view. Fetch failures surface as an empty view, never as
// an error page; the returned error is reserved for rendering faults.
func BuildCallsView(ctx context.Context, src source.Source, params CallsParams) (CallsView, error) {
	records, err := src.Fetch(ctx, CollectionCalls)
	if err != nil {
		return CallsView{}, err
	}

	f := frame.LoadWithColumns(records, callColumns)
	f = f.FilterByDate("callDate", params.Start, params.End)

	total := f.RowCount()
	connections := f.CountMatching("outcome", frame.ConnectedOutcomes)

	agentRows := f.GroupAgg("agent", frame.GroupAggSpec{
		PredicateColumn: "outcome",
		PredicateSet:    frame.ConnectedOutcomes,
		SumColumn:       "duration",
	})
	table := make([]AgentRow, 0, len(agentRows))
	for _, row := range agentRows {
		table = append(table, AgentRow{
			Agent:       row.Group,
			Calls:       row.Count,
			Connections: row.PredicateCount,
			Rate:        frame.Rate(row.PredicateCount, row.Count),
			TalkTime:    frame.FormatDuration(row.Sum),
		})
	}

	return CallsView{
		TotalCalls:     total,
		Connections:    connections,
		ConnectionRate: frame.Rate(connections, total),
		TalkTime:       frame.FormatDuration(f.SumNumeric("duration")),
		OutcomeChart:   chart.Pie("Call Outcomes", f.GroupCounts("outcome", 0)),
		AgentChart: chart.Bar("Calls by Agent", "Agent", "Calls",
			f.GroupCounts("agent", topAgents)),
		AgentTable:  table,
		Start:       params.Start,
		End:         params.End,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
