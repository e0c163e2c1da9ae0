package dashboard

import (
	"context"
	"time"

	"github.com/brightline-labs/callboard/internal/chart"
	"github.com/brightline-labs/callboard/internal/frame"
	"github.com/brightline-labs/callboard/internal/source"
)

const (
	topSetters       = 15
	topReps          = 15
	topPipelineTags  = 12
	topOpportunities = 25
)

// opportunityColumns are the fields shown in the top-opportunities table.
var opportunityColumns = []string{
	"firstName", "lastName", "phone", "team", "setter", "leadSource",
}

// SalesView is the rendered opportunities dashboard.
type SalesView struct {
	TotalOpportunities int `json:"totalOpportunities"`
	WithSetter         int `json:"withSetter"`
	UniqueSetters      int `json:"uniqueSetters"`
	TeamsActive        int `json:"teamsActive"`

	SetterChart     chart.Spec `json:"setterChart"`
	TeamChart       chart.Spec `json:"teamChart"`
	SourceChart     chart.Spec `json:"sourceChart"`
	PipelineChart   chart.Spec `json:"pipelineChart"`
	RepChart        chart.Spec `json:"repChart"`
	SourceTeamChart chart.Spec `json:"sourceTeamChart"`

	TableColumns []string   `json:"tableColumns"`
	TableRows    [][]string `json:"tableRows"`
	GeneratedAt  time.Time  `json:"generatedAt"`
}

// BuildSalesView fetches the contact collection and aggregates it into the
// opportunities dashboard view.
func BuildSalesView(ctx context.Context, src source.Source) (SalesView, error) {
	records, err := src.Fetch(ctx, CollectionContacts)
	if err != nil {
		return SalesView{}, err
	}

	f := frame.LoadWithColumns(records, contactColumns)

	return SalesView{
		TotalOpportunities: f.RowCount(),
		WithSetter:         f.CountNonNull("setter"),
		UniqueSetters:      f.DistinctCount("setter"),
		TeamsActive:        f.DistinctCount("team"),

		SetterChart: chart.Bar("Opportunities by Setter", "Setter", "Opportunities",
			f.GroupCounts("setter", topSetters)),
		TeamChart: chart.Bar("Opportunities by Team", "Team", "Opportunities",
			f.GroupCounts("team", 0)),
		SourceChart: chart.Pie("Lead Sources Distribution",
			f.GroupCounts("leadSource", 0)),
		PipelineChart: chart.Funnel("Pipeline Funnel (by Tag)",
			f.ExplodeTagCounts("tags", topPipelineTags)),
		RepChart: chart.Bar("Top Reps by Opportunities", "Rep", "Opportunities",
			f.GroupCounts("rep", topReps)),
		SourceTeamChart: chart.GroupedBar("Lead Sources by Team", "Lead Source",
			f.CrossTab("leadSource", "team")),

		TableColumns: opportunityColumns,
		TableRows: chart.DisplayTable(
			f.FilterNonNull("setter"), opportunityColumns, topOpportunities),
		GeneratedAt: time.Now().UTC(),
	}, nil
}
