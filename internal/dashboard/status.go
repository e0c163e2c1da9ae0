package dashboard

import (
	"context"
	"time"

	"github.com/brightline-labs/callboard/internal/source"
)

// StatusView is the rendered status page: one count per core collection
// plus the recompute timestamp.
type StatusView struct {
	Contacts      int       `json:"contacts"`
	Opportunities int       `json:"opportunities"`
	Pipelines     int       `json:"pipelines"`
	Users         int       `json:"users"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

// BuildStatusView counts the four core collections. Each count degrades
// independently, so one broken collection does not blank the page.
func BuildStatusView(ctx context.Context, src source.Source) (StatusView, error) {
	view := StatusView{GeneratedAt: time.Now().UTC()}

	var err error
	if view.Contacts, err = src.Count(ctx, CollectionContacts); err != nil {
		return view, err
	}
	if view.Opportunities, err = src.Count(ctx, CollectionOpportunities); err != nil {
		return view, err
	}
	if view.Pipelines, err = src.Count(ctx, CollectionPipelines); err != nil {
		return view, err
	}
	if view.Users, err = src.Count(ctx, CollectionUsers); err != nil {
		return view, err
	}
	return view, nil
}
