// Package dashboard builds the rendered views behind each reporting page.
// Every build function runs one full fetch-load-aggregate-present cycle
// against the record source and returns a self-contained view; nothing is
// cached between triggers, so concurrent recomputes are independent.
package dashboard

// Collection names as synced from the upstream CRM and dialer.
const (
	CollectionContacts      = "ghl_contacts"
	CollectionOpportunities = "ghl_opportunities"
	CollectionPipelines     = "ghl_pipelines"
	CollectionUsers         = "ghl_users"
	CollectionCalls         = "kixie_calls"
)

// Default column sets, so an empty fetch still yields frames with the
// columns the views reference.
var (
	callColumns = []string{
		"id", "agent", "phoneNumber", "direction", "outcome",
		"duration", "callDate", "callEndDate", "receivedAt",
	}
	contactColumns = []string{
		"id", "firstName", "lastName", "phone", "email", "team",
		"rep", "leadSource", "type", "syncedAt", "setter", "tags",
	}
)
