package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightline-labs/callboard/internal/dashboard"
	"github.com/brightline-labs/callboard/internal/source"
	"github.com/brightline-labs/callboard/internal/ui/features"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	handlers := NewHandlers(
		source.NewResilient(fixture.Store, fixture.Logger),
		fixture.Renderer,
		fixture.Logger,
	)
	return handlers, fixture
}

func TestStatusPage(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.Seed(dashboard.CollectionContacts,
		source.Record{ID: "c1", Fields: map[string]any{"firstName": "Ada"}},
		source.Record{ID: "c2", Fields: map[string]any{"firstName": "Grace"}},
	)
	fixture.Seed(dashboard.CollectionUsers,
		source.Record{ID: "u1", Fields: map[string]any{"name": "Sam"}},
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.StatusPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, want := range []string{
		"<!doctype html>",
		"<title>Status - Callboard</title>",
		"Total Contacts",
		"Last Updated",
	} {
		assert.Contains(t, body, want, "response should contain %q", want)
	}
}

func TestAPIStats(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.Seed(dashboard.CollectionContacts,
		source.Record{ID: "c1", Fields: map[string]any{"firstName": "Ada"}},
		source.Record{ID: "c2", Fields: map[string]any{"firstName": "Grace"}},
	)
	fixture.Seed(dashboard.CollectionPipelines,
		source.Record{ID: "p1", Fields: map[string]any{"name": "Main"}},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()

	h.APIStats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var stats map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats["contacts"])
	assert.Equal(t, 0, stats["opportunities"])
	assert.Equal(t, 1, stats["pipelines"])
	assert.Equal(t, 0, stats["users"])
}

func TestAPIStats_EmptyStore(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()

	h.APIStats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, map[string]int{
		"contacts": 0, "opportunities": 0, "pipelines": 0, "users": 0,
	}, stats)
}
