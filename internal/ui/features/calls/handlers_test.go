package calls

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
		fixture.SessionStore,
		fixture.Notifier,
		fixture.Logger,
	)
	return handlers, fixture
}

func seedCalls(fixture *features.TestFixture) {
	fixture.Seed(dashboard.CollectionCalls,
		source.Record{ID: "k1", Fields: map[string]any{
			"agent": "Alice", "outcome": "connected", "duration": 120.0,
			"callDate": "2026-03-01 09:15:00",
		}},
		source.Record{ID: "k2", Fields: map[string]any{
			"agent": "Alice", "outcome": "no answer", "duration": 0.0,
			"callDate": "2026-03-01 10:00:00",
		}},
		source.Record{ID: "k3", Fields: map[string]any{
			"agent": "Bob", "outcome": "answered", "duration": 300.0,
			"callDate": "2026-03-02 14:30:00",
		}},
	)
}

func TestCallsPage(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	seedCalls(fixture)

	req := httptest.NewRequest(http.MethodGet, "/calls", nil)
	rec := httptest.NewRecorder()

	h.CallsPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, want := range []string{
		"<!doctype html>",
		"<title>Calls - Callboard</title>",
		"dashboard-content",
		"/calls/updates",
		"Connection Rate",
		"66.7%",
		"Alice",
		"Bob",
	} {
		assert.Contains(t, body, want, "response should contain %q", want)
	}
}

func TestCallsPage_FilterPersistsInSession(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	seedCalls(fixture)

	// First request applies the filter and sets the cookie.
	req := httptest.NewRequest(http.MethodGet, "/calls?start=2026-03-01&end=2026-03-01", nil)
	rec := httptest.NewRecorder()
	h.CallsPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="2026-03-01"`)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// A later request without query params restores the filter from the session.
	req = httptest.NewRequest(http.MethodGet, "/calls", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.CallsPage(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, `value="2026-03-01"`)
	// Only the two March 1st calls remain in range.
	assert.NotContains(t, body, "Bob")
}

func TestAPISummary(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	seedCalls(fixture)

	req := httptest.NewRequest(http.MethodGet, "/api/calls/summary", nil)
	rec := httptest.NewRecorder()

	h.APISummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var view dashboard.CallsView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 3, view.TotalCalls)
	assert.Equal(t, 2, view.Connections)
	assert.Equal(t, "66.7%", view.ConnectionRate)
	require.Len(t, view.AgentTable, 2)
	assert.Equal(t, "Alice", view.AgentTable[0].Agent)
}

func TestAPISummary_DateFilter(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	seedCalls(fixture)

	req := httptest.NewRequest(http.MethodGet, "/api/calls/summary?start=2026-03-02&end=2026-03-02", nil)
	rec := httptest.NewRecorder()

	h.APISummary(rec, req)

	var view dashboard.CallsView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 1, view.TotalCalls)
	require.Len(t, view.AgentTable, 1)
	assert.Equal(t, "Bob", view.AgentTable[0].Agent)
}

func TestParseParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/calls", nil)
	params, fromQuery := parseParams(req)
	assert.False(t, fromQuery)
	assert.True(t, params.Start.IsZero())

	req = httptest.NewRequest(http.MethodGet, "/calls?start=2026-03-01", nil)
	params, fromQuery = parseParams(req)
	assert.True(t, fromQuery)
	assert.Equal(t, "2026-03-01", params.Start.Format("2006-01-02"))
	assert.True(t, params.End.IsZero())

	// Garbage dates fall back to the zero value instead of failing.
	req = httptest.NewRequest(http.MethodGet, "/calls?start=not-a-date", nil)
	params, fromQuery = parseParams(req)
	assert.True(t, fromQuery)
	assert.True(t, params.Start.IsZero())
}
