// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"log/slog"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/brightline-labs/callboard/internal/source"
	"github.com/brightline-labs/callboard/internal/testutil"
	"github.com/brightline-labs/callboard/internal/ui/notifier"
	"github.com/brightline-labs/callboard/internal/ui/views"
)

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Store        *source.Store
	Renderer     *views.Renderer
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore
	Logger       *slog.Logger

	t *testing.T
}

// SetupTestFixture creates a complete test fixture with an in-memory
// document store, the parsed templates, and a notifier.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	store := source.NewStore()
	require.NoError(t, store.Open(":memory:"))
	require.NoError(t, store.InitSchema())
	t.Cleanup(func() {
		_ = store.Close()
	})

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	return &TestFixture{
		Store:        store,
		Renderer:     renderer,
		Notifier:     notifier.New(),
		SessionStore: sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!")),
		Logger:       testutil.NewTestLogger(t),
		t:            t,
	}
}

// Seed loads records into a collection of the fixture store.
func (f *TestFixture) Seed(collection string, records ...source.Record) {
	f.t.Helper()
	require.NoError(f.t, f.Store.PutBatch(context.Background(), collection, records))
}
