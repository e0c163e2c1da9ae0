package source

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightline-labs/callboard/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Open(":memory:"))
	require.NoError(t, s.InitSchema())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutAndFetch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "kixie_calls", Record{
		ID:     "c1",
		Fields: map[string]any{"agent": "Ana", "outcome": "connected", "duration": 120.0},
	}))
	require.NoError(t, s.Put(ctx, "kixie_calls", Record{
		ID:     "c2",
		Fields: map[string]any{"agent": "Ben", "outcome": "no-answer"},
	}))

	records, err := s.Fetch(ctx, "kixie_calls")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Insertion order is preserved.
	assert.Equal(t, "c1", records[0].ID)
	assert.Equal(t, "c2", records[1].ID)

	agent, ok := records[0].String("agent")
	assert.True(t, ok)
	assert.Equal(t, "Ana", agent)

	n, err := s.Count(ctx, "kixie_calls")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStore_UnknownCollectionIsEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	records, err := s.Fetch(ctx, "ghl_pipelines")
	require.NoError(t, err)
	assert.Empty(t, records)

	n, err := s.Count(ctx, "ghl_pipelines")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_PutAssignsID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "ghl_contacts", Record{
		Fields: map[string]any{"firstName": "Ana"},
	}))

	records, err := s.Fetch(ctx, "ghl_contacts")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].ID)
}

func TestStore_PutReplacesByID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "ghl_contacts", Record{
		ID: "x", Fields: map[string]any{"team": "east"},
	}))
	require.NoError(t, s.Put(ctx, "ghl_contacts", Record{
		ID: "x", Fields: map[string]any{"team": "west"},
	}))

	records, err := s.Fetch(ctx, "ghl_contacts")
	require.NoError(t, err)
	require.Len(t, records, 1)

	team, _ := records[0].String("team")
	assert.Equal(t, "west", team)
}

func TestStore_PutBatch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	batch := []Record{
		{Fields: map[string]any{"firstName": "Ana"}},
		{Fields: map[string]any{"firstName": "Ben"}},
		{Fields: map[string]any{"firstName": "Cid"}},
	}
	require.NoError(t, s.PutBatch(ctx, "ghl_contacts", batch))

	n, err := s.Count(ctx, "ghl_contacts")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStore_MalformedBodyKeepsRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body) VALUES (?, ?, ?)`,
		"kixie_calls", "bad", "{not json")
	require.NoError(t, err)

	records, err := s.Fetch(ctx, "kixie_calls")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "bad", records[0].ID)
	assert.Empty(t, records[0].Fields)
}

func TestStore_NotOpened(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Fetch(ctx, "kixie_calls")
	assert.Error(t, err)
	_, err = s.Count(ctx, "kixie_calls")
	assert.Error(t, err)
	assert.Error(t, s.Put(ctx, "kixie_calls", Record{}))
}

func TestResilient_DegradesToEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, body FROM documents").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnError(errors.New("disk I/O error"))

	broken := &Store{db: db}
	res := NewResilient(broken, testutil.NewTestLogger(t))

	records, err := res.Fetch(context.Background(), "kixie_calls")
	require.NoError(t, err)
	assert.Empty(t, records)

	n, err := res.Count(context.Background(), "kixie_calls")
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.ErrorContains(t, res.LastErr(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResilient_PassThroughOnSuccess(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "ghl_users", Record{ID: "u1", Fields: map[string]any{}}))

	res := NewResilient(s, nil)

	records, err := res.Fetch(ctx, "ghl_users")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	n, err := res.Count(ctx, "ghl_users")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, res.LastErr())
}
