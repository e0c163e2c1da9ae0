package source

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store is a SQLite-backed document store implementing Source.
// Each document is stored as a JSON body keyed by (collection, id).
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new store instance. Call Open before use.
func NewStore() *Store {
	return &Store{}
}

// Open opens a connection to the SQLite database.
// Use ":memory:" for an in-memory database.
func (s *Store) Open(path string) error {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL", path)
	} else {
		dsn = ":memory:?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InitSchema initializes the database schema.
func (s *Store) InitSchema() error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Fetch returns all documents in a collection, in insertion order.
// An unknown collection yields an empty slice, not an error.
func (s *Store) Fetch(ctx context.Context, collection string) ([]Record, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body FROM documents WHERE collection = ? ORDER BY rowid`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collection %s: %w", collection, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}

		fields := map[string]any{}
		if err := json.Unmarshal([]byte(body), &fields); err != nil {
			// Malformed body: keep the row with no fields so counts stay honest.
			fields = map[string]any{}
		}
		records = append(records, Record{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	return records, nil
}

// Count returns the number of documents in a collection.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database not opened")
	}

	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = ?`,
		collection,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count collection %s: %w", collection, err)
	}
	return n, nil
}

// Put inserts or replaces a single document. A record without an ID is
// assigned a fresh UUID.
func (s *Store) Put(ctx context.Context, collection string, rec Record) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	body, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", rec.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO documents (collection, id, body) VALUES (?, ?, ?)`,
		collection, rec.ID, string(body),
	)
	if err != nil {
		return fmt.Errorf("failed to store document %s: %w", rec.ID, err)
	}
	return nil
}

// PutBatch stores records in a single transaction.
func (s *Store) PutBatch(ctx context.Context, collection string, records []Record) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO documents (collection, id, body) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		body, err := json.Marshal(rec.Fields)
		if err != nil {
			return fmt.Errorf("failed to encode document %s: %w", rec.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, collection, rec.ID, string(body)); err != nil {
			return fmt.Errorf("failed to store document %s: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}

// Path returns the database file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}
