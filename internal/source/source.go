package source

import (
	"context"
	"log/slog"
	"sync"
)

// Source is the read boundary the dashboards consume. Implementations must
// return a well-defined empty result for unknown collections rather than an
// error; errors are reserved for the store itself being unreachable.
type Source interface {
	// Fetch returns the current full set of records in a collection.
	Fetch(ctx context.Context, collection string) ([]Record, error)

	// Count returns the number of documents in a collection.
	Count(ctx context.Context, collection string) (int, error)
}

// Resilient wraps a Source so that every failure degrades to an empty
// result instead of propagating. The dashboards always render something;
// a broken store shows up as zeros, not an error page. The last error is
// retained for logging and inspection.
type Resilient struct {
	inner  Source
	logger *slog.Logger

	mu      sync.Mutex
	lastErr error
}

// NewResilient wraps src. A nil logger disables logging.
func NewResilient(src Source, logger *slog.Logger) *Resilient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resilient{inner: src, logger: logger}
}

// Fetch returns the collection's records, or an empty slice on failure.
func (r *Resilient) Fetch(ctx context.Context, collection string) ([]Record, error) {
	records, err := r.inner.Fetch(ctx, collection)
	if err != nil {
		r.record(collection, "fetch", err)
		return []Record{}, nil
	}
	return records, nil
}

// Count returns the collection's document count, or zero on failure.
func (r *Resilient) Count(ctx context.Context, collection string) (int, error) {
	n, err := r.inner.Count(ctx, collection)
	if err != nil {
		r.record(collection, "count", err)
		return 0, nil
	}
	return n, nil
}

// LastErr returns the most recent swallowed error, or nil.
func (r *Resilient) LastErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func (r *Resilient) record(collection, op string, err error) {
	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
	r.logger.Warn("record source degraded to empty result",
		"collection", collection, "op", op, "error", err)
}
