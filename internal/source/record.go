// Package source provides access to the document collections backing the
// dashboards. Records are sparse: a field present on one document may be
// absent on the next, so all field access goes through optional accessors
// that report presence instead of panicking.
package source

import (
	"encoding/json"
	"strconv"
	"time"
)

// Record is one fetched document: an identifier plus named fields.
type Record struct {
	ID     string
	Fields map[string]any
}

// timeLayouts are tried in order when parsing a timestamp field.
// Collections synced from upstream CRMs mix RFC 3339 with bare dates.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// String returns the string value of a field.
// The second return is false when the field is absent or not a string.
func (r Record) String(key string) (string, bool) {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Number returns the numeric value of a field. JSON decoding yields
// float64, but seeded data may carry ints or numeric strings.
func (r Record) Number(key string) (float64, bool) {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return 0, false
	}
	return toNumber(v)
}

// Time parses a timestamp field, trying the known layouts in order.
func (r Record) Time(key string) (time.Time, bool) {
	s, ok := r.String(key)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StringList returns a list-of-strings field (e.g. contact tags).
// Non-string elements are skipped.
func (r Record) StringList(key string) ([]string, bool) {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		if ss, ok := v.([]string); ok {
			return ss, true
		}
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
