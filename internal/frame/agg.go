package frame

import (
	"sort"
	"time"
)

// ConnectedOutcomes are the call outcomes counted as a connection.
// Matching is exact: these are the literal labels the dialer reports.
var ConnectedOutcomes = map[string]struct{}{
	"connected": {},
	"answered":  {},
	"success":   {},
}

// GroupCount is one (category, count) pair of a grouped count.
type GroupCount struct {
	Label string
	Count int
}

// PairCount is one observed (A, B) combination and its row count.
type PairCount struct {
	A     string
	B     string
	Count int
}

// GroupAggSpec names the inputs of a one-pass grouped aggregation.
type GroupAggSpec struct {
	// PredicateColumn/PredicateSet produce the per-group predicate count
	// (e.g. connections: outcome in ConnectedOutcomes).
	PredicateColumn string
	PredicateSet    map[string]struct{}

	// SumColumn produces the per-group numeric sum (e.g. call duration).
	SumColumn string
}

// GroupRow is the per-group result of GroupAgg.
type GroupRow struct {
	Group          string
	Count          int
	PredicateCount int
	Sum            float64
}

// FilterByDate returns the rows whose parsed date in column lies within the
// inclusive [start, end] range. Rows with a missing or unparsable date are
// dropped. A zero start and end disables filtering and returns the frame
// unchanged, so filtering is idempotent for a fixed range.
func (f *Frame) FilterByDate(column string, start, end time.Time) *Frame {
	if start.IsZero() && end.IsZero() {
		return f
	}

	// Compare calendar days, not instants: the filter is a date picker.
	startDay := dayOf(start)
	endDay := dayOf(end)

	var kept [][]any
	for i := range f.rows {
		t, ok := f.timeAt(i, column)
		if !ok {
			continue
		}
		day := dayOf(t)
		if !start.IsZero() && day.Before(startDay) {
			continue
		}
		if !end.IsZero() && day.After(endDay) {
			continue
		}
		kept = append(kept, f.rows[i])
	}
	return f.subframe(kept)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterNonNull returns the rows holding a non-nil value in column,
// preserving row order.
func (f *Frame) FilterNonNull(column string) *Frame {
	var kept [][]any
	for i := range f.rows {
		if f.Value(i, column) != nil {
			kept = append(kept, f.rows[i])
		}
	}
	return f.subframe(kept)
}

// CountMatching counts rows whose value in column is a member of set.
// No normalization is applied; labels must match exactly.
func (f *Frame) CountMatching(column string, set map[string]struct{}) int {
	n := 0
	for i := range f.rows {
		s, ok := f.stringAt(i, column)
		if !ok {
			continue
		}
		if _, member := set[s]; member {
			n++
		}
	}
	return n
}

// CountNonNull counts rows with a non-nil value in column.
func (f *Frame) CountNonNull(column string) int {
	n := 0
	for i := range f.rows {
		if f.Value(i, column) != nil {
			n++
		}
	}
	return n
}

// DistinctCount counts the distinct non-nil string values in column.
func (f *Frame) DistinctCount(column string) int {
	seen := map[string]struct{}{}
	for i := range f.rows {
		if s, ok := f.stringAt(i, column); ok {
			seen[s] = struct{}{}
		}
	}
	return len(seen)
}

// SumNumeric sums the numeric values in column. Missing and non-numeric
// cells count as zero.
func (f *Frame) SumNumeric(column string) float64 {
	var total float64
	for i := range f.rows {
		if v, ok := numeric(f.Value(i, column)); ok {
			total += v
		}
	}
	return total
}

// GroupCounts groups rows by the exact value of column and counts each
// group. Nil/missing values are excluded (they never form a bucket, so the
// group totals equal the number of rows with a value in the column).
// Results are sorted count-descending, ties broken by label ascending.
// A topN <= 0 disables truncation.
func (f *Frame) GroupCounts(column string, topN int) []GroupCount {
	counts := map[string]int{}
	for i := range f.rows {
		if s, ok := f.stringAt(i, column); ok {
			counts[s]++
		}
	}
	return rank(counts, topN)
}

// ExplodeTagCounts flattens a list-of-strings column into one count per tag
// across all rows, then ranks the tags as GroupCounts would.
func (f *Frame) ExplodeTagCounts(column string, topN int) []GroupCount {
	counts := map[string]int{}
	for i := range f.rows {
		v := f.Value(i, column)
		if v == nil {
			continue
		}
		for _, tag := range toStringList(v) {
			counts[tag]++
		}
	}
	return rank(counts, topN)
}

// GroupAgg computes count, predicate count, and sum for every distinct
// value of groupColumn in one pass. Rows with a nil group value are
// excluded. Results are sorted by predicate count descending (then count,
// then group label) to match the dashboards' "best first" tables.
func (f *Frame) GroupAgg(groupColumn string, spec GroupAggSpec) []GroupRow {
	byGroup := map[string]*GroupRow{}
	for i := range f.rows {
		g, ok := f.stringAt(i, groupColumn)
		if !ok {
			continue
		}
		row := byGroup[g]
		if row == nil {
			row = &GroupRow{Group: g}
			byGroup[g] = row
		}
		row.Count++

		if spec.PredicateColumn != "" {
			if s, ok := f.stringAt(i, spec.PredicateColumn); ok {
				if _, member := spec.PredicateSet[s]; member {
					row.PredicateCount++
				}
			}
		}
		if spec.SumColumn != "" {
			if v, ok := numeric(f.Value(i, spec.SumColumn)); ok {
				row.Sum += v
			}
		}
	}

	out := make([]GroupRow, 0, len(byGroup))
	for _, row := range byGroup {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PredicateCount != out[j].PredicateCount {
			return out[i].PredicateCount > out[j].PredicateCount
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Group < out[j].Group
	})
	return out
}

// CrossTab counts the observed (a, b) value combinations of two columns.
// Rows with a nil value in either column are excluded. Results are sorted
// by A then B so output is deterministic.
func (f *Frame) CrossTab(columnA, columnB string) []PairCount {
	type key struct{ a, b string }
	counts := map[key]int{}
	for i := range f.rows {
		a, okA := f.stringAt(i, columnA)
		b, okB := f.stringAt(i, columnB)
		if !okA || !okB {
			continue
		}
		counts[key{a, b}]++
	}

	out := make([]PairCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, PairCount{A: k.a, B: k.b, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// rank orders grouped counts descending, ties broken by label ascending,
// truncated to topN when topN > 0.
func rank(counts map[string]int, topN int) []GroupCount {
	out := make([]GroupCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, GroupCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

func toStringList(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
