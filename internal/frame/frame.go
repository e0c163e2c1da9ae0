// Package frame provides the in-memory tabular view the dashboards
// aggregate over. A Frame is built fresh from a batch of records on every
// recompute; nothing here is cached or mutated after construction.
package frame

import (
	"sort"
	"time"

	"github.com/brightline-labs/callboard/internal/source"
)

// Frame is a uniform row/column view over a batch of records. Columns are
// the union of all field names seen in the batch; cells for fields a record
// lacks are nil. Row order follows fetch order.
type Frame struct {
	columns []string
	colIdx  map[string]int
	rows    [][]any
}

// Load builds a Frame from records. The column set is the union of the
// fields observed across the batch, in first-seen order.
func Load(records []source.Record) *Frame {
	return LoadWithColumns(records, nil)
}

// LoadWithColumns builds a Frame seeded with a default column list, so an
// empty fetch still yields a Frame whose expected columns exist. Columns
// observed in the records are appended after the defaults.
func LoadWithColumns(records []source.Record, defaults []string) *Frame {
	f := &Frame{colIdx: map[string]int{}}

	for _, col := range defaults {
		f.addColumn(col)
	}
	for _, rec := range records {
		// Map iteration order is random; sort keys so the column order of a
		// given batch is reproducible.
		keys := make([]string, 0, len(rec.Fields))
		for key := range rec.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			f.addColumn(key)
		}
	}

	f.rows = make([][]any, 0, len(records))
	for _, rec := range records {
		row := make([]any, len(f.columns))
		for col, i := range f.colIdx {
			if v, ok := rec.Fields[col]; ok {
				row[i] = v
			}
		}
		f.rows = append(f.rows, row)
	}

	return f
}

func (f *Frame) addColumn(name string) {
	if _, exists := f.colIdx[name]; exists {
		return
	}
	f.colIdx[name] = len(f.columns)
	f.columns = append(f.columns, name)
}

// Columns returns the column names. The slice must not be modified.
func (f *Frame) Columns() []string {
	return f.columns
}

// HasColumn reports whether the frame has a column of the given name.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.colIdx[name]
	return ok
}

// RowCount returns the number of rows.
func (f *Frame) RowCount() int {
	return len(f.rows)
}

// Value returns the cell at (row, column), or nil when the column does not
// exist or the record lacked the field.
func (f *Frame) Value(row int, column string) any {
	i, ok := f.colIdx[column]
	if !ok || row < 0 || row >= len(f.rows) {
		return nil
	}
	return f.rows[row][i]
}

// stringAt returns the cell as a string, or ok=false for nil/non-string.
func (f *Frame) stringAt(row int, column string) (string, bool) {
	v := f.Value(row, column)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// timeAt parses the cell as a timestamp using the record layouts.
func (f *Frame) timeAt(row int, column string) (time.Time, bool) {
	s, ok := f.stringAt(row, column)
	if !ok {
		return time.Time{}, false
	}
	rec := source.Record{Fields: map[string]any{column: s}}
	return rec.Time(column)
}

// subframe returns a new Frame sharing columns with f, holding the given rows.
func (f *Frame) subframe(rows [][]any) *Frame {
	return &Frame{columns: f.columns, colIdx: f.colIdx, rows: rows}
}
