// Package dataset implements the data preparation pipeline: loading the
// delimited logistics sources, canonicalizing their headers, merging them
// into one order-centric table, and imputing the numeric fields the
// optimizer depends on.
package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Kind identifies the type of a cell value.
type Kind int

const (
	KindMissing Kind = iota
	KindNumber
	KindText
	KindTime
)

// Value is a single typed cell. The zero value is a missing cell.
type Value struct {
	kind Kind
	num  float64
	str  string
	ts   time.Time
}

// Missing returns a missing cell.
func Missing() Value { return Value{} }

// Number returns a numeric cell.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Text returns a text cell.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Timestamp returns a timestamp cell.
func Timestamp(t time.Time) Value { return Value{kind: KindTime, ts: t} }

// Kind returns the cell's kind.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell is missing.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric value, if the cell is numeric.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the text value, if the cell is text.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.str, true
}

// Time returns the timestamp value, if the cell is a timestamp.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return v.ts, true
}

// String renders the cell the way it is written to CSV. Missing cells
// render as the empty string; numbers use the shortest representation that
// parses back to the same float64, so export/reload round-trips exactly.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.str
	case KindTime:
		return v.ts.Format(time.RFC3339)
	default:
		return ""
	}
}

// Interface returns the cell as a plain Go value for JSON serialization.
// Missing cells become nil.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.str
	case KindTime:
		return v.ts
	default:
		return nil
	}
}

// Table is an ordered collection of named, typed columns. All columns have
// the same length. Column order is preserved from the source, which keeps
// CSV export stable.
type Table struct {
	names []string
	index map[string]int
	cols  [][]Value
	rows  int
}

// NewTable creates an empty table with the given column names.
// Duplicate column names are an error.
func NewTable(names ...string) (*Table, error) {
	t := &Table{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
		cols:  make([][]Value, 0, len(names)),
	}
	for _, name := range names {
		if _, ok := t.index[name]; ok {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		t.index[name] = len(t.names)
		t.names = append(t.names, name)
		t.cols = append(t.cols, nil)
	}
	return t, nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.names) }

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the cell at (column, row). A missing column or an
// out-of-range row yields a missing cell.
func (t *Table) Value(col string, row int) Value {
	idx, ok := t.index[col]
	if !ok || row < 0 || row >= t.rows {
		return Missing()
	}
	return t.cols[idx][row]
}

// Set overwrites the cell at (column, row).
func (t *Table) Set(col string, row int, v Value) error {
	idx, ok := t.index[col]
	if !ok {
		return fmt.Errorf("unknown column %q", col)
	}
	if row < 0 || row >= t.rows {
		return fmt.Errorf("row %d out of range", row)
	}
	t.cols[idx][row] = v
	return nil
}

// AppendRow appends one row. The number of values must match the number of
// columns.
func (t *Table) AppendRow(vals ...Value) error {
	if len(vals) != len(t.names) {
		return fmt.Errorf("row has %d values, table has %d columns", len(vals), len(t.names))
	}
	for i, v := range vals {
		t.cols[i] = append(t.cols[i], v)
	}
	t.rows++
	return nil
}

// AddColumn appends a new column. The values must match the current row
// count; a nil slice adds an all-missing column.
func (t *Table) AddColumn(name string, vals []Value) error {
	if _, ok := t.index[name]; ok {
		return fmt.Errorf("column %q already exists", name)
	}
	if vals == nil {
		vals = make([]Value, t.rows)
	}
	if len(vals) != t.rows {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(vals), t.rows)
	}
	t.index[name] = len(t.names)
	t.names = append(t.names, name)
	t.cols = append(t.cols, vals)
	return nil
}

// Median computes the median of a column over its non-missing numeric
// cells. The second return is false when the column has no numeric cells.
func (t *Table) Median(col string) (float64, bool) {
	idx, ok := t.index[col]
	if !ok {
		return 0, false
	}
	nums := make([]float64, 0, t.rows)
	for _, v := range t.cols[idx] {
		if f, ok := v.Float(); ok {
			nums = append(nums, f)
		}
	}
	if len(nums) == 0 {
		return 0, false
	}
	sort.Float64s(nums)
	mid := len(nums) / 2
	if len(nums)%2 == 1 {
		return nums[mid], true
	}
	return (nums[mid-1] + nums[mid]) / 2, true
}

// Filter returns a new table containing the rows for which keep returns
// true. Row order is preserved.
func (t *Table) Filter(keep func(row int) bool) *Table {
	out, _ := NewTable(t.names...)
	for row := 0; row < t.rows; row++ {
		if !keep(row) {
			continue
		}
		vals := make([]Value, len(t.names))
		for c := range t.cols {
			vals[c] = t.cols[c][row]
		}
		_ = out.AppendRow(vals...)
	}
	return out
}

// Row returns one row as a column-name-keyed map of plain Go values,
// suitable for JSON serialization.
func (t *Table) Row(row int) map[string]interface{} {
	out := make(map[string]interface{}, len(t.names))
	for c, name := range t.names {
		if row >= 0 && row < t.rows {
			out[name] = t.cols[c][row].Interface()
		}
	}
	return out
}

// Records returns all rows as maps, in row order.
func (t *Table) Records() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, t.rows)
	for row := 0; row < t.rows; row++ {
		out = append(out, t.Row(row))
	}
	return out
}

// key returns the canonical join-key representation of a cell. Numbers and
// text compare by their string form so an order id reads the same whichever
// way the source quoted it.
func (v Value) key() string { return v.String() }
