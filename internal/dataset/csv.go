package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// missingTokens are cell spellings treated as missing on read, in addition
// to the empty string.
var missingTokens = map[string]struct{}{
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
}

// ReadTable reads a delimited table. Headers are canonicalized with
// CleanHeader on the way in; cells parse to numbers where possible, missing
// where empty, text otherwise. Timestamp columns stay text until the
// imputation stage decides which columns to parse.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty table: no header row")
	}
	if err != nil {
		return nil, err
	}

	t, err := NewTable(header...)
	if err != nil {
		return nil, err
	}
	if err := t.NormalizeHeaders(); err != nil {
		return nil, err
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		vals := make([]Value, len(record))
		for i, cell := range record {
			vals[i] = parseCell(cell)
		}
		if err := t.AppendRow(vals...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// WriteTable writes the table as CSV with a header row. Values render via
// Value.String, so a written table reloads to an equivalent one.
func WriteTable(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return err
	}
	names := t.Columns()
	record := make([]string, len(names))
	for row := 0; row < t.NumRows(); row++ {
		for i, name := range names {
			record[i] = t.Value(name, row).String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseCell(cell string) Value {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return Missing()
	}
	if _, ok := missingTokens[strings.ToLower(trimmed)]; ok {
		return Missing()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(f)
	}
	return Text(trimmed)
}
