package dataset

import (
	"time"
)

// RequiredNumericColumns are the merged-table columns the optimizer reads.
// After ImputeMedians none of them contains a missing value.
var RequiredNumericColumns = []string{
	"distance_km",
	"traffic_delays_hours",
	"fuel_consumption_liters",
	"toll_charges",
	"delivery_cost",
	"customer_rating",
}

// Column names for the delivery timestamps and the derived delay, after
// header cleaning.
const (
	ColPromisedDelivery = "promised_delivery_days"
	ColActualDelivery   = "actual_delivery_days"
	ColDeliveryDelay    = "delivery_delay_hours"
)

// timestampLayouts are tried in order when parsing delivery timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// ImputeMedians fills missing cells of each listed column with that
// column's median, computed once over the currently loaded rows. A column
// absent from the table is synthesized with 0.0 for every row. Afterwards
// every listed column is numeric and complete.
func ImputeMedians(t *Table, cols []string) error {
	for _, col := range cols {
		if !t.HasColumn(col) {
			zeros := make([]Value, t.NumRows())
			for i := range zeros {
				zeros[i] = Number(0)
			}
			if err := t.AddColumn(col, zeros); err != nil {
				return err
			}
			continue
		}
		median, ok := t.Median(col)
		if !ok {
			median = 0
		}
		for row := 0; row < t.NumRows(); row++ {
			if _, isNum := t.Value(col, row).Float(); !isNum {
				if err := t.Set(col, row, Number(median)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ParseTimestampColumn converts a text column to timestamps in place. A
// cell that fails to parse becomes missing, never an error. An absent
// column is synthesized all-missing so the delay derivation always has both
// sides to look at.
func ParseTimestampColumn(t *Table, col string) error {
	if !t.HasColumn(col) {
		return t.AddColumn(col, nil)
	}
	for row := 0; row < t.NumRows(); row++ {
		v := t.Value(col, row)
		if _, ok := v.Time(); ok {
			continue
		}
		raw, ok := v.Text()
		if !ok {
			// Numeric or already missing: neither is a usable timestamp.
			if err := t.Set(col, row, Missing()); err != nil {
				return err
			}
			continue
		}
		if err := t.Set(col, row, parseTimestamp(raw)); err != nil {
			return err
		}
	}
	return nil
}

// DeriveDelay adds the delivery_delay_hours column: actual minus promised,
// in hours. A row where either timestamp is missing gets delay 0, not
// missing. Downstream aggregation assumes a numeric delay for every row.
func DeriveDelay(t *Table, actualCol, promisedCol, outCol string) error {
	delays := make([]Value, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		actual, okA := t.Value(actualCol, row).Time()
		promised, okP := t.Value(promisedCol, row).Time()
		if okA && okP {
			delays[row] = Number(actual.Sub(promised).Hours())
		} else {
			delays[row] = Number(0)
		}
	}
	return t.AddColumn(outCol, delays)
}

func parseTimestamp(raw string) Value {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return Timestamp(ts)
		}
	}
	return Missing()
}
