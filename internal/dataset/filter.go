package dataset

// OrderFilter narrows the merged order table for display and export. An
// empty slice leaves that dimension unfiltered, matching the "everything
// selected" default of the display layer.
type OrderFilter struct {
	Categories []string
	Priorities []string
}

// IsZero reports whether the filter passes every row through.
func (f OrderFilter) IsZero() bool {
	return len(f.Categories) == 0 && len(f.Priorities) == 0
}

// FilterOrders returns the rows of t matching the filter. Matching is on
// the cell's rendered value, so numeric priorities compare the same whether
// the source quoted them or not.
func FilterOrders(t *Table, f OrderFilter) *Table {
	if f.IsZero() {
		return t
	}
	categories := toSet(f.Categories)
	priorities := toSet(f.Priorities)
	return t.Filter(func(row int) bool {
		if len(categories) > 0 {
			if _, ok := categories[t.Value("product_category", row).key()]; !ok {
				return false
			}
		}
		if len(priorities) > 0 {
			if _, ok := priorities[t.Value("priority", row).key()]; !ok {
				return false
			}
		}
		return true
	})
}

// FindRow returns the index of the first row whose key column renders to
// the given value, or -1.
func FindRow(t *Table, col, key string) int {
	for row := 0; row < t.NumRows(); row++ {
		if t.Value(col, row).key() == key {
			return row
		}
	}
	return -1
}

func toSet(vals []string) map[string]struct{} {
	if len(vals) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}
