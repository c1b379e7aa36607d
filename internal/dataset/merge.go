package dataset

// LeftJoin left-joins secondary onto primary on the given key column. Every
// primary row appears exactly once in the result; a primary key absent from
// the secondary source yields missing cells for the secondary's columns,
// never row loss. A secondary column whose name collides with a primary
// column is suffixed with "_" plus the source name.
//
// Secondary keys are assumed unique per source; a duplicate is a
// *DuplicateKeyError and the join is abandoned rather than multiplying
// primary rows.
func LeftJoin(primary, secondary *Table, key, source string) (*Table, error) {
	if !primary.HasColumn(key) {
		return nil, &SchemaError{Table: "primary", Expected: []string{key}, Found: primary.Columns()}
	}
	if !secondary.HasColumn(key) {
		return nil, &SchemaError{Table: source, Expected: []string{key}, Found: secondary.Columns()}
	}

	// Index secondary rows by key.
	byKey := make(map[string]int, secondary.NumRows())
	for row := 0; row < secondary.NumRows(); row++ {
		k := secondary.Value(key, row).key()
		if _, seen := byKey[k]; seen {
			return nil, &DuplicateKeyError{Source: source, Key: k}
		}
		byKey[k] = row
	}

	// Secondary columns to carry over, with collision-safe names.
	var carry []string
	names := primary.Columns()
	for _, name := range secondary.Columns() {
		if name == key {
			continue
		}
		carry = append(carry, name)
		merged := name
		if primary.HasColumn(name) {
			merged = name + "_" + source
		}
		names = append(names, merged)
	}

	out, err := NewTable(names...)
	if err != nil {
		return nil, err
	}

	primaryNames := primary.Columns()
	for row := 0; row < primary.NumRows(); row++ {
		vals := make([]Value, 0, len(names))
		for _, name := range primaryNames {
			vals = append(vals, primary.Value(name, row))
		}
		secRow, matched := byKey[primary.Value(key, row).key()]
		for _, name := range carry {
			if matched {
				vals = append(vals, secondary.Value(name, secRow))
			} else {
				vals = append(vals, Missing())
			}
		}
		if err := out.AppendRow(vals...); err != nil {
			return nil, err
		}
	}
	return out, nil
}
