package dataset

import (
	"fmt"
	"strings"
	"unicode"
)

// CleanHeader canonicalizes a raw column label: lowercase, whitespace,
// parentheses and slashes each replaced by an underscore, runs of
// underscores collapsed, leading and trailing underscores stripped.
// Applying it to an already-clean header is a no-op.
func CleanHeader(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		switch {
		case unicode.IsSpace(r), r == '(', r == ')', r == '/':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	for strings.Contains(cleaned, "__") {
		cleaned = strings.ReplaceAll(cleaned, "__", "_")
	}
	return strings.Trim(cleaned, "_")
}

// NormalizeHeaders rewrites every column name with CleanHeader. Cell values
// are untouched. Two raw headers that clean to the same name are an error,
// since the table cannot address two columns by one name.
func (t *Table) NormalizeHeaders() error {
	names := make([]string, len(t.names))
	index := make(map[string]int, len(t.names))
	for i, raw := range t.names {
		name := CleanHeader(raw)
		if prev, ok := index[name]; ok {
			return fmt.Errorf("columns %q and %q both normalize to %q", t.names[prev], raw, name)
		}
		names[i] = name
		index[name] = i
	}
	t.names = names
	t.index = index
	return nil
}
