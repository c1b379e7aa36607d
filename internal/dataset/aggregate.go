package dataset

import (
	"sort"
)

// GroupMean is the mean of a numeric column within one group.
type GroupMean struct {
	Key   string  `json:"key"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// CategoryCount is the number of rows carrying one categorical value.
type CategoryCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// GroupSummary holds min/max/mean of a numeric column within one group.
type GroupSummary struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
}

// MeanBy computes the per-group mean of valueCol grouped by groupCol,
// skipping non-numeric cells. Groups are sorted by key for deterministic
// output.
func MeanBy(t *Table, groupCol, valueCol string) []GroupMean {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for row := 0; row < t.NumRows(); row++ {
		f, ok := t.Value(valueCol, row).Float()
		if !ok {
			continue
		}
		key := t.Value(groupCol, row).key()
		sums[key] += f
		counts[key]++
	}
	out := make([]GroupMean, 0, len(sums))
	for key, sum := range sums {
		out = append(out, GroupMean{Key: key, Mean: sum / float64(counts[key]), Count: counts[key]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// CountBy counts rows per distinct value of col, most frequent first, ties
// broken by key.
func CountBy(t *Table, col string) []CategoryCount {
	counts := make(map[string]int)
	for row := 0; row < t.NumRows(); row++ {
		counts[t.Value(col, row).key()]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for key, n := range counts {
		out = append(out, CategoryCount{Key: key, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// SummaryBy computes per-group min/max/mean of valueCol grouped by
// groupCol, sorted by key.
func SummaryBy(t *Table, groupCol, valueCol string) []GroupSummary {
	groups := make(map[string]*GroupSummary)
	for row := 0; row < t.NumRows(); row++ {
		f, ok := t.Value(valueCol, row).Float()
		if !ok {
			continue
		}
		key := t.Value(groupCol, row).key()
		g, seen := groups[key]
		if !seen {
			groups[key] = &GroupSummary{Key: key, Count: 1, Min: f, Max: f, Mean: f}
			continue
		}
		if f < g.Min {
			g.Min = f
		}
		if f > g.Max {
			g.Max = f
		}
		g.Mean = (g.Mean*float64(g.Count) + f) / float64(g.Count+1)
		g.Count++
	}
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
