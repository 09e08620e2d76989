package schedule

import "sort"

// Packing is the column assignment for one overlap cluster.
type Packing struct {
	// Columns maps session id to its zero-based column index.
	Columns map[string]int
	// MaxColumns is the number of columns the cluster occupies.
	MaxColumns int
}

// PackColumns assigns each span in a cluster to a column so that no two
// spans sharing a column overlap in time. Spans are placed in start order
// (stable on the original order for ties) into the first column whose last
// occupant has ended; a new column opens when none fits. Greedy first-fit
// is not guaranteed minimal for pathological patterns, but it is
// deterministic and matches conventional calendar layout.
func PackColumns(cluster []Span) Packing {
	ordered := make([]Span, len(cluster))
	copy(ordered, cluster)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	columns := make(map[string]int, len(ordered))
	var columnEnds []int // last-placed End per column

	for _, span := range ordered {
		placed := false
		for col, end := range columnEnds {
			if end <= span.Start {
				columns[span.Session.ID] = col
				columnEnds[col] = span.End
				placed = true
				break
			}
		}
		if !placed {
			columns[span.Session.ID] = len(columnEnds)
			columnEnds = append(columnEnds, span.End)
		}
	}

	return Packing{Columns: columns, MaxColumns: len(columnEnds)}
}
