package grades

import "sort"

// Scores is anything carrying the three graded components.
type Scores interface {
	Components() (cycleTest1, cycleTest2, assignments float64)
}

// Named pairs a label with a set of scores, e.g. a student in a roster.
type Named struct {
	Name   string
	Scores Scores
}

// Bar is one column of the performance chart.
type Bar struct {
	Name  string
	Total float64
}

// Slice is one segment of a distribution chart.
type Slice struct {
	Name  string
	Value float64
}

func totalOf(s Scores) float64 {
	if s == nil {
		return 0
	}
	return Total(s.Components())
}

// BarTotals returns one bar per entry, highest total first. Entries without
// scores count as zero. Equal totals keep their input order.
func BarTotals(entries []Named) []Bar {
	bars := make([]Bar, 0, len(entries))
	for _, e := range entries {
		bars = append(bars, Bar{Name: e.Name, Total: totalOf(e.Scores)})
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Total > bars[j].Total })
	return bars
}

// Distribution counts entries per letter grade. Letters nobody got are
// omitted; the result follows the order of Letters.
func Distribution(entries []Named) []Slice {
	counts := make(map[string]int, len(Letters))
	for _, e := range entries {
		counts[Letter(totalOf(e.Scores))]++
	}

	out := make([]Slice, 0, len(counts))
	for _, l := range Letters {
		if n, ok := counts[l]; ok {
			out = append(out, Slice{Name: l, Value: float64(n)})
		}
	}
	return out
}

// ScoreBreakdown splits a single record into its components for the
// student's own chart. A nil record yields zeros.
func ScoreBreakdown(s Scores) []Slice {
	var c1, c2, a float64
	if s != nil {
		c1, c2, a = s.Components()
	}
	return []Slice{
		{Name: "Cycle Test 1", Value: c1},
		{Name: "Cycle Test 2", Value: c2},
		{Name: "Assignments", Value: a},
	}
}
