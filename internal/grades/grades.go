// Package grades holds the grade aggregation rules shared by every view that
// displays marks: the teacher roster, the student self-view, the charts and
// the spreadsheet export.
package grades

import "math"

// Letter grades in descending order.
const (
	LetterO = "O"
	LetterA = "A"
	LetterB = "B"
	LetterC = "C"
	LetterF = "F"
)

// Letters lists every band from the highest to the lowest.
var Letters = []string{LetterO, LetterA, LetterB, LetterC, LetterF}

type band struct {
	min    float64
	letter string
}

// bands are checked top-down with >= at each cut, so a boundary value
// belongs to the upper band.
var bands = []band{
	{90, LetterO},
	{80, LetterA},
	{70, LetterB},
	{60, LetterC},
}

// Total is the plain sum of the three components. Inputs are not clamped
// or validated.
func Total(cycleTest1, cycleTest2, assignments float64) float64 {
	return cycleTest1 + cycleTest2 + assignments
}

// Letter maps a total onto its letter band. It is defined for every float64;
// NaN falls through to F.
func Letter(total float64) string {
	if math.IsNaN(total) {
		return LetterF
	}
	for _, b := range bands {
		if total >= b.min {
			return b.letter
		}
	}
	return LetterF
}
