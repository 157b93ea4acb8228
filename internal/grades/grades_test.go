package grades

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetter(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  string
	}{
		{"exactly 90 is O", 90, "O"},
		{"exactly 80 is A", 80, "A"},
		{"exactly 70 is B", 70, "B"},
		{"exactly 60 is C", 60, "C"},
		{"just below 60", 59.999, "F"},
		{"just below 90", 89.99, "A"},
		{"far above range", 200, "O"},
		{"negative", -5, "F"},
		{"zero", 0, "F"},
		{"positive infinity", math.Inf(1), "O"},
		{"negative infinity", math.Inf(-1), "F"},
		{"NaN", math.NaN(), "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Letter(tt.total))
		})
	}
}

func TestLetter_ExactlyOneBandApplies(t *testing.T) {
	for total := -20.0; total <= 120; total += 0.5 {
		got := Letter(total)

		matches := 0
		for _, b := range bands {
			if total >= b.min {
				matches++
			}
		}
		switch {
		case matches == 0:
			assert.Equal(t, LetterF, got, "total=%v", total)
		default:
			// the highest band the total clears
			assert.Equal(t, bands[len(bands)-matches].letter, got, "total=%v", total)
		}
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 0.0, Total(0, 0, 0))
	assert.Equal(t, 95.0, Total(45, 40, 10))
	assert.Equal(t, Total(1, 2, 3), Total(3, 1, 2))
	assert.Equal(t, Total(10, 20, 30), Total(30, 20, 10))
	// pass-through, no clamping
	assert.Equal(t, -15.0, Total(-5, -5, -5))
	assert.Equal(t, 3000.0, Total(1000, 1000, 1000))
}

func TestTotalThenLetter_TeacherExample(t *testing.T) {
	total := Total(45, 40, 10)
	assert.Equal(t, 95.0, total)
	assert.Equal(t, "O", Letter(total))
}
