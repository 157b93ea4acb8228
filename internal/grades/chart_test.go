package grades

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type scores [3]float64

func (s scores) Components() (float64, float64, float64) { return s[0], s[1], s[2] }

func TestBarTotals_SortedDescending(t *testing.T) {
	in := []Named{
		{Name: "alice", Scores: scores{20, 20, 10}},
		{Name: "bob", Scores: scores{45, 40, 10}},
		{Name: "carol"},
		{Name: "dave", Scores: scores{25, 20, 5}},
	}

	got := BarTotals(in)
	want := []Bar{
		{Name: "bob", Total: 95},
		{Name: "alice", Total: 50},
		{Name: "dave", Total: 50},
		{Name: "carol", Total: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("BarTotals mismatch (-want +got):\n%s", diff)
	}
}

func TestDistribution(t *testing.T) {
	in := []Named{
		{Name: "a", Scores: scores{45, 40, 10}}, // 95 O
		{Name: "b", Scores: scores{30, 30, 20}}, // 80 A
		{Name: "c", Scores: scores{30, 30, 0}},  // 60 C
		{Name: "d"},                             // 0 F
		{Name: "e", Scores: scores{40, 40, 15}}, // 95 O
	}

	got := Distribution(in)
	want := []Slice{
		{Name: "O", Value: 2},
		{Name: "A", Value: 1},
		{Name: "C", Value: 1},
		{Name: "F", Value: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Distribution mismatch (-want +got):\n%s", diff)
	}
}

func TestDistribution_Empty(t *testing.T) {
	assert.Empty(t, Distribution(nil))
}

func TestScoreBreakdown(t *testing.T) {
	got := ScoreBreakdown(scores{12, 13, 4})
	assert.Equal(t, []Slice{
		{Name: "Cycle Test 1", Value: 12},
		{Name: "Cycle Test 2", Value: 13},
		{Name: "Assignments", Value: 4},
	}, got)

	zero := ScoreBreakdown(nil)
	for _, s := range zero {
		assert.Zero(t, s.Value)
	}
}
