package export

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteRoster(t *testing.T) {
	students := []models.Student{
		{ID: "1", Name: "Priya", Grades: &models.GradeRecord{CycleTest1: 45, CycleTest2: 40, Assignments: 10}},
		{ID: "2", Name: "Karthik", Grades: &models.GradeRecord{CycleTest1: 30, CycleTest2: 25, Assignments: 7.5}},
		{ID: "3", Name: "Anbu"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRoster(&buf, "Data Structures", students))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(RosterSheet)
	require.NoError(t, err)
	want := [][]string{
		{"Student", "Cycle Test 1", "Cycle Test 2", "Assignments", "Total", "Grade"},
		{"Priya", "45", "40", "10", "95", "O"},
		{"Karthik", "30", "25", "7.5", "62.5", "C"},
		{"Anbu", "0", "0", "0", "0", "F"},
	}
	assert.Empty(t, cmp.Diff(want, rows))

	dist, err := f.GetRows(DistributionSheet)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([][]string{{"Grade", "Students"}, {"O", "1"}, {"C", "1"}, {"F", "1"}}, dist))

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", props.Title)
}

func TestWriteRoster_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRoster(&buf, "", nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	rows, err := f.GetRows(RosterSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Data_Structures_grades.xlsx", FileName("Data Structures"))
	assert.Equal(t, "C_Lab_grades.xlsx", FileName(" C++ Lab "))
	assert.Equal(t, "roster_grades.xlsx", FileName("***"))
}
