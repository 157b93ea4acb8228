// Package export writes grade rosters as Excel workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/dmitrijs2005/studentdiary/internal/grades"
	"github.com/xuri/excelize/v2"
)

const (
	RosterSheet       = "Grades"
	DistributionSheet = "Distribution"
)

// RosterHeader is the first row of the roster sheet.
var RosterHeader = []any{"Student", "Cycle Test 1", "Cycle Test 2", "Assignments", "Total", "Grade"}

// WriteRoster writes a workbook with one row per student and a letter
// distribution sheet. Students without grades are exported with zeros.
func WriteRoster(w io.Writer, subjectTitle string, students []models.Student) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RosterSheet); err != nil {
		return fmt.Errorf("export roster: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: subjectTitle, Creator: "studentdiary"}); err != nil {
		return fmt.Errorf("export roster: %w", err)
	}

	if err := setRow(f, RosterSheet, 1, RosterHeader); err != nil {
		return err
	}
	for i, s := range students {
		c1, c2, a := s.Grades.Components()
		total := grades.Total(c1, c2, a)
		row := []any{s.Name, c1, c2, a, total, grades.Letter(total)}
		if err := setRow(f, RosterSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(DistributionSheet); err != nil {
		return fmt.Errorf("export roster: %w", err)
	}
	if err := setRow(f, DistributionSheet, 1, []any{"Grade", "Students"}); err != nil {
		return err
	}
	for i, sl := range grades.Distribution(models.Roster(students)) {
		if err := setRow(f, DistributionSheet, i+2, []any{sl.Name, sl.Value}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export roster: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export roster: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export roster: row %d: %w", row, err)
	}
	return nil
}

// FileName suggests a file name for a subject's roster.
func FileName(subjectTitle string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, strings.TrimSpace(subjectTitle))
	if name == "" {
		name = "roster"
	}
	return name + "_grades.xlsx"
}
