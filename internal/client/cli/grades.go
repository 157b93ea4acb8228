package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/access"
	"github.com/dmitrijs2005/studentdiary/internal/client/export"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/dmitrijs2005/studentdiary/internal/grades"
)

// Subjects lists the current role's subjects as numbered tiles. Degree and
// department are only shown in the teacher view.
func (a *App) Subjects(ctx context.Context, _ []string) error {
	a.loading("subjects")
	list, err := a.gradeService.Subjects(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.subjects = list
	a.mu.Unlock()

	if len(list) == 0 {
		printlnFn("No subjects yet.")
		return nil
	}
	teacher := access.ViewFor(a.role()) == access.ViewTeacher
	lines := make([]string, 0, len(list))
	for i, s := range list {
		line := fmt.Sprintf("%d. %s", i+1, s.Title)
		if teacher && (s.Degree != "" || s.Department != "") {
			line += fmt.Sprintf(" (%s %s)", s.Degree, s.Department)
		}
		if n := len(s.Units); n > 0 {
			line += fmt.Sprintf(" - %d units", n)
		}
		lines = append(lines, line)
	}
	printlnFn(strings.Join(lines, "\n"))
	return nil
}

// subject resolves a subject number, fetching the list first if the user
// has not seen it yet.
func (a *App) subject(ctx context.Context, args []string, use string) (models.Subject, error) {
	a.mu.Lock()
	list := a.subjects
	a.mu.Unlock()

	if list == nil {
		a.loading("subjects")
		fetched, err := a.gradeService.Subjects(ctx)
		if err != nil {
			return models.Subject{}, err
		}
		a.mu.Lock()
		a.subjects = fetched
		a.mu.Unlock()
		list = fetched
	}

	i, err := index(args, len(list), use)
	if err != nil {
		return models.Subject{}, err
	}
	return list[i], nil
}

// Grades shows the roster with totals and charts to teachers, and the
// student's own record to everyone else.
func (a *App) Grades(ctx context.Context, args []string) error {
	subj, err := a.subject(ctx, args, "grades <subject#>")
	if err != nil {
		return err
	}
	a.loading("grades")
	if access.ViewFor(a.role()) == access.ViewTeacher {
		students, err := a.gradeService.Roster(ctx, subj.ID)
		if err != nil {
			return err
		}
		printlnFn(rosterView(subj.Title, students))
		return nil
	}

	records, err := a.gradeService.Records(ctx, subj.ID)
	if err != nil {
		return err
	}
	printlnFn(recordView(subj, records))
	return nil
}

func rosterView(title string, students []models.Student) string {
	if len(students) == 0 {
		return fmt.Sprintf("%s: no students enrolled.", title)
	}
	rows := [][]string{{"#", "Student", "Cycle Test 1", "Cycle Test 2", "Assignments", "Total", "Grade"}}
	for i, s := range students {
		c1, c2, as := s.Grades.Components()
		rows = append(rows, []string{
			strconv.Itoa(i + 1), s.Name, score(c1), score(c2), score(as),
			score(s.Grades.Total()), s.Grades.Letter(),
		})
	}

	entries := models.Roster(students)
	return strings.Join([]string{
		title,
		table(rows),
		"",
		"Class performance",
		barChart(grades.BarTotals(entries)),
		"",
		"Grade distribution",
		sliceChart(grades.Distribution(entries)),
	}, "\n")
}

// recordView shows the record of subj. Records of other subjects are
// ignored, so a missing record shows as zeros.
func recordView(subj models.Subject, records []models.GradeRecord) string {
	var rec *models.GradeRecord
	for i := range records {
		if records[i].Subject.ID == subj.ID {
			rec = &records[i]
			break
		}
	}

	c1, c2, as := rec.Components()
	rows := [][]string{
		{"Cycle Test 1", score(c1)},
		{"Cycle Test 2", score(c2)},
		{"Assignments", score(as)},
		{"Total", score(rec.Total())},
		{"Grade", rec.Letter()},
	}
	var sc grades.Scores
	if rec != nil {
		sc = rec
	}
	return strings.Join([]string{
		subj.Title,
		table(rows),
		"",
		"Score breakdown",
		sliceChart(grades.ScoreBreakdown(sc)),
	}, "\n")
}

func (a *App) readScore(prompt string) (float64, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, inputError(fmt.Sprintf("%q is not a number.", s))
	}
	return v, nil
}

// EnterGrade lets a teacher record one student's marks and shows the
// refreshed roster.
func (a *App) EnterGrade(ctx context.Context, args []string) error {
	subj, err := a.subject(ctx, args, "grade <subject#>")
	if err != nil {
		return err
	}
	a.loading("students")
	students, err := a.gradeService.Roster(ctx, subj.ID)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		printlnFn(fmt.Sprintf("%s: no students enrolled.", subj.Title))
		return nil
	}

	names := make([]string, 0, len(students))
	for _, s := range students {
		names = append(names, s.Name)
	}
	i, err := getChoiceIndex(a.reader, "Student", names, -1, a.out)
	if err != nil {
		return err
	}
	student := students[i]

	in := models.GradeInput{StudentID: student.ID, SubjectID: subj.ID}
	if in.CycleTest1, err = a.readScore("Cycle Test 1"); err != nil {
		return err
	}
	if in.CycleTest2, err = a.readScore("Cycle Test 2"); err != nil {
		return err
	}
	if in.Assignments, err = a.readScore("Assignments"); err != nil {
		return err
	}

	updated, err := a.gradeService.Submit(ctx, in)
	if err != nil {
		return err
	}
	printlnFn("Grades saved.")
	printlnFn(rosterView(subj.Title, updated))
	return nil
}

// Export writes the subject roster to an .xlsx file.
func (a *App) Export(ctx context.Context, args []string) error {
	subj, err := a.subject(ctx, args, "export <subject#> [file.xlsx]")
	if err != nil {
		return err
	}
	path := export.FileName(subj.Title)
	if len(args) > 1 {
		path = args[1]
	}
	if err := a.gradeService.Export(ctx, subj, path); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Exported %s grades to %s", subj.Title, path))
	return nil
}
