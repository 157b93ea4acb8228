package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// AddSubject creates a subject for a degree/department cohort.
func (a *App) AddSubject(ctx context.Context, _ []string) error {
	title, err := getSimpleText(a.reader, "Subject title", a.out)
	if err != nil {
		return err
	}
	degree, err := getChoice(a.reader, "Degree", models.Degrees, "", a.out)
	if err != nil {
		return err
	}
	department, err := getChoice(a.reader, "Department", models.Departments, "", a.out)
	if err != nil {
		return err
	}

	created, err := a.subjectService.Create(ctx, models.Subject{Title: title, Degree: degree, Department: department})
	if err != nil {
		return err
	}

	a.mu.Lock()
	if a.subjects != nil {
		a.subjects = append(a.subjects, *created)
	}
	a.mu.Unlock()

	printlnFn(fmt.Sprintf("Subject %q created.", created.Title))
	return nil
}

// AddUnit appends a unit, optionally with one section, to a subject.
func (a *App) AddUnit(ctx context.Context, args []string) error {
	subj, err := a.subject(ctx, args, "addunit <subject#>")
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Unit title", a.out)
	if err != nil {
		return err
	}
	unit := models.Unit{Title: title}

	section, err := getSimpleText(a.reader, "First section title (empty to skip)", a.out)
	if err != nil {
		return err
	}
	if section != "" {
		content, err := GetMultiline(a.reader, "Section content", a.out)
		if err != nil {
			return err
		}
		unit.Sections = []models.Section{{Title: section, Content: content}}
	}

	updated, err := a.subjectService.AddUnit(ctx, subj, unit)
	if err != nil {
		return err
	}

	a.mu.Lock()
	for i := range a.subjects {
		if a.subjects[i].ID == updated.ID {
			a.subjects[i] = updated
		}
	}
	a.mu.Unlock()

	printlnFn(fmt.Sprintf("Unit %q added to %s (%d units).", unit.Title, updated.Title, len(updated.Units)))
	return nil
}
