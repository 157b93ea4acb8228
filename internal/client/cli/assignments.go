package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

func assignmentList(title string, list []models.Assignment) string {
	if len(list) == 0 {
		return fmt.Sprintf("%s: no assignments.", title)
	}
	var b strings.Builder
	b.WriteString(title)
	for i, as := range list {
		fmt.Fprintf(&b, "\n%d. %s (due %s)", i+1, as.Title, as.DueDate.Format(models.InputDateLayout))
		if as.Description != "" {
			fmt.Fprintf(&b, "\n   %s", as.Description)
		}
		if as.File != "" {
			fmt.Fprintf(&b, "\n   brief: %s", as.File)
		}
	}
	return b.String()
}

func (a *App) Assignments(ctx context.Context, args []string) error {
	subj, err := a.subject(ctx, args, "assignments <subject#>")
	if err != nil {
		return err
	}
	a.loading("assignments")
	list, err := a.assignmentService.List(ctx, subj.ID)
	if err != nil {
		return err
	}
	printlnFn(assignmentList(subj.Title, list))
	return nil
}

// AddAssignment publishes an assignment and shows the refreshed list.
func (a *App) AddAssignment(ctx context.Context, args []string) error {
	subj, err := a.subject(ctx, args, "addassignment <subject#>")
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	desc, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	due, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}

	list, err := a.assignmentService.Create(ctx, subj.ID, models.AssignmentInput{Title: title, Description: desc, DueDate: due})
	if err != nil {
		return err
	}
	printlnFn("Assignment published.")
	printlnFn(assignmentList(subj.Title, list))
	return nil
}
