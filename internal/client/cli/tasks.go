package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// taskDueLayout is how due dates are typed and shown on the to-do page.
const taskDueLayout = "2006-01-02 15:04"

// Tasks shows the to-do list, optionally filtered by a search term. Being
// on this page keeps the deadline watcher running.
func (a *App) Tasks(ctx context.Context, args []string) error {
	a.loading("tasks")
	list, err := a.taskService.List(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.tasks = list
	a.mu.Unlock()

	printlnFn(taskList(list))
	return nil
}

func taskList(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "No tasks."
	}
	rows := [][]string{{"#", "", "Task", "Category", "Priority", "Due"}}
	for i, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		due := ""
		if !t.DueDate.IsZero() {
			due = t.DueDate.Local().Format(taskDueLayout)
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), mark, t.Text, t.Category, t.Priority, due})
	}
	return table(rows)
}

// AddTask prompts for a new to-do item. Category and priority default to
// Personal and Medium.
func (a *App) AddTask(ctx context.Context, _ []string) error {
	text, err := getSimpleText(a.reader, "Task", a.out)
	if err != nil {
		return err
	}
	category, err := getChoice(a.reader, "Category", models.TaskCategories, models.DefaultTaskCategory, a.out)
	if err != nil {
		return err
	}
	priority, err := getChoice(a.reader, "Priority", models.TaskPriorities, models.DefaultTaskPriority, a.out)
	if err != nil {
		return err
	}
	dueText, err := getSimpleText(a.reader, "Due (YYYY-MM-DD HH:MM)", a.out)
	if err != nil {
		return err
	}
	var due time.Time
	if dueText != "" {
		due, err = time.ParseInLocation(taskDueLayout, dueText, time.Local)
		if err != nil {
			return inputError("Due date must look like 2024-05-01 17:00.")
		}
	}

	task, err := a.taskService.Add(ctx, models.TaskInput{Text: text, Category: category, Priority: priority, DueDate: due})
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.tasks = append(a.tasks, *task)
	a.mu.Unlock()

	printlnFn(fmt.Sprintf("Added %q.", task.Text))
	return nil
}

func (a *App) task(args []string, use string) (models.Task, int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	i, err := index(args, len(a.tasks), use)
	if err != nil {
		return models.Task{}, 0, err
	}
	return a.tasks[i], i, nil
}

func (a *App) setCompleted(ctx context.Context, args []string, completed bool, use string) error {
	t, i, err := a.task(args, use)
	if err != nil {
		return err
	}
	updated, err := a.taskService.SetCompleted(ctx, t.ID, completed)
	if err != nil {
		return err
	}

	a.mu.Lock()
	if i < len(a.tasks) && a.tasks[i].ID == t.ID {
		a.tasks[i] = *updated
	}
	list := a.tasks
	a.mu.Unlock()

	printlnFn(taskList(list))
	return nil
}

func (a *App) CompleteTask(ctx context.Context, args []string) error {
	return a.setCompleted(ctx, args, true, "done <task#>")
}

func (a *App) ReopenTask(ctx context.Context, args []string) error {
	return a.setCompleted(ctx, args, false, "undo <task#>")
}

// DeleteTask removes a task. The local list only changes once the backend
// confirmed the delete.
func (a *App) DeleteTask(ctx context.Context, args []string) error {
	t, _, err := a.task(args, "deltask <task#>")
	if err != nil {
		return err
	}
	if err := a.taskService.Delete(ctx, t.ID); err != nil {
		return err
	}

	a.mu.Lock()
	kept := make([]models.Task, 0, len(a.tasks))
	for _, x := range a.tasks {
		if x.ID != t.ID {
			kept = append(kept, x)
		}
	}
	a.tasks = kept
	a.mu.Unlock()

	printlnFn(fmt.Sprintf("Deleted %q.", t.Text))
	return nil
}
