package models

import (
	"strings"
	"time"
)

// Task categories and priorities accepted by the backend.
var (
	TaskCategories = []string{"Personal", "Education", "Others"}
	TaskPriorities = []string{"Low", "Medium", "High"}
)

const (
	DefaultTaskCategory = "Personal"
	DefaultTaskPriority = "Medium"
)

// Task is a to-do list item.
type Task struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	DueDate   time.Time `json:"dueDate"`
	Completed bool      `json:"completed"`
}

// Matches reports whether term occurs (case-insensitively) in the task text,
// category or priority. An empty term matches everything.
func (t Task) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.Text), term) ||
		strings.Contains(strings.ToLower(t.Category), term) ||
		strings.Contains(strings.ToLower(t.Priority), term)
}

// HoursUntilDue returns whole hours from now until the due date, rounded
// toward negative infinity.
func (t Task) HoursUntilDue(now time.Time) int {
	d := t.DueDate.Sub(now)
	h := int(d / time.Hour)
	if d < 0 && d%time.Hour != 0 {
		h--
	}
	return h
}

// FilterTasks returns the tasks matching term, preserving order.
func FilterTasks(tasks []Task, term string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Matches(term) {
			out = append(out, t)
		}
	}
	return out
}

// TaskInput is the payload of POST /api/tasks.
type TaskInput struct {
	Text     string    `json:"text" validate:"required"`
	Category string    `json:"category" validate:"required,oneof=Personal Education Others"`
	Priority string    `json:"priority" validate:"required,oneof=Low Medium High"`
	DueDate  time.Time `json:"dueDate" validate:"required"`
}

// TaskUpdate is the payload of PUT /api/tasks/:id.
type TaskUpdate struct {
	Completed bool `json:"completed"`
}
