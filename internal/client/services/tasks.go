package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

type TaskService interface {
	// List returns the tasks matching term; "" returns all.
	List(ctx context.Context, term string) ([]models.Task, error)
	Add(ctx context.Context, in models.TaskInput) (*models.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	// DueSoon asks the backend which tasks are close to their deadline.
	DueSoon(ctx context.Context) ([]models.Task, error)
}

type taskService struct {
	client   client.Client
	sessions Sessions
}

func NewTaskService(c client.Client, sessions Sessions) TaskService {
	return &taskService{client: c, sessions: sessions}
}

func (t *taskService) List(ctx context.Context, term string) ([]models.Task, error) {
	if _, err := t.sessions.Require(ctx); err != nil {
		return nil, err
	}
	tasks, err := t.client.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("tasks: %w", err)
	}
	return models.FilterTasks(tasks, strings.TrimSpace(term)), nil
}

// Add fills in the default category and priority before validating.
func (t *taskService) Add(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	if _, err := t.sessions.Require(ctx); err != nil {
		return nil, err
	}
	in.Text = strings.TrimSpace(in.Text)
	if in.Category == "" {
		in.Category = models.DefaultTaskCategory
	}
	if in.Priority == "" {
		in.Priority = models.DefaultTaskPriority
	}
	if err := check(in); err != nil {
		return nil, err
	}

	task, err := t.client.AddTask(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	return task, nil
}

func (t *taskService) SetCompleted(ctx context.Context, id string, completed bool) (*models.Task, error) {
	if _, err := t.sessions.Require(ctx); err != nil {
		return nil, err
	}
	task, err := t.client.UpdateTask(ctx, id, models.TaskUpdate{Completed: completed})
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (t *taskService) Delete(ctx context.Context, id string) error {
	if _, err := t.sessions.Require(ctx); err != nil {
		return err
	}
	if err := t.client.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (t *taskService) DueSoon(ctx context.Context) ([]models.Task, error) {
	if _, err := t.sessions.Require(ctx); err != nil {
		return nil, err
	}
	tasks, err := t.client.CheckDeadlines(ctx)
	if err != nil {
		return nil, fmt.Errorf("check deadlines: %w", err)
	}
	return tasks, nil
}

// Deadline is one "Task Deadline Approaching!" notification.
type Deadline struct {
	Task  models.Task
	Hours int
}

// Deadlines converts due tasks into notifications relative to now.
func Deadlines(tasks []models.Task, now time.Time) []Deadline {
	out := make([]Deadline, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, Deadline{Task: t, Hours: t.HoursUntilDue(now)})
	}
	return out
}
