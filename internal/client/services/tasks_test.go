package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasks_ListFilters(t *testing.T) {
	fc := &fakeClient{tasks: []models.Task{
		{ID: "1", Text: "Read chapter 4", Category: "Education", Priority: "High"},
		{ID: "2", Text: "Buy milk", Category: "Personal", Priority: "Low"},
	}}
	svc := NewTaskService(fc, loggedIn(models.RoleStudent))

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := svc.List(context.Background(), " EDUC ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestTasks_AddAppliesDefaults(t *testing.T) {
	fc := &fakeClient{}
	svc := NewTaskService(fc, loggedIn(models.RoleAlumni))
	due := time.Date(2026, 11, 2, 17, 0, 0, 0, time.UTC)

	task, err := svc.Add(context.Background(), models.TaskInput{Text: " Submit form ", DueDate: due})
	require.NoError(t, err)

	assert.Equal(t, models.TaskInput{Text: "Submit form", Category: "Personal", Priority: "Medium", DueDate: due}, fc.addedTask)
	assert.Equal(t, "t-new", task.ID)
}

func TestTasks_AddValidates(t *testing.T) {
	fc := &fakeClient{}
	svc := NewTaskService(fc, loggedIn(models.RoleStudent))

	_, err := svc.Add(context.Background(), models.TaskInput{Priority: "Urgent"})

	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"text", "priority", "dueDate"}, verr.Fields)
	assert.Empty(t, fc.calls)
}

func TestTasks_ToggleAndDelete(t *testing.T) {
	fc := &fakeClient{deleteErr: client.ErrUnavailable}
	svc := NewTaskService(fc, loggedIn(models.RoleStudent))
	ctx := context.Background()

	task, err := svc.SetCompleted(ctx, "t1", true)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.True(t, fc.update.Completed)

	err = svc.Delete(ctx, "t1")
	assert.ErrorIs(t, err, client.ErrUnavailable)
}

func TestTasks_RequireSession(t *testing.T) {
	fc := &fakeClient{}
	svc := NewTaskService(fc, &fakeSessions{})

	_, err := svc.DueSoon(context.Background())
	assert.ErrorIs(t, err, client.ErrAuthenticationRequired)
	assert.Empty(t, fc.calls)
}

func TestDeadlines(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{ID: "1", DueDate: now.Add(5*time.Hour + 30*time.Minute)},
		{ID: "2", DueDate: now.Add(-90 * time.Minute)},
	}

	got := Deadlines(tasks, now)
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].Hours)
	assert.Equal(t, -2, got[1].Hours)
}
