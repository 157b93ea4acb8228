package client

import (
	"context"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// Client is the Student Diary REST API as seen by the services. Every
// method except Login and Signup needs a session token.
type Client interface {
	Login(ctx context.Context, c models.Credentials) (*models.AuthResponse, error)
	Signup(ctx context.Context, r models.SignupRequest) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context) (*models.Profile, error)

	Subjects(ctx context.Context, role models.Role) ([]models.Subject, error)
	ForumSubjects(ctx context.Context) ([]models.Subject, error)
	CreateSubject(ctx context.Context, s models.Subject) (*models.Subject, error)
	UpdateUnits(ctx context.Context, subjectID string, units []models.Unit) error

	Students(ctx context.Context, subjectID string) ([]models.Student, error)
	Grades(ctx context.Context, subjectID string) ([]models.GradeRecord, error)
	SubmitGrade(ctx context.Context, in models.GradeInput) error

	Tasks(ctx context.Context) ([]models.Task, error)
	AddTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, in models.TaskUpdate) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CheckDeadlines(ctx context.Context) ([]models.Task, error)

	Calendar(ctx context.Context) ([]models.CalendarEntry, error)
	AddCalendarEntry(ctx context.Context, e models.CalendarEntry) (*models.CalendarEntry, error)
	UpdateCalendarEntry(ctx context.Context, e models.CalendarEntry) error
	DeleteCalendarEntry(ctx context.Context, id string) error

	Assignments(ctx context.Context, subjectID string) ([]models.Assignment, error)
	CreateAssignment(ctx context.Context, subjectID string, in models.AssignmentInput) error

	Messages(ctx context.Context, subjectID string) ([]models.Message, error)
	PostMessage(ctx context.Context, in models.MessageInput) (*models.Message, error)
	AlumniMessages(ctx context.Context) ([]models.Message, error)
	PostAlumniMessage(ctx context.Context, in models.MessageInput) (*models.Message, error)
}

// TokenStore supplies the bearer token and is told when the backend
// rejects it.
type TokenStore interface {
	Token() string
	Invalidate(ctx context.Context) error
}
