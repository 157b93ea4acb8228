package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/config"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/dmitrijs2005/studentdiary/internal/client/session"
	"github.com/dmitrijs2005/studentdiary/internal/logging"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu     sync.Mutex
	stored *models.Session
}

func (m *memRepo) Get(context.Context) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stored == nil {
		return nil, nil
	}
	s := *m.stored
	return &s, nil
}

func (m *memRepo) Save(_ context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = &s
	return nil
}

func (m *memRepo) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = nil
	return nil
}

// fakeAPI implements the parts of client.Client the pages use. Calling
// anything else panics through the nil embedded interface.
type fakeAPI struct {
	client.Client

	mu    sync.Mutex
	calls []string

	tokens client.TokenStore

	loginErr  error
	subjects  []models.Subject
	students  []models.Student
	records   []models.GradeRecord
	submitted []models.GradeInput
	tasks     []models.Task
	due       []models.Task
	dueErr    error
	deleteErr error
	calendar  []models.CalendarEntry
	updateErr error
	alumni    []models.Message
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Login(_ context.Context, c models.Credentials) (*models.AuthResponse, error) {
	f.record("login")
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.AuthResponse{Token: "tok", Name: "Priya", Email: c.Email}, nil
}

func (f *fakeAPI) Signup(_ context.Context, r models.SignupRequest) (*models.AuthResponse, error) {
	f.record("signup")
	return &models.AuthResponse{Token: "tok", Name: r.Name, Email: r.Email}, nil
}

func (f *fakeAPI) CurrentUser(context.Context) (*models.Profile, error) {
	f.record("user")
	return &models.Profile{Name: "Meena", Email: "meena@diary.dev", Role: models.RoleTeacher, AdditionalInfo: "Maths"}, nil
}

func (f *fakeAPI) Subjects(_ context.Context, role models.Role) ([]models.Subject, error) {
	f.record("subjects:" + string(role))
	return f.subjects, nil
}

func (f *fakeAPI) Students(_ context.Context, subjectID string) ([]models.Student, error) {
	f.record("students:" + subjectID)
	return f.students, nil
}

func (f *fakeAPI) Grades(_ context.Context, subjectID string) ([]models.GradeRecord, error) {
	f.record("grades:" + subjectID)
	return f.records, nil
}

func (f *fakeAPI) SubmitGrade(_ context.Context, in models.GradeInput) error {
	f.record("submit")
	f.mu.Lock()
	f.submitted = append(f.submitted, in)
	f.mu.Unlock()
	return nil
}

func (f *fakeAPI) Tasks(context.Context) ([]models.Task, error) {
	f.record("tasks")
	return f.tasks, nil
}

func (f *fakeAPI) UpdateTask(_ context.Context, id string, in models.TaskUpdate) (*models.Task, error) {
	f.record("update:" + id)
	for _, t := range f.tasks {
		if t.ID == id {
			t.Completed = in.Completed
			return &t, nil
		}
	}
	return nil, &client.StatusError{Code: 404}
}

func (f *fakeAPI) DeleteTask(_ context.Context, id string) error {
	f.record("delete:" + id)
	return f.deleteErr
}

func (f *fakeAPI) CheckDeadlines(ctx context.Context) ([]models.Task, error) {
	f.record("deadlines")
	if f.dueErr != nil {
		if f.tokens != nil {
			_ = f.tokens.Invalidate(ctx)
		}
		return nil, f.dueErr
	}
	return f.due, nil
}

func (f *fakeAPI) Calendar(context.Context) ([]models.CalendarEntry, error) {
	f.record("calendar")
	return f.calendar, nil
}

func (f *fakeAPI) UpdateCalendarEntry(_ context.Context, e models.CalendarEntry) error {
	f.record("updatecal:" + e.ID)
	return f.updateErr
}

func (f *fakeAPI) AlumniMessages(context.Context) ([]models.Message, error) {
	f.record("alumni")
	return f.alumni, nil
}

// output collects everything printed through printlnFn.
type output struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}

func captureOutput(t *testing.T) *output {
	t.Helper()
	o := &output{}
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		o.mu.Lock()
		defer o.mu.Unlock()
		return fmt.Fprintln(&o.buf, a...)
	}
	t.Cleanup(func() { printlnFn = orig })
	return o
}

func stubPassword(t *testing.T) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { getPassword = orig })
}

// newTestApp returns an App logged in as role (RoleUnknown for logged out)
// whose prompts read from input.
func newTestApp(t *testing.T, role models.Role, api *fakeAPI, input string) *App {
	t.Helper()
	provider := session.NewProvider(&memRepo{}, logging.Discard())
	if role != models.RoleUnknown {
		require.NoError(t, provider.Login(context.Background(), models.Session{Role: role, Name: "Test", Email: "t@diary.dev", Token: "opaque"}))
	}
	api.tokens = provider

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DeadlineCheckInterval = 10 * time.Millisecond

	a := newApp(cfg, logging.Discard(), provider, api)
	a.reader = bufio.NewReader(strings.NewReader(input))
	a.out = io.Discard
	a.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		a.LeavePage()
		a.watchers.Wait()
	})
	return a
}
