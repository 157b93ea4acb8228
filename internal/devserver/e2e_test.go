package devserver_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	sessionrepo "github.com/dmitrijs2005/studentdiary/internal/client/repositories/session"
	"github.com/dmitrijs2005/studentdiary/internal/client/services"
	"github.com/dmitrijs2005/studentdiary/internal/client/session"
	"github.com/dmitrijs2005/studentdiary/internal/devserver"
	"github.com/dmitrijs2005/studentdiary/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stack struct {
	provider *session.Provider
	auth     services.AuthService
	grades   services.GradeService
	calendar services.CalendarService
	messages services.MessageService
	tasks    services.TaskService
}

func newBackend(t *testing.T, ttl time.Duration) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &devserver.Config{}
	cfg.LoadDefaults()
	cfg.TokenTTL = ttl

	store := devserver.NewStore()
	require.NoError(t, devserver.Seed(store))

	srv := httptest.NewServer(devserver.NewServer(cfg, store, logging.Discard()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

// newStack wires a client the way cmd/cli does, with its own session db.
func newStack(t *testing.T, baseURL string) *stack {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p := session.NewProvider(sessionrepo.NewSQLiteRepository(db), logging.Discard())
	api, err := client.NewHTTPClient(baseURL, 5*time.Second, p, logging.Discard())
	require.NoError(t, err)

	return &stack{
		provider: p,
		auth:     services.NewAuthService(api, p),
		grades:   services.NewGradeService(api, p),
		calendar: services.NewCalendarService(api, p),
		messages: services.NewMessageService(api, p),
		tasks:    services.NewTaskService(api, p),
	}
}

func creds(email string, role models.Role) models.Credentials {
	return models.Credentials{Email: email, Password: devserver.SeedPassword, Role: role}
}

func TestTeacherGradesVisibleToStudent(t *testing.T) {
	srv := newBackend(t, time.Hour)
	ctx := context.Background()

	teacher := newStack(t, srv.URL)
	_, err := teacher.auth.Login(ctx, creds("teacher@diary.dev", models.RoleTeacher))
	require.NoError(t, err)

	subjects, err := teacher.grades.Subjects(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	subj := subjects[0]

	roster, err := teacher.grades.Roster(ctx, subj.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	var priyaID string
	for _, s := range roster {
		assert.Equal(t, 0.0, s.Grades.Total())
		if s.Name == "Priya S" {
			priyaID = s.ID
		}
	}
	require.NotEmpty(t, priyaID)

	roster, err = teacher.grades.Submit(ctx, models.GradeInput{
		StudentID: priyaID, SubjectID: subj.ID, CycleTest1: 45, CycleTest2: 40, Assignments: 10,
	})
	require.NoError(t, err)
	for _, s := range roster {
		if s.ID == priyaID {
			assert.Equal(t, 95.0, s.Grades.Total())
			assert.Equal(t, "O", s.Grades.Letter())
		}
	}

	student := newStack(t, srv.URL)
	_, err = student.auth.Login(ctx, creds("priya@diary.dev", models.RoleStudent))
	require.NoError(t, err)

	records, err := student.grades.Records(ctx, subj.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 95.0, records[0].Total())
	assert.Equal(t, "O", records[0].Letter())
	assert.Equal(t, subj.Title, records[0].Subject.Title)
}

func TestRoleMismatchMessageIsShownVerbatim(t *testing.T) {
	srv := newBackend(t, time.Hour)
	st := newStack(t, srv.URL)

	_, err := st.auth.Login(context.Background(), creds("priya@diary.dev", models.RoleTeacher))

	require.ErrorIs(t, err, client.ErrAuthorizationDenied)
	assert.Equal(t, "Access denied. You are registered as a student.", client.UserMessage(err))
	assert.False(t, st.provider.Current().Authenticated())
}

func TestWrongPasswordIsGenericFailure(t *testing.T) {
	srv := newBackend(t, time.Hour)
	st := newStack(t, srv.URL)

	_, err := st.auth.Login(context.Background(), models.Credentials{
		Email: "priya@diary.dev", Password: "wrong", Role: models.RoleStudent,
	})
	require.Error(t, err)
	assert.Equal(t, client.GenericFailureMessage, client.UserMessage(err))
}

func TestServerRejectedTokenTearsDownSession(t *testing.T) {
	srv := newBackend(t, time.Hour)
	ctx := context.Background()
	st := newStack(t, srv.URL)

	require.NoError(t, st.provider.Login(ctx, models.Session{
		Role: models.RoleStudent, Name: "Forged", Token: "not-a-valid-jwt",
	}))

	_, err := st.tasks.List(ctx, "")
	assert.ErrorIs(t, err, client.ErrAuthenticationRequired)
	assert.False(t, st.provider.Current().Authenticated())

	_, err = st.tasks.List(ctx, "")
	assert.ErrorIs(t, err, client.ErrAuthenticationRequired)
}

func TestExpiredTokenIsClearedLocally(t *testing.T) {
	srv := newBackend(t, -time.Minute)
	ctx := context.Background()
	st := newStack(t, srv.URL)

	_, err := st.auth.Login(ctx, creds("alumni@diary.dev", models.RoleAlumni))
	require.NoError(t, err)

	_, err = st.messages.AlumniList(ctx)
	assert.ErrorIs(t, err, client.ErrAuthenticationRequired)
	assert.False(t, st.provider.Current().Authenticated())
}

func TestStudentCannotEditCalendarButCanRead(t *testing.T) {
	srv := newBackend(t, time.Hour)
	ctx := context.Background()
	st := newStack(t, srv.URL)

	_, err := st.auth.Login(ctx, creds("karthik@diary.dev", models.RoleStudent))
	require.NoError(t, err)

	rows, err := st.calendar.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	_, err = st.calendar.Add(ctx, "Monday", "2026-12-01", "Working day")
	assert.ErrorIs(t, err, client.ErrForbiddenRole)
}

func TestSessionSurvivesRestart(t *testing.T) {
	srv := newBackend(t, time.Hour)
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "session.db")

	open := func() (*session.Provider, services.AuthService) {
		db, err := client.InitDatabase(ctx, dbPath)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		p := session.NewProvider(sessionrepo.NewSQLiteRepository(db), logging.Discard())
		api, err := client.NewHTTPClient(srv.URL, time.Second, p, logging.Discard())
		require.NoError(t, err)
		return p, services.NewAuthService(api, p)
	}

	_, auth := open()
	_, err := auth.Login(ctx, creds("teacher@diary.dev", models.RoleTeacher))
	require.NoError(t, err)

	p2, auth2 := open()
	s, err := auth2.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, s.Role)
	assert.Equal(t, "Meena Raman", s.Name)

	profile, err := auth2.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", profile.AdditionalInfo)

	require.NoError(t, auth2.Logout(ctx))
	assert.False(t, p2.Current().Authenticated())

	p3, auth3 := open()
	_, err = auth3.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, p3.Current().Authenticated())
}
