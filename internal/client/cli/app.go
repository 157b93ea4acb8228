package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/config"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	sessionrepo "github.com/dmitrijs2005/studentdiary/internal/client/repositories/session"
	"github.com/dmitrijs2005/studentdiary/internal/client/services"
	"github.com/dmitrijs2005/studentdiary/internal/client/session"
	"github.com/dmitrijs2005/studentdiary/internal/logging"
)

// Page names. Entering a page cancels whatever the previous page started.
const (
	pageNone        = ""
	pageProfile     = "profile"
	pageSubjects    = "subjects"
	pageGrades      = "grades"
	pageTasks       = "tasks"
	pageCalendar    = "calendar"
	pageAssignments = "assignments"
	pageForum       = "forum"
	pageAlumni      = "alumni"
)

// page is the screen the user is currently on. Its context lives until the
// user navigates away or the session ends.
type page struct {
	name   string
	ctx    context.Context
	cancel context.CancelFunc
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	sessions *session.Provider

	authService       services.AuthService
	gradeService      services.GradeService
	taskService       services.TaskService
	calendarService   services.CalendarService
	assignmentService services.AssignmentService
	messageService    services.MessageService
	subjectService    services.SubjectService

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	mu   sync.Mutex
	page *page
	// watchers tracks page goroutines so close can wait for them
	watchers sync.WaitGroup

	// last listings, addressed by the 1-based numbers shown to the user
	subjects []models.Subject
	forums   []models.Subject
	tasks    []models.Task
	calendar []models.CalendarEntry
}

// NewApp opens the local session database and wires the HTTP client, the
// session provider and every page service.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	provider := session.NewProvider(sessionrepo.NewSQLiteRepository(db), logger)

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, provider, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(c, logger, provider, api)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, provider *session.Provider, api client.Client) *App {
	a := &App{
		config:            c,
		logger:            logger,
		sessions:          provider,
		authService:       services.NewAuthService(api, provider),
		gradeService:      services.NewGradeService(api, provider),
		taskService:       services.NewTaskService(api, provider),
		calendarService:   services.NewCalendarService(api, provider),
		assignmentService: services.NewAssignmentService(api, provider),
		messageService:    services.NewMessageService(api, provider),
		subjectService:    services.NewSubjectService(api, provider),
		reader:            bufio.NewReader(os.Stdin),
		out:               os.Stdout,
		now:               time.Now,
	}
	provider.OnTeardown(a.onTeardown)
	return a
}

// Run restores any saved session, then blocks in the REPL until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	s, err := a.authService.Restore(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	}

	printlnFn("Student Diary CLI (type 'help' for commands)")
	if s.Authenticated() {
		printlnFn(fmt.Sprintf("Welcome back, %s (%s).", s.Name, s.Role))
	}

	scanner := bufio.NewScanner(lineReader{r: a.reader})
	runREPL(ctx, a, a.status, scanner)
	return nil
}

func (a *App) close() {
	a.LeavePage()
	a.watchers.Wait()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().Authenticated()
}

func (a *App) role() models.Role {
	return a.sessions.Role()
}

func (a *App) status() string {
	s := a.sessions.Current()
	if !s.Authenticated() {
		return "guest"
	}
	name := s.Email
	if s.Name != "" {
		name = s.Name
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.page != nil && a.page.name != pageNone {
		return fmt.Sprintf("%s@%s [%s]", name, s.Role, a.page.name)
	}
	return fmt.Sprintf("%s@%s", name, s.Role)
}

// onTeardown runs whenever the session is cleared, whether by logout, by a
// lapsed token or by the backend rejecting it.
func (a *App) onTeardown(reason error) {
	a.LeavePage()

	a.mu.Lock()
	a.subjects, a.forums, a.tasks, a.calendar = nil, nil, nil, nil
	a.mu.Unlock()

	if reason != session.ReasonLogout {
		printlnFn("Your session has ended. Please log in again.")
	}
}

// enterPage switches to the named page and returns its context. Staying on
// the same page keeps the running watchers.
func (a *App) enterPage(ctx context.Context, name string) context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.page != nil && a.page.name == name {
		return a.page.ctx
	}
	a.leavePageLocked()

	pctx, cancel := context.WithCancel(ctx)
	a.page = &page{name: name, ctx: pctx, cancel: cancel}

	if name == pageTasks {
		a.watchers.Add(1)
		go func() {
			defer a.watchers.Done()
			a.StartDeadlineWatcher(pctx, a.config.DeadlineCheckInterval)
		}()
	}
	return pctx
}

// LeavePage cancels the current page, stopping its watchers.
func (a *App) LeavePage() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.leavePageLocked()
}

func (a *App) leavePageLocked() {
	if a.page == nil {
		return
	}
	a.page.cancel()
	a.page = nil
}

func (a *App) currentPage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.page == nil {
		return pageNone
	}
	return a.page.name
}

// loading prints the indicator shown while a page fetches its data.
func (a *App) loading(what string) {
	printlnFn(fmt.Sprintf("Loading %s...", what))
}

// StartDeadlineWatcher polls the backend for tasks close to their deadline,
// once immediately and then every interval, until ctx is done. An ended
// session stops the watcher.
func (a *App) StartDeadlineWatcher(ctx context.Context, interval time.Duration) {
	if !a.checkDeadlines(ctx) {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.checkDeadlines(ctx) {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// checkDeadlines reports whether the watcher should keep going.
func (a *App) checkDeadlines(ctx context.Context) bool {
	reqCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	tasks, err := a.taskService.DueSoon(reqCtx)
	cancel()

	if ctx.Err() != nil {
		return false
	}
	if err != nil {
		if services.IsLoginRedirect(err) {
			return false
		}
		a.logger.Warn(ctx, "deadline check failed", "error", err)
		return true
	}

	for _, d := range services.Deadlines(tasks, a.now()) {
		printlnFn(fmt.Sprintf("Task Deadline Approaching! %q is due in %d hours", d.Task.Text, d.Hours))
	}
	return true
}
