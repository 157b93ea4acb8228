package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// fakeSessions is an in-memory Sessions.
type fakeSessions struct {
	mu      sync.Mutex
	s       models.Session
	stored  *models.Session
	logouts int
}

func loggedIn(role models.Role) *fakeSessions {
	return &fakeSessions{s: models.Session{Role: role, Name: "User", Email: "user@school.edu", Token: "tok"}}
}

func (f *fakeSessions) Current() models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.s
}

func (f *fakeSessions) Require(context.Context) (models.Session, error) {
	s := f.Current()
	if !s.Authenticated() {
		return models.Session{}, client.ErrAuthenticationRequired
	}
	return s, nil
}

func (f *fakeSessions) Restore(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stored != nil {
		f.s = *f.stored
	}
	return nil
}

func (f *fakeSessions) Login(_ context.Context, s models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s = s
	return nil
}

func (f *fakeSessions) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s = models.Session{}
	f.logouts++
	return nil
}

// fakeClient implements client.Client. Methods not overridden panic through
// the nil embedded interface, which flags unexpected backend calls.
type fakeClient struct {
	client.Client

	calls []string

	loginResp *models.AuthResponse
	loginErr  error
	lastCreds models.Credentials
	signupReq models.SignupRequest

	profile *models.Profile

	subjects    []models.Subject
	subjectRole models.Role
	students    []models.Student
	records     []models.GradeRecord
	submitErr   error
	submitted   []models.GradeInput

	tasks     []models.Task
	addedTask models.TaskInput
	update    models.TaskUpdate
	deleteErr error

	calendar      []models.CalendarEntry
	addedEntry    models.CalendarEntry
	updatedEntry  models.CalendarEntry
	updateEntErr  error
	deletedEntry  string
	assignments   []models.Assignment
	newAssignment models.AssignmentInput

	messages    []models.Message
	postedMsg   models.MessageInput
	alumniPost  models.MessageInput
	newSubject  models.Subject
	units       []models.Unit
	unitsErr    error
	defaultFail error
}

func (f *fakeClient) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeClient) Login(_ context.Context, cr models.Credentials) (*models.AuthResponse, error) {
	f.record("Login")
	f.lastCreds = cr
	return f.loginResp, f.loginErr
}

func (f *fakeClient) Signup(_ context.Context, r models.SignupRequest) (*models.AuthResponse, error) {
	f.record("Signup")
	f.signupReq = r
	return f.loginResp, f.loginErr
}

func (f *fakeClient) CurrentUser(context.Context) (*models.Profile, error) {
	f.record("CurrentUser")
	return f.profile, f.defaultFail
}

func (f *fakeClient) Subjects(_ context.Context, role models.Role) ([]models.Subject, error) {
	f.record("Subjects")
	f.subjectRole = role
	return f.subjects, f.defaultFail
}

func (f *fakeClient) ForumSubjects(context.Context) ([]models.Subject, error) {
	f.record("ForumSubjects")
	return f.subjects, f.defaultFail
}

func (f *fakeClient) CreateSubject(_ context.Context, s models.Subject) (*models.Subject, error) {
	f.record("CreateSubject")
	f.newSubject = s
	s.ID = "new-subject"
	return &s, f.defaultFail
}

func (f *fakeClient) UpdateUnits(_ context.Context, _ string, units []models.Unit) error {
	f.record("UpdateUnits")
	f.units = units
	return f.unitsErr
}

func (f *fakeClient) Students(context.Context, string) ([]models.Student, error) {
	f.record("Students")
	return f.students, f.defaultFail
}

func (f *fakeClient) Grades(context.Context, string) ([]models.GradeRecord, error) {
	f.record("Grades")
	return f.records, f.defaultFail
}

func (f *fakeClient) SubmitGrade(_ context.Context, in models.GradeInput) error {
	f.record("SubmitGrade")
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, in)
	for i := range f.students {
		if f.students[i].ID == in.StudentID {
			f.students[i].Grades = &models.GradeRecord{
				StudentID: in.StudentID, CycleTest1: in.CycleTest1, CycleTest2: in.CycleTest2, Assignments: in.Assignments,
			}
		}
	}
	return nil
}

func (f *fakeClient) Tasks(context.Context) ([]models.Task, error) {
	f.record("Tasks")
	return f.tasks, f.defaultFail
}

func (f *fakeClient) AddTask(_ context.Context, in models.TaskInput) (*models.Task, error) {
	f.record("AddTask")
	f.addedTask = in
	return &models.Task{ID: "t-new", Text: in.Text, Category: in.Category, Priority: in.Priority, DueDate: in.DueDate}, f.defaultFail
}

func (f *fakeClient) UpdateTask(_ context.Context, id string, in models.TaskUpdate) (*models.Task, error) {
	f.record("UpdateTask")
	f.update = in
	return &models.Task{ID: id, Completed: in.Completed}, f.defaultFail
}

func (f *fakeClient) DeleteTask(context.Context, string) error {
	f.record("DeleteTask")
	return f.deleteErr
}

func (f *fakeClient) CheckDeadlines(context.Context) ([]models.Task, error) {
	f.record("CheckDeadlines")
	return f.tasks, f.defaultFail
}

func (f *fakeClient) Calendar(context.Context) ([]models.CalendarEntry, error) {
	f.record("Calendar")
	return f.calendar, f.defaultFail
}

func (f *fakeClient) AddCalendarEntry(_ context.Context, e models.CalendarEntry) (*models.CalendarEntry, error) {
	f.record("AddCalendarEntry")
	f.addedEntry = e
	e.ID = "c-new"
	return &e, f.defaultFail
}

func (f *fakeClient) UpdateCalendarEntry(_ context.Context, e models.CalendarEntry) error {
	f.record("UpdateCalendarEntry")
	f.updatedEntry = e
	return f.updateEntErr
}

func (f *fakeClient) DeleteCalendarEntry(_ context.Context, id string) error {
	f.record("DeleteCalendarEntry")
	f.deletedEntry = id
	return f.defaultFail
}

func (f *fakeClient) Assignments(context.Context, string) ([]models.Assignment, error) {
	f.record("Assignments")
	return f.assignments, f.defaultFail
}

func (f *fakeClient) CreateAssignment(_ context.Context, _ string, in models.AssignmentInput) error {
	f.record("CreateAssignment")
	f.newAssignment = in
	f.assignments = append(f.assignments, models.Assignment{ID: "a-new", Title: in.Title})
	return f.defaultFail
}

func (f *fakeClient) Messages(context.Context, string) ([]models.Message, error) {
	f.record("Messages")
	return f.messages, f.defaultFail
}

func (f *fakeClient) PostMessage(_ context.Context, in models.MessageInput) (*models.Message, error) {
	f.record("PostMessage")
	f.postedMsg = in
	return &models.Message{ID: "m-new", Text: in.Text, SubjectID: in.SubjectID}, f.defaultFail
}

func (f *fakeClient) AlumniMessages(context.Context) ([]models.Message, error) {
	f.record("AlumniMessages")
	return f.messages, f.defaultFail
}

func (f *fakeClient) PostAlumniMessage(_ context.Context, in models.MessageInput) (*models.Message, error) {
	f.record("PostAlumniMessage")
	f.alumniPost = in
	return &models.Message{ID: "am-new", Text: in.Text}, f.defaultFail
}
