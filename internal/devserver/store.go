package devserver

import (
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists    = errors.New("user already exists")
	ErrBadCredential = errors.New("invalid credentials")
	ErrNotFound      = errors.New("not found")
)

// User is a registered account.
type User struct {
	models.Profile
	PasswordHash []byte
}

type gradeKey struct{ student, subject string }

// Store is the in-memory backing of the development server. It is safe for
// concurrent use.
type Store struct {
	mu sync.RWMutex

	users       map[string]*User // by id
	emails      map[string]string
	subjects    map[string]*subjectRow
	grades      map[gradeKey]*models.GradeRecord
	tasks       map[string][]models.Task // by owner id
	calendar    []models.CalendarEntry
	assignments map[string][]models.Assignment
	messages    map[string][]models.Message
	alumni      []models.Message

	now func() time.Time
}

type subjectRow struct {
	models.Subject
	TeacherID string
}

func NewStore() *Store {
	return &Store{
		users:       map[string]*User{},
		emails:      map[string]string{},
		subjects:    map[string]*subjectRow{},
		grades:      map[gradeKey]*models.GradeRecord{},
		tasks:       map[string][]models.Task{},
		assignments: map[string][]models.Assignment{},
		messages:    map[string][]models.Message{},
		now:         time.Now,
	}
}

func normEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }

// CreateUser registers req, hashing the password with bcrypt.
func (s *Store) CreateUser(req models.SignupRequest) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := normEmail(req.Email)
	if _, ok := s.emails[email]; ok {
		return nil, ErrUserExists
	}
	u := &User{
		Profile: models.Profile{
			ID:             uuid.NewString(),
			Name:           req.Name,
			Email:          email,
			Role:           req.Role,
			AdditionalInfo: req.AdditionalInfo,
			Degree:         req.Degree,
			Department:     req.Department,
		},
		PasswordHash: hash,
	}
	s.users[u.ID] = u
	s.emails[email] = u.ID
	return u, nil
}

// Authenticate checks email and password. The role is not checked here.
func (s *Store) Authenticate(email, password string) (*User, error) {
	s.mu.RLock()
	id, ok := s.emails[normEmail(email)]
	var u *User
	if ok {
		u = s.users[id]
	}
	s.mu.RUnlock()

	if u == nil {
		return nil, ErrBadCredential
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, ErrBadCredential
	}
	return u, nil
}

func (s *Store) User(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// SubjectsFor returns the subjects a user belongs to: the ones a teacher
// created, or the ones matching a student's degree and department. Alumni
// see every subject.
func (s *Store) SubjectsFor(u *User) []models.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Subject{}
	for _, row := range s.subjects {
		if s.visible(u, row) {
			out = append(out, row.Subject)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

func (s *Store) visible(u *User, row *subjectRow) bool {
	switch u.Role {
	case models.RoleTeacher:
		return row.TeacherID == u.ID
	case models.RoleStudent:
		return row.Degree == u.Degree && row.Department == u.Department
	case models.RoleAlumni:
		return true
	}
	return false
}

func (s *Store) CreateSubject(teacher *User, subj models.Subject) models.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()

	subj.ID = uuid.NewString()
	s.subjects[subj.ID] = &subjectRow{Subject: subj, TeacherID: teacher.ID}
	return subj
}

func (s *Store) SetUnits(teacher *User, subjectID string, units []models.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.subjects[subjectID]
	if !ok || row.TeacherID != teacher.ID {
		return ErrNotFound
	}
	row.Units = slices.Clone(units)
	return nil
}

func (s *Store) subject(id string) (*subjectRow, bool) {
	row, ok := s.subjects[id]
	return row, ok
}

// Students lists the students enrolled in a subject with their grades.
func (s *Store) Students(subjectID string) ([]models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.subject(subjectID)
	if !ok {
		return nil, ErrNotFound
	}
	out := []models.Student{}
	for _, u := range s.users {
		if u.Role != models.RoleStudent || u.Degree != row.Degree || u.Department != row.Department {
			continue
		}
		st := models.Student{ID: u.ID, Name: u.Name}
		if g, ok := s.grades[gradeKey{u.ID, subjectID}]; ok {
			rec := *g
			st.Grades = &rec
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Grades returns the records of a subject, restricted to studentID unless
// it is empty.
func (s *Store) Grades(subjectID, studentID string) []models.GradeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.GradeRecord{}
	for k, g := range s.grades {
		if k.subject != subjectID || (studentID != "" && k.student != studentID) {
			continue
		}
		rec := *g
		if row, ok := s.subject(subjectID); ok {
			rec.Subject = models.SubjectRef{ID: row.ID, Title: row.Title}
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out
}

func (s *Store) PutGrade(in models.GradeInput) (models.GradeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subject(in.SubjectID); !ok {
		return models.GradeRecord{}, ErrNotFound
	}
	if u, ok := s.users[in.StudentID]; !ok || u.Role != models.RoleStudent {
		return models.GradeRecord{}, ErrNotFound
	}

	k := gradeKey{in.StudentID, in.SubjectID}
	rec, ok := s.grades[k]
	if !ok {
		rec = &models.GradeRecord{ID: uuid.NewString(), StudentID: in.StudentID, Subject: models.SubjectRef{ID: in.SubjectID}}
		s.grades[k] = rec
	}
	rec.CycleTest1, rec.CycleTest2, rec.Assignments = in.CycleTest1, in.CycleTest2, in.Assignments
	return *rec, nil
}

func (s *Store) Tasks(owner string) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task{}, s.tasks[owner]...)
}

func (s *Store) AddTask(owner string, in models.TaskInput) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Task{ID: uuid.NewString(), Text: in.Text, Category: in.Category, Priority: in.Priority, DueDate: in.DueDate}
	s.tasks[owner] = append(s.tasks[owner], t)
	return t
}

func (s *Store) UpdateTask(owner, id string, completed bool) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks[owner] {
		if s.tasks[owner][i].ID == id {
			s.tasks[owner][i].Completed = completed
			return s.tasks[owner][i], nil
		}
	}
	return models.Task{}, ErrNotFound
}

func (s *Store) DeleteTask(owner, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.tasks[owner]
	i := slices.IndexFunc(tasks, func(t models.Task) bool { return t.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	s.tasks[owner] = slices.Delete(tasks, i, i+1)
	return nil
}

// DueWithin returns the open tasks of owner due between now and now+window.
func (s *Store) DueWithin(owner string, window time.Duration) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	out := []models.Task{}
	for _, t := range s.tasks[owner] {
		if !t.Completed && !t.DueDate.Before(now) && t.DueDate.Sub(now) <= window {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) Calendar() []models.CalendarEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CalendarEntry{}, s.calendar...)
}

func (s *Store) AddCalendarEntry(e models.CalendarEntry) models.CalendarEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	s.calendar = append(s.calendar, e)
	return e
}

func (s *Store) UpdateCalendarEntry(e models.CalendarEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.calendar {
		if s.calendar[i].ID == e.ID {
			s.calendar[i] = e
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteCalendarEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.calendar, func(e models.CalendarEntry) bool { return e.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	s.calendar = slices.Delete(s.calendar, i, i+1)
	return nil
}

func (s *Store) Assignments(subjectID string) []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Assignment{}, s.assignments[subjectID]...)
}

func (s *Store) AddAssignment(subjectID string, a models.Assignment) (models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subject(subjectID); !ok {
		return models.Assignment{}, ErrNotFound
	}
	a.ID = uuid.NewString()
	s.assignments[subjectID] = append(s.assignments[subjectID], a)
	return a, nil
}

func sender(u *User) *models.Sender {
	return &models.Sender{ID: u.ID, Name: u.Name, Role: u.Role}
}

func (s *Store) Messages(subjectID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Message{}, s.messages[subjectID]...)
}

func (s *Store) PostMessage(from *User, subjectID, text string) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.Message{ID: uuid.NewString(), Text: text, SubjectID: subjectID, Sender: sender(from), CreatedAt: s.now()}
	s.messages[subjectID] = append(s.messages[subjectID], m)
	return m
}

func (s *Store) AlumniMessages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Message{}, s.alumni...)
}

func (s *Store) PostAlumniMessage(from *User, text string) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.Message{ID: uuid.NewString(), Text: text, Sender: sender(from), CreatedAt: s.now()}
	s.alumni = append(s.alumni, m)
	return m
}
