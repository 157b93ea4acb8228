package devserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) issue(c *gin.Context, code int, u *User) {
	token, err := GenerateToken(u.ID, u.Role, []byte(s.cfg.SecretKey), s.cfg.TokenTTL)
	if err != nil {
		abort(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(code, models.AuthResponse{Token: token, Name: u.Name, Email: u.Email})
}

func (s *Server) login(c *gin.Context) {
	var cr models.Credentials
	if err := c.ShouldBindJSON(&cr); err != nil {
		abort(c, http.StatusBadRequest, "Email, password and role are required")
		return
	}

	u, err := s.store.Authenticate(cr.Email, cr.Password)
	if err != nil {
		abort(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if u.Role != cr.Role {
		abort(c, http.StatusForbidden, "Access denied. You are registered as a "+string(u.Role)+".")
		return
	}
	s.issue(c, http.StatusOK, u)
}

func (s *Server) signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	u, err := s.store.CreateUser(req)
	if errors.Is(err, ErrUserExists) {
		abort(c, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		abort(c, http.StatusInternalServerError, "Server error")
		return
	}
	s.issue(c, http.StatusCreated, u)
}

func (s *Server) profile(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c).Profile)
}

func (s *Server) subjectsByRole(c *gin.Context) {
	u := currentUser(c)
	if models.ParseRole(c.Param("id")) != u.Role {
		abort(c, http.StatusForbidden, "Access denied")
		return
	}
	c.JSON(http.StatusOK, s.store.SubjectsFor(u))
}

func (s *Server) forumSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.SubjectsFor(currentUser(c)))
}

func (s *Server) createSubject(c *gin.Context) {
	var subj models.Subject
	if err := c.ShouldBindJSON(&subj); err != nil || strings.TrimSpace(subj.Title) == "" {
		abort(c, http.StatusBadRequest, "Title is required")
		return
	}
	c.JSON(http.StatusCreated, s.store.CreateSubject(currentUser(c), subj))
}

func (s *Server) updateUnits(c *gin.Context) {
	var body struct {
		Units []models.Unit `json:"units"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abort(c, http.StatusBadRequest, "Invalid units")
		return
	}
	if err := s.store.SetUnits(currentUser(c), c.Param("id"), body.Units); err != nil {
		abort(c, http.StatusNotFound, "Subject not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Units updated"})
}

func (s *Server) students(c *gin.Context) {
	list, err := s.store.Students(c.Param("subjectId"))
	if err != nil {
		abort(c, http.StatusNotFound, "Subject not found")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) grades(c *gin.Context) {
	u := currentUser(c)
	studentID := ""
	if u.Role != models.RoleTeacher {
		studentID = u.ID
	}
	c.JSON(http.StatusOK, s.store.Grades(c.Param("subjectId"), studentID))
}

func (s *Server) putGrade(c *gin.Context) {
	var in models.GradeInput
	if err := c.ShouldBindJSON(&in); err != nil || in.StudentID == "" || in.SubjectID == "" {
		abort(c, http.StatusBadRequest, "Student and subject are required")
		return
	}
	rec, err := s.store.PutGrade(in)
	if err != nil {
		abort(c, http.StatusNotFound, "Student or subject not found")
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) tasks(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Tasks(currentUser(c).ID))
}

func (s *Server) addTask(c *gin.Context) {
	var in models.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Text) == "" {
		abort(c, http.StatusBadRequest, "Text is required")
		return
	}
	c.JSON(http.StatusCreated, s.store.AddTask(currentUser(c).ID, in))
}

func (s *Server) updateTask(c *gin.Context) {
	var in models.TaskUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		abort(c, http.StatusBadRequest, "Invalid body")
		return
	}
	t, err := s.store.UpdateTask(currentUser(c).ID, c.Param("id"), in.Completed)
	if err != nil {
		abort(c, http.StatusNotFound, "Task not found")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) deleteTask(c *gin.Context) {
	if err := s.store.DeleteTask(currentUser(c).ID, c.Param("id")); err != nil {
		abort(c, http.StatusNotFound, "Task not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

func (s *Server) checkDeadlines(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.DueWithin(currentUser(c).ID, s.cfg.DeadlineWindow))
}

func (s *Server) calendar(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Calendar())
}

func bindCalendarEntry(c *gin.Context) (models.CalendarEntry, bool) {
	var e models.CalendarEntry
	if err := c.ShouldBindJSON(&e); err != nil || e.Day == "" || e.Date == "" || e.Description == "" {
		abort(c, http.StatusBadRequest, "Day, date and description are required")
		return e, false
	}
	if _, err := time.Parse(models.CalendarDateLayout, e.Date); err != nil {
		abort(c, http.StatusBadRequest, "Date must be DD.MM.YYYY")
		return e, false
	}
	return e, true
}

func (s *Server) addCalendarEntry(c *gin.Context) {
	e, ok := bindCalendarEntry(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, s.store.AddCalendarEntry(e))
}

func (s *Server) updateCalendarEntry(c *gin.Context) {
	e, ok := bindCalendarEntry(c)
	if !ok {
		return
	}
	e.ID = c.Param("id")
	if err := s.store.UpdateCalendarEntry(e); err != nil {
		abort(c, http.StatusNotFound, "Entry not found")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) deleteCalendarEntry(c *gin.Context) {
	if err := s.store.DeleteCalendarEntry(c.Param("id")); err != nil {
		abort(c, http.StatusNotFound, "Entry not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}

func (s *Server) assignments(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Assignments(c.Param("subjectId")))
}

func (s *Server) createAssignment(c *gin.Context) {
	title, desc, due := c.PostForm("title"), c.PostForm("description"), c.PostForm("dueDate")
	if title == "" || desc == "" || due == "" {
		abort(c, http.StatusBadRequest, "Title, description and due date are required")
		return
	}
	dueDate, err := time.Parse(models.InputDateLayout, due)
	if err != nil {
		abort(c, http.StatusBadRequest, "Due date must be YYYY-MM-DD")
		return
	}
	a, err := s.store.AddAssignment(c.Param("subjectId"), models.Assignment{Title: title, Description: desc, DueDate: dueDate})
	if err != nil {
		abort(c, http.StatusNotFound, "Subject not found")
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (s *Server) messages(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Messages(c.Param("subjectId")))
}

func (s *Server) postMessage(c *gin.Context) {
	var in models.MessageInput
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Text) == "" || in.SubjectID == "" {
		abort(c, http.StatusBadRequest, "Text and subject are required")
		return
	}
	c.JSON(http.StatusCreated, s.store.PostMessage(currentUser(c), in.SubjectID, in.Text))
}

func (s *Server) alumniMessages(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.AlumniMessages())
}

func (s *Server) postAlumniMessage(c *gin.Context) {
	var in models.MessageInput
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Text) == "" {
		abort(c, http.StatusBadRequest, "Text is required")
		return
	}
	c.JSON(http.StatusCreated, s.store.PostAlumniMessage(currentUser(c), in.Text))
}
