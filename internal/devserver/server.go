// Package devserver is an in-memory implementation of the Student Diary
// REST API for local development and for end-to-end tests of the client.
//
// It issues HS256 JWTs, hashes passwords with bcrypt, and enforces the same
// role rules the client applies: teachers edit the calendar, grades,
// assignments and subjects; students and teachers share the classroom
// forum; alumni have their own forum. Nothing is persisted.
package devserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/dmitrijs2005/studentdiary/internal/logging"
	"github.com/gin-gonic/gin"
)

type Server struct {
	cfg    *Config
	store  *Store
	logger logging.Logger
	router *gin.Engine
}

func NewServer(cfg *Config, store *Store, logger logging.Logger) *Server {
	s := &Server{cfg: cfg, store: store, logger: logger}
	s.router = s.routes()
	return s
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	api := r.Group("/api")
	api.POST("/auth/login", s.login)
	api.POST("/auth/signup", s.signup)

	authed := api.Group("", s.authenticate)
	teacher := allow(models.RoleTeacher)

	authed.GET("/user", s.profile)

	authed.GET("/subjects", allow(models.RoleStudent, models.RoleTeacher), s.forumSubjects)
	authed.GET("/subjects/:id", s.subjectsByRole)
	authed.POST("/subjects", teacher, s.createSubject)
	authed.PUT("/subjects/:id/units", teacher, s.updateUnits)

	authed.GET("/students/:subjectId", teacher, s.students)
	authed.GET("/grades/:subjectId", s.grades)
	authed.POST("/grades", teacher, s.putGrade)

	authed.GET("/tasks", s.tasks)
	authed.POST("/tasks", s.addTask)
	authed.GET("/tasks/check-deadlines", s.checkDeadlines)
	authed.PUT("/tasks/:id", s.updateTask)
	authed.DELETE("/tasks/:id", s.deleteTask)

	authed.GET("/academic-calendar", s.calendar)
	authed.POST("/academic-calendar", teacher, s.addCalendarEntry)
	authed.PUT("/academic-calendar/:id", teacher, s.updateCalendarEntry)
	authed.DELETE("/academic-calendar/:id", teacher, s.deleteCalendarEntry)

	authed.GET("/assignments/:subjectId", s.assignments)
	authed.POST("/assignments/:subjectId", teacher, s.createAssignment)

	classroom := allow(models.RoleStudent, models.RoleTeacher)
	authed.GET("/messages/:subjectId", classroom, s.messages)
	authed.POST("/messages", classroom, s.postMessage)

	alumni := allow(models.RoleAlumni)
	authed.GET("/alumni-messages", alumni, s.alumniMessages)
	authed.POST("/alumni-messages", alumni, s.postAlumniMessage)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info(ctx, "shutting down")
	return srv.Shutdown(shutdownCtx)
}
