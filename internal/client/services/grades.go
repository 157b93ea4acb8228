package services

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/studentdiary/internal/client/access"
	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/export"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// GradeService serves both grade views: the teacher's roster with entry,
// and the student's read-only record.
type GradeService interface {
	// Subjects lists the subjects visible to the current role.
	Subjects(ctx context.Context) ([]models.Subject, error)
	Roster(ctx context.Context, subjectID string) ([]models.Student, error)
	// Submit stores one student's marks and returns the refreshed roster.
	Submit(ctx context.Context, in models.GradeInput) ([]models.Student, error)
	Records(ctx context.Context, subjectID string) ([]models.GradeRecord, error)
	// Export writes the roster of subject to an .xlsx file at path.
	Export(ctx context.Context, subject models.Subject, path string) error
}

type gradeService struct {
	client   client.Client
	sessions Sessions
}

func NewGradeService(c client.Client, sessions Sessions) GradeService {
	return &gradeService{client: c, sessions: sessions}
}

func (g *gradeService) Subjects(ctx context.Context) ([]models.Subject, error) {
	s, err := g.sessions.Require(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := g.client.Subjects(ctx, s.Role)
	if err != nil {
		return nil, fmt.Errorf("subjects: %w", err)
	}
	return subjects, nil
}

func (g *gradeService) Roster(ctx context.Context, subjectID string) ([]models.Student, error) {
	if _, err := guard(ctx, g.sessions, access.EnterGrades); err != nil {
		return nil, err
	}
	students, err := g.client.Students(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	return students, nil
}

func (g *gradeService) Submit(ctx context.Context, in models.GradeInput) ([]models.Student, error) {
	if _, err := guard(ctx, g.sessions, access.EnterGrades); err != nil {
		return nil, err
	}
	if err := check(in); err != nil {
		return nil, err
	}
	if err := g.client.SubmitGrade(ctx, in); err != nil {
		return nil, fmt.Errorf("submit grade: %w", err)
	}

	students, err := g.client.Students(ctx, in.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("refresh roster: %w", err)
	}
	return students, nil
}

func (g *gradeService) Records(ctx context.Context, subjectID string) ([]models.GradeRecord, error) {
	if _, err := g.sessions.Require(ctx); err != nil {
		return nil, err
	}
	records, err := g.client.Grades(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("grades: %w", err)
	}
	return records, nil
}

func (g *gradeService) Export(ctx context.Context, subject models.Subject, path string) error {
	if _, err := guard(ctx, g.sessions, access.ExportGrades); err != nil {
		return err
	}
	students, err := g.client.Students(ctx, subject.ID)
	if err != nil {
		return fmt.Errorf("roster: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteRoster(f, subject.Title, students); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
