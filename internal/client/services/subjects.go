package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/access"
	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// SubjectService lets teachers create subjects and maintain their units.
type SubjectService interface {
	Create(ctx context.Context, s models.Subject) (*models.Subject, error)
	// AddUnit appends u to s and returns the updated subject; s itself is
	// not modified.
	AddUnit(ctx context.Context, s models.Subject, u models.Unit) (models.Subject, error)
}

type subjectService struct {
	client   client.Client
	sessions Sessions
}

func NewSubjectService(c client.Client, sessions Sessions) SubjectService {
	return &subjectService{client: c, sessions: sessions}
}

func (s *subjectService) Create(ctx context.Context, subj models.Subject) (*models.Subject, error) {
	if _, err := guard(ctx, s.sessions, access.ManageSubjects); err != nil {
		return nil, err
	}
	subj.Title = strings.TrimSpace(subj.Title)
	if err := check(subj); err != nil {
		return nil, err
	}
	created, err := s.client.CreateSubject(ctx, subj)
	if err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}
	return created, nil
}

func (s *subjectService) AddUnit(ctx context.Context, subj models.Subject, u models.Unit) (models.Subject, error) {
	if _, err := guard(ctx, s.sessions, access.ManageSubjects); err != nil {
		return subj, err
	}
	u.Title = strings.TrimSpace(u.Title)
	if u.Title == "" {
		return subj, &client.ValidationError{Fields: []string{"title"}}
	}

	units := append(slices.Clone(subj.Units), u)
	if err := s.client.UpdateUnits(ctx, subj.ID, units); err != nil {
		return subj, fmt.Errorf("update units: %w", err)
	}
	subj.Units = units
	return subj, nil
}
