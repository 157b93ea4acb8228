package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/access"
	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

type AssignmentService interface {
	List(ctx context.Context, subjectID string) ([]models.Assignment, error)
	// Create publishes an assignment and returns the refreshed list.
	Create(ctx context.Context, subjectID string, in models.AssignmentInput) ([]models.Assignment, error)
}

type assignmentService struct {
	client   client.Client
	sessions Sessions
}

func NewAssignmentService(c client.Client, sessions Sessions) AssignmentService {
	return &assignmentService{client: c, sessions: sessions}
}

func (a *assignmentService) List(ctx context.Context, subjectID string) ([]models.Assignment, error) {
	if _, err := a.sessions.Require(ctx); err != nil {
		return nil, err
	}
	list, err := a.client.Assignments(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("assignments: %w", err)
	}
	return list, nil
}

func (a *assignmentService) Create(ctx context.Context, subjectID string, in models.AssignmentInput) ([]models.Assignment, error) {
	if _, err := guard(ctx, a.sessions, access.CreateAssignment); err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.DueDate = strings.TrimSpace(in.DueDate)
	if err := check(in); err != nil {
		return nil, err
	}

	if err := a.client.CreateAssignment(ctx, subjectID, in); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	list, err := a.client.Assignments(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("refresh assignments: %w", err)
	}
	return list, nil
}
