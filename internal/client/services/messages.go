package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/access"
	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// MessageService backs the classroom forum (per subject, students and
// teachers) and the alumni forum.
type MessageService interface {
	Forums(ctx context.Context) ([]models.Subject, error)
	List(ctx context.Context, subjectID string) ([]models.Message, error)
	Post(ctx context.Context, subjectID, text string) (*models.Message, error)
	AlumniList(ctx context.Context) ([]models.Message, error)
	AlumniPost(ctx context.Context, text string) (*models.Message, error)
}

type messageService struct {
	client   client.Client
	sessions Sessions
}

func NewMessageService(c client.Client, sessions Sessions) MessageService {
	return &messageService{client: c, sessions: sessions}
}

func (m *messageService) Forums(ctx context.Context) ([]models.Subject, error) {
	if _, err := guard(ctx, m.sessions, access.ClassroomForum); err != nil {
		return nil, err
	}
	subjects, err := m.client.ForumSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("forums: %w", err)
	}
	return subjects, nil
}

func (m *messageService) List(ctx context.Context, subjectID string) ([]models.Message, error) {
	if _, err := guard(ctx, m.sessions, access.ClassroomForum); err != nil {
		return nil, err
	}
	msgs, err := m.client.Messages(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("messages: %w", err)
	}
	return msgs, nil
}

func (m *messageService) Post(ctx context.Context, subjectID, text string) (*models.Message, error) {
	if _, err := guard(ctx, m.sessions, access.ClassroomForum); err != nil {
		return nil, err
	}
	in := models.MessageInput{Text: strings.TrimSpace(text), SubjectID: subjectID}
	if err := check(in); err != nil {
		return nil, err
	}
	msg, err := m.client.PostMessage(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("post message: %w", err)
	}
	return msg, nil
}

func (m *messageService) AlumniList(ctx context.Context) ([]models.Message, error) {
	if _, err := guard(ctx, m.sessions, access.AlumniForum); err != nil {
		return nil, err
	}
	msgs, err := m.client.AlumniMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("alumni messages: %w", err)
	}
	return msgs, nil
}

func (m *messageService) AlumniPost(ctx context.Context, text string) (*models.Message, error) {
	if _, err := guard(ctx, m.sessions, access.AlumniForum); err != nil {
		return nil, err
	}
	in := models.MessageInput{Text: strings.TrimSpace(text)}
	if err := check(in); err != nil {
		return nil, err
	}
	msg, err := m.client.PostAlumniMessage(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("post alumni message: %w", err)
	}
	return msg, nil
}
