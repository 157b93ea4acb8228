package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/access"
	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// CalendarService reads the academic calendar for everyone and edits it for
// teachers.
type CalendarService interface {
	List(ctx context.Context) ([]models.CalendarEntry, error)
	// Add creates a row; date is YYYY-MM-DD.
	Add(ctx context.Context, day, date, description string) (*models.CalendarEntry, error)
	// Edit changes one field of e and returns the stored row.
	Edit(ctx context.Context, e models.CalendarEntry, field models.CalendarField, value string) (models.CalendarEntry, error)
	Delete(ctx context.Context, id string) error
}

type calendarService struct {
	client   client.Client
	sessions Sessions
}

func NewCalendarService(c client.Client, sessions Sessions) CalendarService {
	return &calendarService{client: c, sessions: sessions}
}

func (c *calendarService) List(ctx context.Context) ([]models.CalendarEntry, error) {
	if _, err := c.sessions.Require(ctx); err != nil {
		return nil, err
	}
	entries, err := c.client.Calendar(ctx)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}
	return entries, nil
}

func (c *calendarService) Add(ctx context.Context, day, date, description string) (*models.CalendarEntry, error) {
	if _, err := guard(ctx, c.sessions, access.EditCalendar); err != nil {
		return nil, err
	}

	var missing []string
	for _, f := range []struct{ name, value string }{{"day", day}, {"date", date}, {"description", description}} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &client.ValidationError{Fields: missing}
	}

	stored, err := models.CalendarDate(date)
	if err != nil {
		return nil, &client.ValidationError{Message: err.Error()}
	}

	e, err := c.client.AddCalendarEntry(ctx, models.CalendarEntry{
		Day:         strings.TrimSpace(day),
		Date:        stored,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return nil, fmt.Errorf("add calendar entry: %w", err)
	}
	return e, nil
}

func (c *calendarService) Edit(ctx context.Context, e models.CalendarEntry, field models.CalendarField, value string) (models.CalendarEntry, error) {
	if _, err := guard(ctx, c.sessions, access.EditCalendar); err != nil {
		return e, err
	}
	updated, err := e.With(field, strings.TrimSpace(value))
	if err != nil {
		return e, &client.ValidationError{Message: err.Error()}
	}
	if err := c.client.UpdateCalendarEntry(ctx, updated); err != nil {
		return e, fmt.Errorf("update calendar entry: %w", err)
	}
	return updated, nil
}

func (c *calendarService) Delete(ctx context.Context, id string) error {
	if _, err := guard(ctx, c.sessions, access.EditCalendar); err != nil {
		return err
	}
	if err := c.client.DeleteCalendarEntry(ctx, id); err != nil {
		return fmt.Errorf("delete calendar entry: %w", err)
	}
	return nil
}
