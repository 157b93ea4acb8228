package models

import (
	"fmt"
	"strings"
	"time"
)

// CalendarDateLayout is the DD.MM.YYYY form the backend stores.
const CalendarDateLayout = "02.01.2006"

// InputDateLayout is the YYYY-MM-DD form users type.
const InputDateLayout = "2006-01-02"

// CalendarKind classifies a calendar row for display.
type CalendarKind string

const (
	KindHoliday    CalendarKind = "holiday"
	KindEvent      CalendarKind = "event"
	KindWorkingDay CalendarKind = "working-day"
	KindOther      CalendarKind = ""
)

// CalendarEntry is one row of the academic calendar.
type CalendarEntry struct {
	ID          string `json:"_id,omitempty"`
	Day         string `json:"day"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Kind derives the row class from the description.
func (e CalendarEntry) Kind() CalendarKind {
	d := strings.ToLower(e.Description)
	switch {
	case strings.Contains(d, "holiday"):
		return KindHoliday
	case strings.Contains(d, "event"):
		return KindEvent
	case strings.Contains(d, "working"):
		return KindWorkingDay
	default:
		return KindOther
	}
}

// CalendarDate converts a YYYY-MM-DD input into the stored DD.MM.YYYY form.
func CalendarDate(input string) (string, error) {
	t, err := time.Parse(InputDateLayout, strings.TrimSpace(input))
	if err != nil {
		return "", fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return t.Format(CalendarDateLayout), nil
}

// CalendarField names an editable column of a calendar row.
type CalendarField string

const (
	FieldDay         CalendarField = "day"
	FieldDate        CalendarField = "date"
	FieldDescription CalendarField = "description"
)

// With returns a copy of e with field set to value. Dates are expected in
// input form and converted.
func (e CalendarEntry) With(field CalendarField, value string) (CalendarEntry, error) {
	switch field {
	case FieldDay:
		e.Day = value
	case FieldDate:
		d, err := CalendarDate(value)
		if err != nil {
			return e, err
		}
		e.Date = d
	case FieldDescription:
		e.Description = value
	default:
		return e, fmt.Errorf("unknown calendar field %q", field)
	}
	return e, nil
}
