package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/access"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

var kindLabels = map[models.CalendarKind]string{
	models.KindHoliday:    "holiday",
	models.KindEvent:      "event",
	models.KindWorkingDay: "working day",
}

// Calendar shows the academic calendar. Teachers also see the row numbers
// used by the edit commands.
func (a *App) Calendar(ctx context.Context, _ []string) error {
	a.loading("calendar")
	entries, err := a.calendarService.List(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.calendar = entries
	a.mu.Unlock()

	printlnFn(calendarView(entries, access.ViewFor(a.role())))
	return nil
}

func calendarView(entries []models.CalendarEntry, v access.View) string {
	if len(entries) == 0 {
		return "The calendar is empty."
	}
	header := []string{"Day", "Date", "Description", ""}
	if v == access.ViewTeacher {
		header = append([]string{"#"}, header...)
	}
	rows := [][]string{header}
	for i, e := range entries {
		row := []string{e.Day, e.Date, e.Description, kindLabels[e.Kind()]}
		if v == access.ViewTeacher {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}
	return table(rows)
}

func (a *App) AddCalendarEntry(ctx context.Context, _ []string) error {
	day, err := getSimpleText(a.reader, "Day", a.out)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	e, err := a.calendarService.Add(ctx, day, date, desc)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.calendar = append(a.calendar, *e)
	list := a.calendar
	a.mu.Unlock()

	printlnFn(calendarView(list, access.ViewTeacher))
	return nil
}

func (a *App) calendarEntry(args []string, use string) (models.CalendarEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	i, err := index(args, len(a.calendar), use)
	if err != nil {
		return models.CalendarEntry{}, err
	}
	return a.calendar[i], nil
}

// EditCalendarEntry changes one field of a row. On failure the row keeps
// its previous value.
func (a *App) EditCalendarEntry(ctx context.Context, args []string) error {
	const use = "editevent <row#> <day|date|description>"
	e, err := a.calendarEntry(args, use)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return usage(use)
	}
	field := models.CalendarField(strings.ToLower(args[1]))

	prompt := "New " + string(field)
	if field == models.FieldDate {
		prompt += " (YYYY-MM-DD)"
	}
	value, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}

	updated, err := a.calendarService.Edit(ctx, e, field, value)
	if err != nil {
		return err
	}

	a.mu.Lock()
	for i := range a.calendar {
		if a.calendar[i].ID == updated.ID {
			a.calendar[i] = updated
		}
	}
	list := a.calendar
	a.mu.Unlock()

	printlnFn(calendarView(list, access.ViewTeacher))
	return nil
}

func (a *App) DeleteCalendarEntry(ctx context.Context, args []string) error {
	e, err := a.calendarEntry(args, "delevent <row#>")
	if err != nil {
		return err
	}
	if err := a.calendarService.Delete(ctx, e.ID); err != nil {
		return err
	}

	a.mu.Lock()
	kept := make([]models.CalendarEntry, 0, len(a.calendar))
	for _, x := range a.calendar {
		if x.ID != e.ID {
			kept = append(kept, x)
		}
	}
	a.calendar = kept
	a.mu.Unlock()

	printlnFn(fmt.Sprintf("Deleted %s %s.", e.Date, e.Description))
	return nil
}
