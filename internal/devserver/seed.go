package devserver

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// SeedPassword is the password of every demo account.
const SeedPassword = "diary123"

// Seed loads a teacher, two students, an alumnus, one subject with a unit
// and a few calendar rows.
func Seed(s *Store) error {
	mk := func(role models.Role, name, email, info string) (*User, error) {
		return s.CreateUser(models.SignupRequest{
			Credentials:    models.Credentials{Email: email, Password: SeedPassword, Role: role},
			Name:           name,
			AdditionalInfo: info,
			Degree:         "BSc",
			Department:     "Computer Science",
		})
	}

	teacher, err := mk(models.RoleTeacher, "Meena Raman", "teacher@diary.dev", "Data Structures")
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	for _, st := range []struct{ name, email, id string }{
		{"Priya S", "priya@diary.dev", "21CS001"},
		{"Karthik R", "karthik@diary.dev", "21CS002"},
	} {
		if _, err := mk(models.RoleStudent, st.name, st.email, st.id); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	if _, err := mk(models.RoleAlumni, "Devi K", "alumni@diary.dev", "2022"); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	s.CreateSubject(teacher, models.Subject{
		Title:      "Data Structures",
		Degree:     "BSc",
		Department: "Computer Science",
		Units: []models.Unit{{
			Title:    "Unit 1: Arrays and Lists",
			Sections: []models.Section{{Title: "Introduction", Content: "Static and dynamic arrays."}},
		}},
	})

	year := time.Now().Year()
	for _, e := range []models.CalendarEntry{
		{Day: "Monday", Date: fmt.Sprintf("02.06.%d", year), Description: "Working day - semester begins"},
		{Day: "Friday", Date: fmt.Sprintf("15.08.%d", year), Description: "Independence Day holiday"},
		{Day: "Saturday", Date: fmt.Sprintf("20.09.%d", year), Description: "Sports event"},
	} {
		s.AddCalendarEntry(e)
	}
	return nil
}
