// Package access decides what a role may see and do in the client.
//
// Pages render one of two views, never a blend of both: the teacher view
// with mutation controls, or the read-only view for everyone else. Services
// call Require before any role-gated endpoint so a request the backend
// would refuse is never sent. None of this is a security boundary; the
// backend re-checks every call.
package access

import (
	"fmt"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

type View int

const (
	ViewReadOnly View = iota
	ViewTeacher
)

func (v View) String() string {
	if v == ViewTeacher {
		return "teacher"
	}
	return "read-only"
}

// ViewFor maps a role to its view. Anything but a teacher, including the
// unknown role of a missing session, gets the read-only view.
func ViewFor(role models.Role) View {
	if role == models.RoleTeacher {
		return ViewTeacher
	}
	return ViewReadOnly
}

type Capability string

const (
	EditCalendar     Capability = "edit calendar"
	EnterGrades      Capability = "enter grades"
	CreateAssignment Capability = "create assignments"
	ManageSubjects   Capability = "manage subjects"
	ExportGrades     Capability = "export grades"
	SubmitAssignment Capability = "submit assignments"
	ClassroomForum   Capability = "classroom forum"
	AlumniForum      Capability = "alumni forum"
)

var grants = map[Capability][]models.Role{
	EditCalendar:     {models.RoleTeacher},
	EnterGrades:      {models.RoleTeacher},
	CreateAssignment: {models.RoleTeacher},
	ManageSubjects:   {models.RoleTeacher},
	ExportGrades:     {models.RoleTeacher},
	SubmitAssignment: {models.RoleStudent},
	ClassroomForum:   {models.RoleStudent, models.RoleTeacher},
	AlumniForum:      {models.RoleAlumni},
}

// Can reports whether role holds c. Unknown capabilities are denied.
func Can(role models.Role, c Capability) bool {
	for _, r := range grants[c] {
		if r == role {
			return true
		}
	}
	return false
}

// Capabilities lists what role may do, in a stable order.
func Capabilities(role models.Role) []Capability {
	var out []Capability
	for _, c := range []Capability{
		EditCalendar, EnterGrades, CreateAssignment, ManageSubjects,
		ExportGrades, SubmitAssignment, ClassroomForum, AlumniForum,
	} {
		if Can(role, c) {
			out = append(out, c)
		}
	}
	return out
}

// Require returns an error wrapping client.ErrForbiddenRole unless role
// holds c.
func Require(role models.Role, c Capability) error {
	if Can(role, c) {
		return nil
	}
	return fmt.Errorf("%w: %s cannot %s", client.ErrForbiddenRole, role, c)
}

// RequireTeacher guards the teacher-only mutations.
func RequireTeacher(role models.Role) error {
	if role == models.RoleTeacher {
		return nil
	}
	return fmt.Errorf("%w: teacher role required, have %s", client.ErrForbiddenRole, role)
}
