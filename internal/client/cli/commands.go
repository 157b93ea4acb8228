package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/access"
	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

type command struct {
	name  string
	usage string
	help  string
	page  string
	// guest commands are offered only while logged out
	guest bool
	// need is the capability required; "" means any logged-in role
	need access.Capability
	// roles, when set, restricts the command to those roles
	roles []models.Role
	run   func(a *App, ctx context.Context, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{name: "login", usage: "login", help: "log in", guest: true, run: (*App).Login},
		{name: "signup", usage: "signup", help: "create an account", guest: true, run: (*App).Signup},

		{name: "profile", usage: "profile", help: "show your profile and permissions", page: pageProfile, run: (*App).Profile},
		{name: "logout", usage: "logout", help: "log out", run: (*App).Logout},

		{name: "subjects", usage: "subjects", help: "list your subjects", page: pageSubjects, roles: learners, run: (*App).Subjects},
		{name: "grades", usage: "grades <subject#>", help: "show grades of a subject", page: pageGrades, roles: learners, run: (*App).Grades},
		{name: "grade", usage: "grade <subject#>", help: "enter a student's marks", page: pageGrades, need: access.EnterGrades, run: (*App).EnterGrade},
		{name: "export", usage: "export <subject#> [file.xlsx]", help: "export a grade roster", page: pageGrades, need: access.ExportGrades, run: (*App).Export},
		{name: "addsubject", usage: "addsubject", help: "create a subject", page: pageSubjects, need: access.ManageSubjects, run: (*App).AddSubject},
		{name: "addunit", usage: "addunit <subject#>", help: "add a unit to a subject", page: pageSubjects, need: access.ManageSubjects, run: (*App).AddUnit},

		{name: "tasks", usage: "tasks [search]", help: "show your to-do list", page: pageTasks, run: (*App).Tasks},
		{name: "addtask", usage: "addtask", help: "add a to-do item", page: pageTasks, run: (*App).AddTask},
		{name: "done", usage: "done <task#>", help: "mark a task completed", page: pageTasks, run: (*App).CompleteTask},
		{name: "undo", usage: "undo <task#>", help: "mark a task not completed", page: pageTasks, run: (*App).ReopenTask},
		{name: "deltask", usage: "deltask <task#>", help: "delete a task", page: pageTasks, run: (*App).DeleteTask},

		{name: "calendar", usage: "calendar", help: "show the academic calendar", page: pageCalendar, run: (*App).Calendar},
		{name: "addevent", usage: "addevent", help: "add a calendar row", page: pageCalendar, need: access.EditCalendar, run: (*App).AddCalendarEntry},
		{name: "editevent", usage: "editevent <row#> <day|date|description>", help: "edit a calendar row", page: pageCalendar, need: access.EditCalendar, run: (*App).EditCalendarEntry},
		{name: "delevent", usage: "delevent <row#>", help: "delete a calendar row", page: pageCalendar, need: access.EditCalendar, run: (*App).DeleteCalendarEntry},

		{name: "assignments", usage: "assignments <subject#>", help: "list assignments of a subject", page: pageAssignments, roles: learners, run: (*App).Assignments},
		{name: "addassignment", usage: "addassignment <subject#>", help: "publish an assignment", page: pageAssignments, need: access.CreateAssignment, run: (*App).AddAssignment},

		{name: "forums", usage: "forums", help: "list classroom forums", page: pageForum, need: access.ClassroomForum, run: (*App).Forums},
		{name: "forum", usage: "forum <forum#>", help: "read a classroom forum", page: pageForum, need: access.ClassroomForum, run: (*App).Forum},
		{name: "post", usage: "post <forum#>", help: "post to a classroom forum", page: pageForum, need: access.ClassroomForum, run: (*App).Post},
		{name: "alumni", usage: "alumni", help: "read the alumni forum", page: pageAlumni, need: access.AlumniForum, run: (*App).Alumni},
		{name: "alumnipost", usage: "alumnipost", help: "post to the alumni forum", page: pageAlumni, need: access.AlumniForum, run: (*App).AlumniPost},
	}
}

// learners are the roles with subjects of their own.
var learners = []models.Role{models.RoleStudent, models.RoleTeacher}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// allowed reports whether role may run c once logged in.
func (c command) allowed(role models.Role) bool {
	if c.need != "" && !access.Can(role, c.need) {
		return false
	}
	if len(c.roles) > 0 {
		for _, r := range c.roles {
			if r == role {
				return true
			}
		}
		return false
	}
	return true
}

// visible reports whether c is listed in help for the given state.
func (c command) visible(loggedIn bool, role models.Role) bool {
	if !loggedIn {
		return c.guest
	}
	return !c.guest && c.allowed(role)
}

func helpText(loggedIn bool, role models.Role) string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, c := range commands {
		if c.visible(loggedIn, role) {
			fmt.Fprintf(&b, "\n  %-45s %s", c.usage, c.help)
		}
	}
	fmt.Fprintf(&b, "\n  %-45s %s", "help", "show this list")
	fmt.Fprintf(&b, "\n  %-45s %s", "exit", "leave the program")
	return b.String()
}

// Execute runs the named command. Commands that need a session fail with
// client.ErrAuthenticationRequired while logged out; commands outside the
// current role fail without contacting the backend.
func (a *App) Execute(ctx context.Context, name string, args []string) error {
	c, ok := lookup(name)
	if !ok {
		return errUnknownCommand
	}

	loggedIn := a.isLoggedIn()
	switch {
	case c.guest && loggedIn:
		return inputError("You are already logged in. Use 'logout' first.")
	case !c.guest && !loggedIn:
		return client.ErrAuthenticationRequired
	case !c.guest && !c.allowed(a.role()):
		if c.need != "" {
			return access.Require(a.role(), c.need)
		}
		return fmt.Errorf("%w: %s cannot use %s", client.ErrForbiddenRole, a.role(), c.name)
	}

	if c.page != pageNone {
		ctx = a.enterPage(ctx, c.page)
	}
	return c.run(a, ctx, args)
}
