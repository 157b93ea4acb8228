package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/access"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/dmitrijs2005/studentdiary/internal/common"
)

// getSimpleText, getPassword, getChoice and getChoiceIndex are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText  = GetSimpleText
	getPassword    = GetPassword
	getChoice      = GetChoice
	getChoiceIndex = GetChoiceIndex
)

func roleNames() []string {
	out := make([]string, 0, len(models.Roles))
	for _, r := range models.Roles {
		out = append(out, string(r))
	}
	return out
}

func (a *App) credentials() (models.Credentials, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	defer common.WipeByteArray(password)
	role, err := getChoice(a.reader, "Log in as", roleNames(), "", a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{Email: email, Password: string(password), Role: models.Role(role)}, nil
}

// Login prompts for email, password and role and starts a session.
func (a *App) Login(ctx context.Context, _ []string) error {
	cr, err := a.credentials()
	if err != nil {
		return err
	}

	s, err := a.authService.Login(ctx, cr)
	if err != nil {
		a.logger.Debug(ctx, "login failed", "email", cr.Email, "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s! You are logged in as %s.", s.Name, s.Role))
	return nil
}

// Signup collects the profile fields for the chosen role and creates the
// account. A successful signup is also a login.
func (a *App) Signup(ctx context.Context, _ []string) error {
	cr, err := a.credentials()
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	info, err := getSimpleText(a.reader, "Enter "+strings.ToLower(models.ParseRole(string(cr.Role)).AdditionalInfoLabel()), a.out)
	if err != nil {
		return err
	}
	degree, err := getChoice(a.reader, "Degree", models.Degrees, "", a.out)
	if err != nil {
		return err
	}
	department, err := getChoice(a.reader, "Department", models.Departments, "", a.out)
	if err != nil {
		return err
	}

	s, err := a.authService.Signup(ctx, models.SignupRequest{
		Credentials:    cr,
		Name:           name,
		AdditionalInfo: info,
		Degree:         degree,
		Department:     department,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", s.Name))
	return nil
}

// Logout ends the session locally. It is safe to call twice.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Profile shows the backend's view of the current user and the actions the
// role may take.
func (a *App) Profile(ctx context.Context, _ []string) error {
	a.loading("profile")
	p, err := a.authService.Profile(ctx)
	if err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("Name:  %s", p.Name),
		fmt.Sprintf("Email: %s", p.Email),
		fmt.Sprintf("Role:  %s", a.role()),
	}
	if p.AdditionalInfo != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", a.role().AdditionalInfoLabel(), p.AdditionalInfo))
	}
	if p.Degree != "" || p.Department != "" {
		lines = append(lines, fmt.Sprintf("Course: %s %s", p.Degree, p.Department))
	}

	caps := access.Capabilities(a.role())
	names := make([]string, 0, len(caps))
	for _, c := range caps {
		names = append(names, string(c))
	}
	if len(names) == 0 {
		names = append(names, "read only")
	}
	lines = append(lines, "You can: "+strings.Join(names, ", "))

	printlnFn(strings.Join(lines, "\n"))
	return nil
}
