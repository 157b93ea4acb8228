package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// AuthService covers everything that creates, restores or ends a session.
type AuthService interface {
	Login(ctx context.Context, cr models.Credentials) (models.Session, error)
	Signup(ctx context.Context, req models.SignupRequest) (models.Session, error)
	Logout(ctx context.Context) error
	// Restore resumes the persisted session, if any and not expired.
	Restore(ctx context.Context) (models.Session, error)
	Profile(ctx context.Context) (*models.Profile, error)
}

type authService struct {
	client   client.Client
	sessions Sessions
}

func NewAuthService(c client.Client, sessions Sessions) AuthService {
	return &authService{client: c, sessions: sessions}
}

func normalizeCredentials(cr models.Credentials) models.Credentials {
	cr.Email = strings.TrimSpace(cr.Email)
	cr.Role = models.ParseRole(string(cr.Role))
	return cr
}

func (a *authService) Login(ctx context.Context, cr models.Credentials) (models.Session, error) {
	cr = normalizeCredentials(cr)
	if err := check(cr); err != nil {
		return models.Session{}, err
	}

	resp, err := a.client.Login(ctx, cr)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	return a.start(ctx, cr, resp)
}

func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.Session, error) {
	req.Credentials = normalizeCredentials(req.Credentials)
	req.Name = strings.TrimSpace(req.Name)
	if err := check(req); err != nil {
		return models.Session{}, err
	}

	resp, err := a.client.Signup(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("signup: %w", err)
	}
	return a.start(ctx, req.Credentials, resp)
}

func (a *authService) start(ctx context.Context, cr models.Credentials, resp *models.AuthResponse) (models.Session, error) {
	if resp == nil || resp.Token == "" {
		return models.Session{}, fmt.Errorf("%w: no token in auth response", client.ErrRequestFailed)
	}

	s := models.Session{Role: cr.Role, Name: resp.Name, Email: resp.Email, Token: resp.Token}
	if s.Email == "" {
		s.Email = cr.Email
	}
	if err := a.sessions.Login(ctx, s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}

func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	if err := a.sessions.Restore(ctx); err != nil {
		return models.Session{}, err
	}
	return a.sessions.Current(), nil
}

func (a *authService) Profile(ctx context.Context) (*models.Profile, error) {
	if _, err := a.sessions.Require(ctx); err != nil {
		return nil, err
	}
	p, err := a.client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return p, nil
}

// IsLoginRedirect reports whether err should send the user back to the
// login prompt.
func IsLoginRedirect(err error) bool {
	return errors.Is(err, client.ErrAuthenticationRequired)
}
