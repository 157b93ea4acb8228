package services

import (
	"context"

	"github.com/dmitrijs2005/studentdiary/internal/client/access"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

// Sessions is the part of session.Provider the services depend on.
type Sessions interface {
	Current() models.Session
	Require(ctx context.Context) (models.Session, error)
	Restore(ctx context.Context) error
	Login(ctx context.Context, s models.Session) error
	Logout(ctx context.Context) error
}

// guard returns the session when it exists and its role holds c.
func guard(ctx context.Context, sessions Sessions, c access.Capability) (models.Session, error) {
	s, err := sessions.Require(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if err := access.Require(s.Role, c); err != nil {
		return models.Session{}, err
	}
	return s, nil
}
