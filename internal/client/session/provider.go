// Package session is the single owner of the current user's identity.
//
// A Provider holds an immutable models.Session value. Readers get copies via
// Current, Role and Token; the only writers are Login and Logout (Invalidate
// is Logout triggered by the backend). Every change is mirrored to the local
// repository so a restarted client resumes the same session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	sessionrepo "github.com/dmitrijs2005/studentdiary/internal/client/repositories/session"
	"github.com/dmitrijs2005/studentdiary/internal/logging"
)

// ErrEmptyToken is returned by Login when the backend handed out no token.
var ErrEmptyToken = errors.New("login response carried no token")

// Reasons passed to teardown listeners.
var (
	ReasonLogout  = errors.New("logged out")
	ReasonExpired = errors.New("session expired")
)

// Provider implements client.TokenStore.
type Provider struct {
	mu        sync.RWMutex
	current   models.Session
	repo      sessionrepo.Repository
	logger    logging.Logger
	now       func() time.Time
	listeners []func(reason error)
}

var _ client.TokenStore = (*Provider)(nil)

func NewProvider(repo sessionrepo.Repository, logger logging.Logger) *Provider {
	return &Provider{repo: repo, logger: logger, now: time.Now}
}

// OnTeardown registers fn to be called after the session has been cleared.
// fn runs without the provider lock held.
func (p *Provider) OnTeardown(fn func(reason error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Restore loads the persisted session. An expired token is discarded.
func (p *Provider) Restore(ctx context.Context) error {
	s, err := p.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if s == nil || !s.Authenticated() {
		return nil
	}
	if TokenExpired(s.Token, p.now()) {
		p.logger.Info(ctx, "stored session expired", "email", s.Email)
		return p.teardown(ctx, ReasonExpired)
	}
	if role := TokenRole(s.Token); role != "" && models.ParseRole(role) != s.Role {
		p.logger.Warn(ctx, "stored role does not match token", "email", s.Email, "stored", s.Role.String(), "token", role)
		return p.teardown(ctx, ReasonExpired)
	}

	p.mu.Lock()
	p.current = *s
	p.mu.Unlock()

	p.logger.Info(ctx, "session restored", "email", s.Email, "role", s.Role.String())
	return nil
}

// Current returns a copy of the current session. The zero value means
// nobody is logged in.
func (p *Provider) Current() models.Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Role returns the role of the logged-in user, or RoleUnknown when there is
// no session.
func (p *Provider) Role() models.Role {
	s := p.Current()
	if !s.Authenticated() {
		return models.RoleUnknown
	}
	return s.Role
}

// Token returns the bearer token, or "" when logged out.
func (p *Provider) Token() string {
	return p.Current().Token
}

// Require returns the current session, or client.ErrAuthenticationRequired
// when there is none. A locally expired token tears the session down first.
func (p *Provider) Require(ctx context.Context) (models.Session, error) {
	s := p.Current()
	if !s.Authenticated() {
		return models.Session{}, client.ErrAuthenticationRequired
	}
	if TokenExpired(s.Token, p.now()) {
		if err := p.teardown(ctx, ReasonExpired); err != nil {
			p.logger.Error(ctx, "session teardown failed", "error", err)
		}
		return models.Session{}, client.ErrAuthenticationRequired
	}
	return s, nil
}

// Login replaces the current session with s and persists it.
func (p *Provider) Login(ctx context.Context, s models.Session) error {
	if s.Token == "" {
		return ErrEmptyToken
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.repo.Save(ctx, s); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	p.current = s
	return nil
}

// Logout clears the in-memory and the persisted session. Calling it with no
// session is a no-op.
func (p *Provider) Logout(ctx context.Context) error {
	return p.teardown(ctx, ReasonLogout)
}

// Invalidate is called by the API client when the backend rejects the token.
func (p *Provider) Invalidate(ctx context.Context) error {
	return p.teardown(ctx, ReasonExpired)
}

// teardown clears memory even when the repository fails, so no further
// authenticated calls are attempted; the repository error is returned.
func (p *Provider) teardown(ctx context.Context, reason error) error {
	p.mu.Lock()
	wasAuthenticated := p.current.Authenticated()
	p.current = models.Session{}
	err := p.repo.Clear(ctx)
	listeners := append([]func(error){}, p.listeners...)
	p.mu.Unlock()

	if err != nil {
		err = fmt.Errorf("clear persisted session: %w", err)
	}
	if wasAuthenticated {
		p.logger.Info(ctx, "session cleared", "reason", reason.Error())
		for _, fn := range listeners {
			fn(reason)
		}
	}
	return err
}
