package session

import (
	"context"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
)

type Repository interface {
	// Get returns the stored session, or (nil, nil) when there is none.
	Get(ctx context.Context) (*models.Session, error)
	// Save replaces the stored session.
	Save(ctx context.Context, s models.Session) error
	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
