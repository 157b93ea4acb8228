package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studentdiary/internal/client/models"
	"github.com/dmitrijs2005/studentdiary/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.Session, error) {
	var (
		s    models.Session
		role string
	)
	err := r.db.QueryRowContext(ctx, `SELECT role, name, email, token FROM session WHERE id = 1`).
		Scan(&role, &s.Name, &s.Email, &s.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	s.Role = models.ParseRole(role)
	return &s, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, s models.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (id, role, name, email, token, created_at)
		VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			role = excluded.role,
			name = excluded.name,
			email = excluded.email,
			token = excluded.token,
			created_at = excluded.created_at
	`, string(s.Role), s.Name, s.Email, s.Token)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
