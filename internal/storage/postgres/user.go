package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cookit/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// Upsert creates the profile or refreshes email and anonymity after a link.
// An existing email is kept when the new profile has none.
func (s *UserStore) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	query := `
		INSERT INTO users (user_id, email, is_anonymous, is_premium)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			email = COALESCE(EXCLUDED.email, users.email),
			is_anonymous = EXCLUDED.is_anonymous
		RETURNING created_at`

	err := sqlx.GetContext(ctx, executor(ctx, s.db), &profile.CreatedAt, query,
		profile.UserID,
		profile.Email,
		profile.IsAnonymous,
		profile.IsPremium,
	)
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", profile.UserID, err)
	}
	return nil
}

func (s *UserStore) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT user_id, email, is_anonymous, is_premium, created_at
		FROM users
		WHERE user_id = $1`

	var profile domain.UserProfile
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return &profile, nil
}

func (s *UserStore) Delete(ctx context.Context, userID string) error {
	_, err := executor(ctx, s.db).ExecContext(ctx, "DELETE FROM users WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}
