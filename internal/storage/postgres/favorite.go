package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"cookit/internal/domain"
)

type FavoriteStore struct {
	db *sqlx.DB
}

func NewFavoriteStore(db *sqlx.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

// Add saves recipeID for userID. It reports false when the recipe was
// already saved.
func (s *FavoriteStore) Add(ctx context.Context, userID, recipeID string) (bool, error) {
	query := `
		INSERT INTO user_favorites (id, user_id, recipe_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, recipe_id) DO NOTHING
		RETURNING id`

	var id string
	err := executor(ctx, s.db).QueryRowxContext(ctx, query, uuid.NewString(), userID, recipeID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("add favorite %s for %s: %w", recipeID, userID, err)
	}
	return true, nil
}

// Remove deletes the favorite and reports whether one existed.
func (s *FavoriteStore) Remove(ctx context.Context, userID, recipeID string) (bool, error) {
	res, err := executor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM user_favorites WHERE user_id = $1 AND recipe_id = $2",
		userID, recipeID,
	)
	if err != nil {
		return false, fmt.Errorf("remove favorite %s for %s: %w", recipeID, userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByUser returns the user's favorites, newest first.
func (s *FavoriteStore) ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	query := `
		SELECT id, user_id, recipe_id, created_at
		FROM user_favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id`

	var favorites []domain.Favorite
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &favorites, query, userID); err != nil {
		return nil, fmt.Errorf("list favorites for %s: %w", userID, err)
	}
	return favorites, nil
}

// SavedAmong returns the subset of recipeIDs the user has saved.
func (s *FavoriteStore) SavedAmong(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(recipeIDs) == 0 {
		return result, nil
	}

	query := `SELECT recipe_id FROM user_favorites WHERE user_id = $1 AND recipe_id = ANY($2)`

	var saved []string
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &saved, query, userID, pq.Array(recipeIDs)); err != nil {
		return nil, fmt.Errorf("check favorites for %s: %w", userID, err)
	}
	for _, id := range saved {
		result[id] = true
	}
	return result, nil
}

func (s *FavoriteStore) DeleteByUser(ctx context.Context, userID string) error {
	_, err := executor(ctx, s.db).ExecContext(ctx, "DELETE FROM user_favorites WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("delete favorites for %s: %w", userID, err)
	}
	return nil
}
