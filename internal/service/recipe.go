package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"cookit/internal/domain"
	"cookit/internal/draft"
	"cookit/internal/security"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 50
)

// RecipeDetail is a recipe as seen by a particular user.
type RecipeDetail struct {
	domain.Recipe
	IsSaved bool `json:"isSaved"`
}

type RecipeService struct {
	recipes   RecipeStore
	favorites FavoriteStore
	users     UserStore
	txManager TransactionManager
	publisher Publisher
	sanitizer *security.TextSanitizer
	logger    *slog.Logger
	newID     func() string
}

func NewRecipeService(
	recipes RecipeStore,
	favorites FavoriteStore,
	users UserStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *RecipeService {
	return &RecipeService{
		recipes:   recipes,
		favorites: favorites,
		users:     users,
		txManager: txManager,
		publisher: publisher,
		sanitizer: security.NewTextSanitizer(),
		logger:    logger.With("service", "recipes"),
		newID:     uuid.NewString,
	}
}

// GetRecipe loads a recipe. IsSaved is only filled in when userID is set.
func (s *RecipeService) GetRecipe(ctx context.Context, id, userID string) (*RecipeDetail, error) {
	recipe, err := s.recipes.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &RecipeDetail{Recipe: *recipe}
	if userID == "" {
		return detail, nil
	}

	saved, err := s.favorites.SavedAmong(ctx, userID, []string{id})
	if err != nil {
		return nil, fmt.Errorf("check saved: %w", err)
	}
	detail.IsSaved = saved[id]
	return detail, nil
}

// ListPage reads a single page without keeping any feed state.
func (s *RecipeService) ListPage(ctx context.Context, category domain.Category, after domain.Cursor, limit int) (domain.RecipePage, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	page, err := s.recipes.ListRecipes(ctx, domain.RecipeQuery{
		Category: category,
		Limit:    limit,
		After:    after,
	})
	if err != nil {
		return domain.RecipePage{}, fmt.Errorf("list recipes: %w", err)
	}
	return page, nil
}

// CreateRecipe stores a recipe authored by user. Incomplete ingredient and
// step rows are dropped before validation.
func (s *RecipeService) CreateRecipe(ctx context.Context, user domain.AuthUser, input domain.Recipe) (*domain.Recipe, error) {
	recipe := draft.FromRecipe(input).Recipe()
	recipe.Author = input.Author
	if strings.TrimSpace(recipe.Author) == "" {
		recipe.Author = user.Email
	}
	s.sanitizer.SanitizeRecipe(&recipe)

	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	recipe.ID = s.newID()
	recipe.AuthorID = user.UID

	if err := s.recipes.PutRecipe(ctx, &recipe); err != nil {
		return nil, fmt.Errorf("store recipe: %w", err)
	}

	s.logger.Info("recipe created",
		"recipe_id", recipe.ID,
		"author_id", recipe.AuthorID,
		"category", recipe.PrimaryCategory(),
	)
	s.publish(ctx, domain.ActionCreated, recipe.ID, user.UID)

	return &recipe, nil
}

func (s *RecipeService) RecordView(ctx context.Context, id, userID string) error {
	if err := s.recipes.IncrementViewCount(ctx, id); err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	s.publish(ctx, domain.ActionViewed, id, userID)
	return nil
}

// SaveRecipe adds the recipe to the user's favorites. Saving twice is a
// no-op and does not count twice.
func (s *RecipeService) SaveRecipe(ctx context.Context, user domain.AuthUser, recipeID string) error {
	if _, err := s.recipes.GetRecipe(ctx, recipeID); err != nil {
		return err
	}

	var added bool
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		// Tokens issued outside this service's sign-in endpoints have no
		// profile row yet, and favourites reference it.
		if err := s.users.Upsert(txCtx, domain.NewUserProfile(user)); err != nil {
			return err
		}

		var err error
		added, err = s.favorites.Add(txCtx, user.UID, recipeID)
		if err != nil || !added {
			return err
		}
		return s.recipes.AdjustSavedCount(txCtx, recipeID, 1)
	})
	if err != nil {
		return fmt.Errorf("save recipe: %w", err)
	}

	if added {
		s.publish(ctx, domain.ActionSaved, recipeID, user.UID)
	}
	return nil
}

// UnsaveRecipe removes the recipe from the user's favorites. Removing a
// recipe that is not saved is a no-op.
func (s *RecipeService) UnsaveRecipe(ctx context.Context, userID, recipeID string) error {
	var removed bool
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = s.favorites.Remove(txCtx, userID, recipeID)
		if err != nil || !removed {
			return err
		}
		err = s.recipes.AdjustSavedCount(txCtx, recipeID, -1)
		if errors.Is(err, domain.ErrRecipeNotFound) {
			// The recipe is gone; dropping the favorite is all that is left.
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("unsave recipe: %w", err)
	}

	if removed {
		s.publish(ctx, domain.ActionUnsaved, recipeID, userID)
	}
	return nil
}

// ListFavorites returns the user's saved recipes, newest first. Favorites
// whose recipe no longer exists are left out.
func (s *RecipeService) ListFavorites(ctx context.Context, userID string) ([]domain.Recipe, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if len(favorites) == 0 {
		return []domain.Recipe{}, nil
	}

	ids := make([]string, len(favorites))
	for i, f := range favorites {
		ids[i] = f.RecipeID
	}

	recipes, err := s.recipes.GetRecipes(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load favorite recipes: %w", err)
	}
	return recipes, nil
}

// publish sends an event when a publisher is configured. Failures are
// logged only.
func (s *RecipeService) publish(ctx context.Context, action domain.RecipeAction, recipeID, userID string) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.Publish(ctx, domain.RecipeEvent{
		Action:    action,
		RecipeID:  recipeID,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("failed to publish recipe event",
			"action", action,
			"recipe_id", recipeID,
			"error", err,
		)
	}
}
