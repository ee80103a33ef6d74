package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"

	"cookit/internal/domain"
)

type RecipeStore interface {
	ListRecipes(ctx context.Context, q domain.RecipeQuery) (domain.RecipePage, error)
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	GetRecipes(ctx context.Context, ids []string) ([]domain.Recipe, error)
	PutRecipe(ctx context.Context, recipe *domain.Recipe) error
	ImportRecipe(ctx context.Context, recipe *domain.Recipe) (bool, error)
	IncrementViewCount(ctx context.Context, id string) error
	AdjustSavedCount(ctx context.Context, id string, delta int64) error
}

type UserStore interface {
	Upsert(ctx context.Context, profile *domain.UserProfile) error
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Delete(ctx context.Context, userID string) error
}

type FavoriteStore interface {
	Add(ctx context.Context, userID, recipeID string) (bool, error)
	Remove(ctx context.Context, userID, recipeID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error)
	SavedAmong(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.RecipeEvent) error
	Close() error
}

type Source interface {
	ID() string
	FetchRecipes(ctx context.Context) ([]domain.Recipe, error)
}

type Authenticator interface {
	SignUp(ctx context.Context, email, password string) (*domain.Session, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignInAnonymously(ctx context.Context) (*domain.Session, error)
	SignInWithGoogle(ctx context.Context, googleIDToken string) (*domain.Session, error)
	SignInWithApple(ctx context.Context, appleIDToken, nonce string) (*domain.Session, error)
	LinkEmail(ctx context.Context, idToken, email, password string) (*domain.Session, error)
	LinkGoogle(ctx context.Context, idToken, googleIDToken string) (*domain.Session, error)
	LinkApple(ctx context.Context, idToken, appleIDToken, nonce string) (*domain.Session, error)
	Lookup(ctx context.Context, idToken string) (*domain.AuthUser, error)
	SendPasswordReset(ctx context.Context, email string) error
	UpdateEmail(ctx context.Context, idToken, email string) (*domain.Session, error)
	UpdatePassword(ctx context.Context, idToken, password string) (*domain.Session, error)
	Delete(ctx context.Context, idToken string) error
}

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
