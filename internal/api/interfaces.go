package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"

	"cookit/internal/domain"
	"cookit/internal/service"
)

type Recipes interface {
	GetRecipe(ctx context.Context, id, userID string) (*service.RecipeDetail, error)
	ListPage(ctx context.Context, category domain.Category, after domain.Cursor, limit int) (domain.RecipePage, error)
	CreateRecipe(ctx context.Context, user domain.AuthUser, input domain.Recipe) (*domain.Recipe, error)
	RecordView(ctx context.Context, id, userID string) error
	SaveRecipe(ctx context.Context, user domain.AuthUser, recipeID string) error
	UnsaveRecipe(ctx context.Context, userID, recipeID string) error
	ListFavorites(ctx context.Context, userID string) ([]domain.Recipe, error)
}

type Accounts interface {
	Authenticate(ctx context.Context, idToken string) (*domain.AuthUser, error)
	SignUp(ctx context.Context, email, password string) (*domain.Session, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignInAnonymously(ctx context.Context) (*domain.Session, error)
	SignInWithGoogle(ctx context.Context, googleIDToken string) (*domain.Session, error)
	SignInWithApple(ctx context.Context, appleIDToken, nonce string) (*domain.Session, error)
	LinkEmail(ctx context.Context, idToken, email, password string) (*domain.Session, error)
	LinkGoogle(ctx context.Context, idToken, googleIDToken string) (*domain.Session, error)
	LinkApple(ctx context.Context, idToken, appleIDToken, nonce string) (*domain.Session, error)
	UpdateEmail(ctx context.Context, idToken, email string) (*domain.Session, error)
	UpdatePassword(ctx context.Context, idToken, password string) (*domain.Session, error)
	SendPasswordReset(ctx context.Context, email string) error
	CurrentUser(ctx context.Context, idToken string) (*service.Account, error)
	DeleteAccount(ctx context.Context, idToken string) error
}

type Media interface {
	UploadImage(ctx context.Context, r io.Reader) (*service.Image, error)
	ImportImage(ctx context.Context, rawURL string) (*service.Image, error)
	DeleteImage(ctx context.Context, key string) error
}

type Home interface {
	Home(ctx context.Context) []service.Section
}
