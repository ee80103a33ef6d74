package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEmailOrPassword is returned when an email flow is missing credentials.
	ErrNoEmailOrPassword = errors.New("email or password missing")

	ErrSignInFailed       = errors.New("sign in failed")
	ErrGoogleSignInFailed = errors.New("google sign in failed")
	ErrAppleSignInFailed  = errors.New("apple sign in failed")

	// ErrNoData is returned when a transfer or decode produced nothing usable.
	ErrNoData = errors.New("no data")

	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrInvalidRecipe    = errors.New("invalid recipe")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrFeedNotFound     = errors.New("feed not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUnsupportedImage = errors.New("unsupported image format")
	ErrImageTooLarge    = errors.New("image too large")
	ErrInvalidImageKey  = errors.New("invalid image key")
)

func InvalidRecipe(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRecipe, reason)
}
