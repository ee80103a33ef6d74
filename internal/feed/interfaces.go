package feed

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"cookit/internal/domain"
)

// Lister reads one page of recipes from the backing document store.
type Lister interface {
	ListRecipes(ctx context.Context, q domain.RecipeQuery) (domain.RecipePage, error)
}

// Recorder observes page loads.
type Recorder interface {
	PageLoaded(mode Mode, recipes int)
	PageBusy(mode Mode)
	PageFailed(mode Mode)
}
