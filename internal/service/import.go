package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cookit/internal/domain"
)

// ImportService copies a recipe catalog into the recipe store.
type ImportService struct {
	source    Source
	recipes   RecipeStore
	publisher Publisher
	logger    *slog.Logger
}

func NewImportService(source Source, recipes RecipeStore, publisher Publisher, logger *slog.Logger) *ImportService {
	return &ImportService{
		source:    source,
		recipes:   recipes,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
	}
}

// Import fetches the catalog and writes every valid recipe. Recipes already
// in the store keep their view and saved counters.
func (s *ImportService) Import(ctx context.Context) (*domain.ImportStats, error) {
	startTime := time.Now()
	s.logger.Info("starting import")

	recipes, err := s.source.FetchRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch recipes: %w", err)
	}

	s.logger.Info("fetched recipes from source", "count", len(recipes))

	stats := &domain.ImportStats{Fetched: len(recipes)}

	for i := range recipes {
		recipe := &recipes[i]

		if recipe.ID == "" {
			stats.Skipped++
			s.logger.Warn("skipping recipe without id", "title", recipe.Title)
			continue
		}
		if err := recipe.Validate(); err != nil {
			stats.Skipped++
			s.logger.Warn("skipping invalid recipe", "recipe_id", recipe.ID, "error", err)
			continue
		}

		isNew, err := s.recipes.ImportRecipe(ctx, recipe)
		if err != nil {
			stats.Errors++
			s.logger.Error("failed to save recipe", "recipe_id", recipe.ID, "error", err)
			continue
		}
		stats.Imported++

		if isNew && s.publisher != nil {
			err := s.publisher.Publish(ctx, domain.RecipeEvent{
				Action:    domain.ActionCreated,
				RecipeID:  recipe.ID,
				Timestamp: time.Now().UTC(),
			})
			if err != nil {
				stats.Errors++
			} else {
				stats.Published++
			}
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("import completed",
		"fetched", stats.Fetched,
		"imported", stats.Imported,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}
