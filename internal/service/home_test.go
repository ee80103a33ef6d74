package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cookit/internal/domain"
	"cookit/internal/feed"
	feedmocks "cookit/internal/feed/mocks"
)

func TestHome_LoadsAllSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := feedmocks.NewMockLister(ctrl)

	lister.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.RecipeQuery) (domain.RecipePage, error) {
			assert.Equal(t, 4, q.Limit)
			assert.True(t, q.After.IsZero())
			if q.Category == domain.CategoryProteinBoost {
				return domain.RecipePage{}, errors.New("deadline exceeded")
			}
			id := string(q.Category) + "-1"
			return domain.RecipePage{Recipes: []domain.Recipe{{ID: id}}, Last: domain.Cursor(id)}, nil
		},
	).Times(4)

	svc := NewHomeService(lister, 4, nil, slog.New(slog.DiscardHandler))
	sections := svc.Home(context.Background())

	require.Len(t, sections, 4)

	assert.Equal(t, "most_popular", sections[0].Key)
	assert.Equal(t, feed.ModePopular, sections[0].Mode)
	assert.Equal(t, feed.StatusLoaded, sections[0].Status)
	assert.Equal(t, "-1", sections[0].Recipes[0].ID)

	assert.Equal(t, domain.CategoryBreakfast, sections[1].Category)
	assert.Equal(t, "breakfast-1", sections[1].Recipes[0].ID)
	assert.Equal(t, domain.CategoryTimelessClassics, sections[2].Category)

	assert.Equal(t, feed.StatusFailed, sections[3].Status)
	assert.Equal(t, "deadline exceeded", sections[3].Error)
	assert.NotNil(t, sections[3].Recipes)
	assert.Empty(t, sections[3].Recipes)
}

func TestHome_FailedSectionDoesNotCancelOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := feedmocks.NewMockLister(ctrl)

	lister.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.RecipeQuery) (domain.RecipePage, error) {
			if q.Category == domain.CategoryBreakfast {
				return domain.RecipePage{}, errors.New("unavailable")
			}
			// Slow sections finish after the failing one.
			time.Sleep(20 * time.Millisecond)
			return domain.RecipePage{Recipes: []domain.Recipe{{ID: "ok"}}, Last: "ok"}, nil
		},
	).Times(4)

	svc := NewHomeService(lister, 4, nil, slog.New(slog.DiscardHandler))
	sections := svc.Home(context.Background())

	require.Len(t, sections, 4)
	for _, section := range sections {
		if section.Category == domain.CategoryBreakfast {
			assert.Equal(t, feed.StatusFailed, section.Status)
			continue
		}
		assert.Equal(t, feed.StatusLoaded, section.Status, section.Key)
	}
}
