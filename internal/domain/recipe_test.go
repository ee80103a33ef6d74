package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookit/internal/domain"
	"cookit/internal/testutil"
)

func TestIngredient_IsComplete(t *testing.T) {
	tests := []struct {
		name       string
		ingredient domain.Ingredient
		want       bool
	}{
		{
			name:       "all fields set",
			ingredient: domain.Ingredient{Name: "flour", Quantity: testutil.Ptr(200.0), MeasureMethod: testutil.Ptr(domain.UnitGram)},
			want:       true,
		},
		{
			name:       "missing measure method",
			ingredient: domain.Ingredient{Name: "flour", Quantity: testutil.Ptr(200.0)},
			want:       false,
		},
		{
			name:       "missing quantity",
			ingredient: domain.Ingredient{Name: "salt", MeasureMethod: testutil.Ptr(domain.UnitPinch)},
			want:       false,
		},
		{
			name:       "blank name",
			ingredient: domain.Ingredient{Name: "  ", Quantity: testutil.Ptr(1.0), MeasureMethod: testutil.Ptr(domain.UnitCup)},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ingredient.IsComplete())
		})
	}
}

func TestStep_IsComplete(t *testing.T) {
	assert.True(t, domain.Step{Number: 1, Instruction: "Boil water"}.IsComplete())
	assert.False(t, domain.Step{Number: 2, Instruction: "   "}.IsComplete())
}

func TestParseCategory(t *testing.T) {
	c, err := domain.ParseCategory("Protein Boost")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryProteinBoost, c)

	c, err = domain.ParseCategory("No Sorting")
	require.NoError(t, err)
	assert.False(t, c.IsFilter())

	c, err = domain.ParseCategory("")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryNone, c)

	_, err = domain.ParseCategory("brunch")
	assert.True(t, errors.Is(err, domain.ErrInvalidCategory))
}

func TestRecipe_Validate(t *testing.T) {
	valid := domain.Recipe{
		Title: "Pancakes",
		Ingredients: []domain.Ingredient{
			{Name: "milk", Quantity: testutil.Ptr(250.0), MeasureMethod: testutil.Ptr(domain.UnitMilliliter)},
		},
		Steps:    []domain.Step{{Number: 1, Instruction: "Whisk everything"}},
		Category: []domain.Category{domain.CategoryBreakfast},
	}
	assert.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = ""
	assert.ErrorIs(t, noTitle.Validate(), domain.ErrInvalidRecipe)

	noSteps := valid
	noSteps.Steps = []domain.Step{{Number: 1}}
	assert.ErrorIs(t, noSteps.Validate(), domain.ErrInvalidRecipe)

	incomplete := valid
	incomplete.Ingredients = []domain.Ingredient{{Name: "milk"}}
	assert.ErrorIs(t, incomplete.Validate(), domain.ErrInvalidRecipe)

	badCategory := valid
	badCategory.Category = []domain.Category{"brunch"}
	assert.ErrorIs(t, badCategory.Validate(), domain.ErrInvalidRecipe)
}

func TestRecipe_PrimaryCategory(t *testing.T) {
	r := domain.Recipe{Category: []domain.Category{"unknown", domain.CategorySoup, domain.CategoryHealthy}}
	assert.Equal(t, domain.CategorySoup, r.PrimaryCategory())
	assert.Equal(t, domain.CategoryNone, domain.Recipe{}.PrimaryCategory())
}
