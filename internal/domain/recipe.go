package domain

import "strings"

type Recipe struct {
	ID          string        `firestore:"id" json:"id"`
	Title       string        `firestore:"title" json:"title"`
	IsPremium   bool          `firestore:"isPremium" json:"isPremium"`
	Ingredients []Ingredient  `firestore:"ingredients" json:"ingredients"`
	Description string        `firestore:"description" json:"description"`
	MainPhoto   string        `firestore:"mainPhoto" json:"mainPhoto"`
	SourceURL   string        `firestore:"sourceURL" json:"sourceURL"`
	Author      string        `firestore:"author" json:"author"`
	AuthorID    string        `firestore:"authorId" json:"authorId"`
	Category    []Category    `firestore:"category" json:"category"`
	Status      []string      `firestore:"status" json:"status"`
	CookingTime CookingTime   `firestore:"cookingTime" json:"cookingTime"`
	Steps       []Step        `firestore:"steps" json:"steps"`
	Hint        *string       `firestore:"hint" json:"hint,omitempty"`
	Nutrition   NutritionFact `firestore:"nutrition" json:"nutrition"`
	SavedCount  int64         `firestore:"savedCount" json:"savedCount"`
	ViewCount   int64         `firestore:"viewCount" json:"viewCount"`
}

// PrimaryCategory returns the first known category tag of the recipe, or
// CategoryNone when it has none.
func (r Recipe) PrimaryCategory() Category {
	for _, c := range r.Category {
		if c.Valid() {
			return c
		}
	}
	return CategoryNone
}

// Validate reports whether the recipe can be stored.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return InvalidRecipe("title is required")
	}
	if !hasComplete(r.Ingredients) {
		return InvalidRecipe("at least one complete ingredient is required")
	}
	completeStep := false
	for _, s := range r.Steps {
		if s.IsComplete() {
			completeStep = true
			break
		}
	}
	if !completeStep {
		return InvalidRecipe("at least one step is required")
	}
	for _, c := range r.Category {
		if !c.Valid() {
			return InvalidRecipe("unknown category " + string(c))
		}
	}
	return nil
}

func hasComplete(ingredients []Ingredient) bool {
	for _, i := range ingredients {
		if i.IsComplete() {
			return true
		}
	}
	return false
}

type Ingredient struct {
	Name          string       `firestore:"ingredient" json:"ingredient"`
	Quantity      *float64     `firestore:"quantity" json:"quantity,omitempty"`
	MeasureMethod *MeasureUnit `firestore:"measureMethod" json:"measureMethod,omitempty"`
}

// IsComplete is true only when name, quantity and unit are all present.
func (i Ingredient) IsComplete() bool {
	return strings.TrimSpace(i.Name) != "" && i.Quantity != nil && i.MeasureMethod != nil
}

// IsBlank is true for a row the user has not started filling in.
func (i Ingredient) IsBlank() bool {
	return strings.TrimSpace(i.Name) == "" && i.Quantity == nil && i.MeasureMethod == nil
}

type MeasureUnit string

const (
	UnitGram       MeasureUnit = "g"
	UnitKilogram   MeasureUnit = "kg"
	UnitMilliliter MeasureUnit = "ml"
	UnitLiter      MeasureUnit = "l"
	UnitTeaspoon   MeasureUnit = "tsp"
	UnitTablespoon MeasureUnit = "tbsp"
	UnitCup        MeasureUnit = "cup"
	UnitPiece      MeasureUnit = "pcs"
	UnitPinch      MeasureUnit = "pinch"
)

type Step struct {
	Number      int     `firestore:"stepNumber" json:"stepNumber"`
	Instruction string  `firestore:"instruction" json:"instruction"`
	Photo       *string `firestore:"photo" json:"photo,omitempty"`
}

func (s Step) IsComplete() bool {
	return strings.TrimSpace(s.Instruction) != ""
}

type CookingTime struct {
	Amount int      `firestore:"amount" json:"amount"`
	Unit   TimeUnit `firestore:"unit" json:"unit"`
}

type TimeUnit string

const (
	TimeMinutes TimeUnit = "min"
	TimeHours   TimeUnit = "h"
)

type NutritionFact struct {
	Calories float64 `firestore:"calories" json:"calories"`
	Protein  float64 `firestore:"protein" json:"protein"`
	Carbs    float64 `firestore:"carbs" json:"carbs"`
	Fat      float64 `firestore:"fat" json:"fat"`
}
