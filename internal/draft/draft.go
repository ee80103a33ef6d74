// Package draft holds a recipe while it is being authored.
//
// A draft always ends with exactly one blank ingredient row and one blank step
// row for the next entry. The rows are recomputed after every edit.
package draft

import (
	"errors"
	"fmt"

	"cookit/internal/domain"
)

var ErrRowOutOfRange = errors.New("row out of range")

type Draft struct {
	Title       string
	Description string
	MainPhoto   string
	SourceURL   string
	Category    []domain.Category
	Status      []string
	CookingTime domain.CookingTime
	Hint        *string
	Nutrition   domain.NutritionFact

	ingredients []domain.Ingredient
	steps       []domain.Step
}

func New() *Draft {
	d := &Draft{}
	d.recompute()
	return d
}

// FromRecipe loads an existing recipe for editing.
func FromRecipe(r domain.Recipe) *Draft {
	d := &Draft{
		Title:       r.Title,
		Description: r.Description,
		MainPhoto:   r.MainPhoto,
		SourceURL:   r.SourceURL,
		Category:    append([]domain.Category(nil), r.Category...),
		Status:      append([]string(nil), r.Status...),
		CookingTime: r.CookingTime,
		Hint:        r.Hint,
		Nutrition:   r.Nutrition,
		ingredients: append([]domain.Ingredient(nil), r.Ingredients...),
		steps:       append([]domain.Step(nil), r.Steps...),
	}
	d.recompute()
	return d
}

func (d *Draft) Ingredients() []domain.Ingredient {
	return append([]domain.Ingredient(nil), d.ingredients...)
}

func (d *Draft) Steps() []domain.Step {
	return append([]domain.Step(nil), d.steps...)
}

// SetIngredient replaces row i. Writing to the trailing blank row adds a new
// ingredient.
func (d *Draft) SetIngredient(i int, ing domain.Ingredient) error {
	if i < 0 || i >= len(d.ingredients) {
		return fmt.Errorf("ingredient %d: %w", i, ErrRowOutOfRange)
	}
	d.ingredients[i] = ing
	d.recompute()
	return nil
}

func (d *Draft) RemoveIngredient(i int) error {
	if i < 0 || i >= len(d.ingredients) {
		return fmt.Errorf("ingredient %d: %w", i, ErrRowOutOfRange)
	}
	d.ingredients = append(d.ingredients[:i], d.ingredients[i+1:]...)
	d.recompute()
	return nil
}

// SetStep replaces the instruction and photo of row i. Step numbers are
// assigned by the draft.
func (d *Draft) SetStep(i int, instruction string, photo *string) error {
	if i < 0 || i >= len(d.steps) {
		return fmt.Errorf("step %d: %w", i, ErrRowOutOfRange)
	}
	d.steps[i].Instruction = instruction
	d.steps[i].Photo = photo
	d.recompute()
	return nil
}

func (d *Draft) RemoveStep(i int) error {
	if i < 0 || i >= len(d.steps) {
		return fmt.Errorf("step %d: %w", i, ErrRowOutOfRange)
	}
	d.steps = append(d.steps[:i], d.steps[i+1:]...)
	d.recompute()
	return nil
}

// Recipe builds a recipe from the complete rows only. Steps are renumbered
// from 1.
func (d *Draft) Recipe() domain.Recipe {
	r := domain.Recipe{
		Title:       d.Title,
		Description: d.Description,
		MainPhoto:   d.MainPhoto,
		SourceURL:   d.SourceURL,
		Category:    append([]domain.Category(nil), d.Category...),
		Status:      append([]string(nil), d.Status...),
		CookingTime: d.CookingTime,
		Hint:        d.Hint,
		Nutrition:   d.Nutrition,
	}

	for _, ing := range d.ingredients {
		if ing.IsComplete() {
			r.Ingredients = append(r.Ingredients, ing)
		}
	}
	for _, s := range d.steps {
		if s.IsComplete() {
			s.Number = len(r.Steps) + 1
			r.Steps = append(r.Steps, s)
		}
	}
	return r
}

// recompute drops blank rows and appends a single blank row to each list.
func (d *Draft) recompute() {
	ingredients := d.ingredients[:0]
	for _, ing := range d.ingredients {
		if !ing.IsBlank() {
			ingredients = append(ingredients, ing)
		}
	}
	d.ingredients = append(ingredients, domain.Ingredient{})

	steps := d.steps[:0]
	for _, s := range d.steps {
		if !stepBlank(s) {
			steps = append(steps, s)
		}
	}
	d.steps = append(steps, domain.Step{})
	for i := range d.steps {
		d.steps[i].Number = i + 1
	}
}

func stepBlank(s domain.Step) bool {
	return !s.IsComplete() && s.Photo == nil
}
