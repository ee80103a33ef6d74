package domain

import "fmt"

// Category is a recipe tag used to filter feeds. The zero value means no filter.
type Category string

const (
	CategoryNone             Category = ""
	CategoryDinner           Category = "dinner"
	CategorySalad            Category = "salad"
	CategoryDessert          Category = "dessert"
	CategoryBreakfast        Category = "breakfast"
	CategorySoup             Category = "soup"
	CategoryAppetizer        Category = "appetizer"
	CategoryBeverage         Category = "beverage"
	CategoryTimelessClassics Category = "Timeless Classics"
	CategoryProteinBoost     Category = "Protein Boost"
	CategoryHealthy          Category = "Healthy"
)

// noSorting is what clients send when they pick the "no filter" option.
const noSorting = "No Sorting"

var categories = []Category{
	CategoryDinner,
	CategorySalad,
	CategoryDessert,
	CategoryBreakfast,
	CategorySoup,
	CategoryAppetizer,
	CategoryBeverage,
	CategoryTimelessClassics,
	CategoryProteinBoost,
	CategoryHealthy,
}

// Categories returns every filterable category.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// IsFilter reports whether the category narrows a query.
func (c Category) IsFilter() bool {
	return c != CategoryNone
}

// ParseCategory maps a client supplied tag to a Category. Empty input and
// "No Sorting" both mean no filter.
func ParseCategory(s string) (Category, error) {
	if s == "" || s == noSorting {
		return CategoryNone, nil
	}
	c := Category(s)
	if !c.Valid() {
		return CategoryNone, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}
