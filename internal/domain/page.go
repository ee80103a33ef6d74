package domain

// Cursor points into the store ordering. It is the identifier of the last
// document of the previous page; the zero value requests the first page.
type Cursor string

func (c Cursor) IsZero() bool {
	return c == ""
}

type RecipeQuery struct {
	Category Category
	Limit    int
	After    Cursor
}

type RecipePage struct {
	Recipes []Recipe
	// Last is the position of the last returned document, zero when the page is empty.
	Last Cursor
}
