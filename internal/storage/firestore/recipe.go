package firestore

import (
	"context"
	"errors"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cookit/internal/domain"
)

const (
	DefaultCollection = "recipes"

	categoryField   = "category"
	viewCountField  = "viewCount"
	savedCountField = "savedCount"
)

// catalogFields are the fields an import owns. Counters are left out so
// increments landing during a re-import survive it.
var catalogFields = []fs.FieldPath{
	{"id"}, {"title"}, {"isPremium"}, {"ingredients"}, {"description"},
	{"mainPhoto"}, {"sourceURL"}, {"author"}, {"authorId"}, {categoryField},
	{"status"}, {"cookingTime"}, {"steps"}, {"hint"}, {"nutrition"},
}

type RecipeStore struct {
	client     *fs.Client
	collection string
}

func NewRecipeStore(client *fs.Client, collection string) *RecipeStore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &RecipeStore{client: client, collection: collection}
}

func (s *RecipeStore) recipes() *fs.CollectionRef {
	return s.client.Collection(s.collection)
}

// ListRecipes returns up to q.Limit recipes ordered by document ID, starting
// after q.After. A category narrows the query with array-contains.
func (s *RecipeStore) ListRecipes(ctx context.Context, q domain.RecipeQuery) (domain.RecipePage, error) {
	query := s.recipes().Query
	if q.Category.IsFilter() {
		query = query.Where(categoryField, "array-contains", string(q.Category))
	}
	query = query.OrderBy(fs.DocumentID, fs.Asc)
	if !q.After.IsZero() {
		query = query.StartAfter(string(q.After))
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var page domain.RecipePage
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return domain.RecipePage{}, fmt.Errorf("query recipes: %w", err)
		}

		recipe, err := decode(doc)
		if err != nil {
			return domain.RecipePage{}, err
		}
		page.Recipes = append(page.Recipes, *recipe)
		page.Last = domain.Cursor(doc.Ref.ID)
	}

	return page, nil
}

func (s *RecipeStore) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	doc, err := s.recipes().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe %s: %w", id, err)
	}
	return decode(doc)
}

// GetRecipes loads the given recipes in order, skipping ones that no longer exist.
func (s *RecipeStore) GetRecipes(ctx context.Context, ids []string) ([]domain.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	refs := make([]*fs.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = s.recipes().Doc(id)
	}

	docs, err := s.client.GetAll(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("get recipes: %w", err)
	}

	out := make([]domain.Recipe, 0, len(docs))
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		recipe, err := decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *recipe)
	}
	return out, nil
}

// PutRecipe writes the whole document, replacing any previous version.
func (s *RecipeStore) PutRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if _, err := s.recipes().Doc(recipe.ID).Set(ctx, recipe); err != nil {
		return fmt.Errorf("put recipe %s: %w", recipe.ID, err)
	}
	return nil
}

// ImportRecipe writes a catalog recipe and reports whether it was new. A new
// document takes the recipe as is; an existing one only has its catalog
// fields replaced.
func (s *RecipeStore) ImportRecipe(ctx context.Context, recipe *domain.Recipe) (bool, error) {
	ref := s.recipes().Doc(recipe.ID)

	var created bool
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		_, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
			created = true
			return tx.Create(ref, recipe)
		case err != nil:
			return err
		}
		created = false
		return tx.Set(ref, recipe, fs.Merge(catalogFields...))
	})
	if err != nil {
		return false, fmt.Errorf("import recipe %s: %w", recipe.ID, err)
	}
	return created, nil
}

func (s *RecipeStore) IncrementViewCount(ctx context.Context, id string) error {
	return s.increment(ctx, id, viewCountField, 1)
}

func (s *RecipeStore) AdjustSavedCount(ctx context.Context, id string, delta int64) error {
	return s.increment(ctx, id, savedCountField, delta)
}

func (s *RecipeStore) increment(ctx context.Context, id, field string, delta int64) error {
	_, err := s.recipes().Doc(id).Update(ctx, []fs.Update{
		{Path: field, Value: fs.Increment(delta)},
	})
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("increment %s of %s: %w", field, id, err)
	}
	return nil
}

func decode(doc *fs.DocumentSnapshot) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := doc.DataTo(&recipe); err != nil {
		return nil, fmt.Errorf("decode recipe %s: %w", doc.Ref.ID, err)
	}
	if recipe.ID == "" {
		recipe.ID = doc.Ref.ID
	}
	return &recipe, nil
}
