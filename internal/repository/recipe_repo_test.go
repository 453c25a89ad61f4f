package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastebook/internal/domain"
	"tastebook/internal/pkg/patch"
)

func TestRecipeRepository_CreateRejectsDanglingForeignKeys(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")

	err := repo.Create(ctx, &domain.Recipe{
		Title: "Ghost Author", ImageURL: "x", Difficulty: "Easy",
		UserID: 999, CuisineID: cuisine.ID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Create(ctx, &domain.Recipe{
		Title: "Ghost Cuisine", ImageURL: "x", Difficulty: "Easy",
		UserID: author.ID, CuisineID: 999,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	recipes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestRecipeRepository_UpdateEmptyPatchChangesNothing(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	got, err := repo.Update(ctx, rec.ID, domain.RecipePatch{})
	require.NoError(t, err)
	assert.Equal(t, rec.Title, got.Title)
	assert.Equal(t, rec.ImageURL, got.ImageURL)
	assert.Equal(t, rec.Difficulty, got.Difficulty)
	assert.Equal(t, rec.CuisineID, got.CuisineID)
	assert.WithinDuration(t, rec.CreatedAt, got.CreatedAt, time.Second)
}

func TestRecipeRepository_UpdateTouchesOnlyPresentFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")

	desc := "Buttery matcha cookies."
	cook := 20
	rec := &domain.Recipe{
		Title: "Matcha Cookies", Description: &desc, ImageURL: "img",
		CookTime: &cook, Difficulty: "Easy",
		UserID: author.ID, CuisineID: cuisine.ID,
	}
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.Update(ctx, rec.ID, domain.RecipePatch{
		Title: patch.Of("Matcha Shortbread"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Matcha Shortbread", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
	require.NotNil(t, got.CookTime)
	assert.Equal(t, cook, *got.CookTime)
}

func TestRecipeRepository_UpdateNullClearsOptionalField(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")

	desc := "Will be cleared."
	rec := &domain.Recipe{
		Title: "Matcha Cookies", Description: &desc, ImageURL: "img",
		Difficulty: "Easy", UserID: author.ID, CuisineID: cuisine.ID,
	}
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.Update(ctx, rec.ID, domain.RecipePatch{
		Description: patch.Clear[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, got.Description)
}

func TestRecipeRepository_UpdateRejectsClearingRequiredField(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	_, err := repo.Update(ctx, rec.ID, domain.RecipePatch{
		Title: patch.Clear[string](),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecipeRepository_UpdateUnknownIDFails(t *testing.T) {
	db := newTestDB(t)

	_, err := NewRecipeRepository(db).Update(context.Background(), 404, domain.RecipePatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipeRepository_LinkIngredientTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	catalog := NewCatalogRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	flour, err := catalog.CreateIngredient(ctx, "Flour")
	require.NoError(t, err)

	_, err = repo.LinkIngredient(ctx, rec.ID, flour.ID, "300g", 1)
	require.NoError(t, err)

	_, err = repo.LinkIngredient(ctx, rec.ID, flour.ID, "300g", 1)
	assert.ErrorIs(t, err, domain.ErrConflict)

	rows, err := repo.ListIngredients(ctx, rec.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRecipeRepository_LinkRequiresBothEndpoints(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	catalog := NewCatalogRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	flour, err := catalog.CreateIngredient(ctx, "Flour")
	require.NoError(t, err)

	_, err = repo.LinkIngredient(ctx, 999, flour.ID, "", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.LinkIngredient(ctx, rec.ID, 999, "", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipeRepository_IngredientsOrderedByOrd(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	catalog := NewCatalogRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	butter, err := catalog.CreateIngredient(ctx, "Butter")
	require.NoError(t, err)
	flour, err := catalog.CreateIngredient(ctx, "Flour")
	require.NoError(t, err)

	// Linked out of order: butter with ord=2 first, flour with ord=1.
	_, err = repo.LinkIngredient(ctx, rec.ID, butter.ID, "200g", 2)
	require.NoError(t, err)
	_, err = repo.LinkIngredient(ctx, rec.ID, flour.ID, "300g", 1)
	require.NoError(t, err)

	rows, err := repo.ListIngredients(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, flour.ID, rows[0].IngredientID)
	assert.Equal(t, butter.ID, rows[1].IngredientID)
}

func TestRecipeRepository_UnlinkMissingPairFails(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	err := repo.UnlinkIngredient(ctx, rec.ID, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipeRepository_TagLinkRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	catalog := NewCatalogRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	tag, err := catalog.CreateTag(ctx, "dessert")
	require.NoError(t, err)

	_, err = repo.LinkTag(ctx, rec.ID, tag.ID)
	require.NoError(t, err)
	_, err = repo.LinkTag(ctx, rec.ID, tag.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, repo.UnlinkTag(ctx, rec.ID, tag.ID))

	rows, err := repo.ListTags(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecipeRepository_DeleteCascadesEverythingOwned(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	catalog := NewCatalogRepository(db)
	reviews := NewReviewRepository(db)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	reader := seedUser(t, db, "marco")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	flour, err := catalog.CreateIngredient(ctx, "Flour")
	require.NoError(t, err)
	tag, err := catalog.CreateTag(ctx, "dessert")
	require.NoError(t, err)

	_, err = repo.LinkIngredient(ctx, rec.ID, flour.ID, "300g", 1)
	require.NoError(t, err)
	_, err = repo.LinkTag(ctx, rec.ID, tag.ID)
	require.NoError(t, err)
	require.NoError(t, repo.AddInstruction(ctx, &domain.Instruction{
		RecipeID: rec.ID, StepNumber: 1, Description: "Mix.",
	}))
	require.NoError(t, reviews.Create(ctx, &domain.Review{
		Rating: 5, UserID: reader.ID, RecipeID: rec.ID,
	}))
	_, err = favorites.Add(ctx, reader.ID, rec.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err = repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ingredients, err := repo.ListIngredients(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, ingredients)

	tags, err := repo.ListTags(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)

	steps, err := repo.ListInstructions(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, steps)

	recipeReviews, err := reviews.ListByRecipe(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, recipeReviews)

	recipeFavorites, err := favorites.ListByRecipe(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, recipeFavorites)

	// Shared references survive the cascade.
	_, err = catalog.GetIngredient(ctx, flour.ID)
	assert.NoError(t, err)
	_, err = catalog.GetTag(ctx, tag.ID)
	assert.NoError(t, err)
}

func TestRecipeRepository_ListByCuisine(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	asian := seedCuisine(t, db, "Asian")
	italian := seedCuisine(t, db, "Italian")
	seedRecipe(t, db, author.ID, asian.ID, "Matcha Cookies")
	seedRecipe(t, db, author.ID, italian.ID, "Fresh Pasta")

	recipes, err := repo.ListByCuisine(ctx, asian.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Matcha Cookies", recipes[0].Title)
}
