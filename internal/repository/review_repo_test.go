package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastebook/internal/domain"
	"tastebook/internal/pkg/patch"
)

func TestReviewRepository_CreateChecksReferences(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	err := repo.Create(ctx, &domain.Review{Rating: 5, UserID: 999, RecipeID: rec.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Create(ctx, &domain.Review{Rating: 5, UserID: author.ID, RecipeID: 999})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Create(ctx, &domain.Review{Rating: 5, UserID: author.ID, RecipeID: rec.ID})
	require.NoError(t, err)

	reviews, err := repo.ListByRecipe(ctx, rec.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestReviewRepository_UpdateValidatesRating(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	rv := &domain.Review{Rating: 3, UserID: author.ID, RecipeID: rec.ID}
	require.NoError(t, repo.Create(ctx, rv))

	_, err := repo.Update(ctx, rv.ID, domain.ReviewPatch{Rating: patch.Of(6)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = repo.Update(ctx, rv.ID, domain.ReviewPatch{Rating: patch.Clear[int]()})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := repo.Update(ctx, rv.ID, domain.ReviewPatch{Rating: patch.Of(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
}

func TestReviewRepository_UpdateClearsComment(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	comment := "Lovely."
	rv := &domain.Review{Rating: 4, Comment: &comment, UserID: author.ID, RecipeID: rec.ID}
	require.NoError(t, repo.Create(ctx, rv))

	got, err := repo.Update(ctx, rv.ID, domain.ReviewPatch{Comment: patch.Clear[string]()})
	require.NoError(t, err)
	assert.Nil(t, got.Comment)
	assert.Equal(t, 4, got.Rating)
}

func TestReviewRepository_DeleteUnknownFails(t *testing.T) {
	db := newTestDB(t)

	err := NewReviewRepository(db).Delete(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
