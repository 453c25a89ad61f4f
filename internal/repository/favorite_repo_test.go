package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastebook/internal/domain"
)

func TestFavoriteRepository_AddAndExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	reader := seedUser(t, db, "marco")
	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	fav, err := repo.Add(ctx, reader.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, reader.ID, fav.UserID)
	assert.Equal(t, rec.ID, fav.RecipeID)
	assert.False(t, fav.CreatedAt.IsZero())

	ok, err := repo.Exists(ctx, reader.ID, rec.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFavoriteRepository_DuplicatePairRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	reader := seedUser(t, db, "marco")
	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	_, err := repo.Add(ctx, reader.ID, rec.ID)
	require.NoError(t, err)

	_, err = repo.Add(ctx, reader.ID, rec.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	favorites, err := repo.ListByUser(ctx, reader.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestFavoriteRepository_AddRequiresBothEndpoints(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	_, err := repo.Add(ctx, 999, rec.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Add(ctx, author.ID, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFavoriteRepository_RemoveMissingPairFails(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	reader := seedUser(t, db, "marco")
	author := seedUser(t, db, "sarah")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")

	err := repo.Remove(ctx, reader.ID, rec.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Add(ctx, reader.ID, rec.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Remove(ctx, reader.ID, rec.ID))

	ok, err := repo.Exists(ctx, reader.ID, rec.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoriteRepository_ListByRecipe(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "sarah")
	marco := seedUser(t, db, "marco")
	emma := seedUser(t, db, "emma")
	cuisine := seedCuisine(t, db, "Asian")
	rec := seedRecipe(t, db, author.ID, cuisine.ID, "Matcha Cookies")
	other := seedRecipe(t, db, author.ID, cuisine.ID, "Fresh Pasta")

	_, err := repo.Add(ctx, marco.ID, rec.ID)
	require.NoError(t, err)
	_, err = repo.Add(ctx, emma.ID, rec.ID)
	require.NoError(t, err)
	_, err = repo.Add(ctx, marco.ID, other.ID)
	require.NoError(t, err)

	favorites, err := repo.ListByRecipe(ctx, rec.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
}
