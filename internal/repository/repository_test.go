package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tastebook/internal/database"
	"tastebook/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// One in-memory sqlite database per connection; pin the pool to a
	// single connection so every query sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("p123"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &domain.User{
		Username:     username,
		DisplayName:  "Test " + username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedCuisine(t *testing.T, db *gorm.DB, name string) *domain.Cuisine {
	t.Helper()

	c, err := NewCatalogRepository(db).CreateCuisine(context.Background(), name)
	require.NoError(t, err)
	return c
}

func seedRecipe(t *testing.T, db *gorm.DB, userID, cuisineID int64, title string) *domain.Recipe {
	t.Helper()

	rec := &domain.Recipe{
		Title:      title,
		ImageURL:   "https://example.com/img.jpg",
		Difficulty: "Easy",
		UserID:     userID,
		CuisineID:  cuisineID,
	}
	require.NoError(t, NewRecipeRepository(db).Create(context.Background(), rec))
	return rec
}
