package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"

	"tastebook/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Cuisine{},
		&domain.Ingredient{},
		&domain.Tag{},
		&domain.Diet{},
		&domain.Allergy{},
		&domain.Recipe{},
		&domain.Instruction{},
		&domain.RecipeIngredient{},
		&domain.RecipeTag{},
		&domain.RecipeDiet{},
		&domain.RecipeAllergy{},
		&domain.Review{},
		&domain.Favorite{},
	)
}
