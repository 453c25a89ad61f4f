package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tastebook/internal/domain"
)

// FavoriteRepository manages the user↔recipe favorite pairs.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, recipeID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
	ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Favorite, error)
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add creates the pair. A second call with the same pair is rejected; the
// composite primary key backs this up under concurrency.
func (r *favoriteRepository) Add(ctx context.Context, userID, recipeID int64) (*domain.Favorite, error) {
	fav := &domain.Favorite{UserID: userID, RecipeID: recipeID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := rowExists(tx, &domain.User{}, "id = ?", userID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}

		ok, err = rowExists(tx, &domain.Recipe{}, "id = ?", recipeID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("recipe %d: %w", recipeID, domain.ErrNotFound)
		}

		if err := tx.Create(fav).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("recipe %d already in favorites: %w", recipeID, domain.ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fav, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, recipeID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&domain.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("recipe %d not in favorites: %w", recipeID, domain.ErrNotFound)
	}
	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	return rowExists(r.db.WithContext(ctx), &domain.Favorite{}, "user_id = ? AND recipe_id = ?", userID, recipeID)
}
