package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tastebook/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := rowExists(tx, &domain.User{}, "id = ?", rv.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("user %d: %w", rv.UserID, domain.ErrNotFound)
		}

		ok, err = rowExists(tx, &domain.Recipe{}, "id = ?", rv.RecipeID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("recipe %d: %w", rv.RecipeID, domain.ErrNotFound)
		}

		return tx.Create(rv).Error
	})
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("review %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := r.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Update(ctx context.Context, id int64, p domain.ReviewPatch) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rv, id).Error; err != nil {
			if isRecordNotFound(err) {
				return fmt.Errorf("review %d: %w", id, domain.ErrNotFound)
			}
			return err
		}

		updates := map[string]any{}

		if p.Rating.Set {
			if p.Rating.Null {
				return fmt.Errorf("rating cannot be cleared: %w", domain.ErrValidation)
			}
			if p.Rating.Value < 1 || p.Rating.Value > 5 {
				return fmt.Errorf("rating must be between 1 and 5: %w", domain.ErrValidation)
			}
			updates["rating"] = p.Rating.Value
		}
		if p.Comment.Set {
			updates["comment"] = optional(p.Comment)
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&domain.Review{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&rv, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
