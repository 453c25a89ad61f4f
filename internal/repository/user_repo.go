package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tastebook/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user inside one transaction. Username is checked before
// email so the first conflict reported is always the username.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := rowExists(tx, &domain.User{}, "username = ?", u.Username)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("username %q already registered: %w", u.Username, domain.ErrConflict)
		}

		taken, err = rowExists(tx, &domain.User{}, "email = ?", u.Email)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("email %q already registered: %w", u.Email, domain.ErrConflict)
		}

		if err := tx.Create(u).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("username or email already registered: %w", domain.ErrConflict)
			}
			return err
		}
		return nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

// GetByUsername is an exact, case-sensitive match.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).Where("username = ?", username).First(&u)
	if tx.Error != nil {
		if isRecordNotFound(tx.Error) {
			return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
		}
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return rowExists(r.db.WithContext(ctx), &domain.User{}, "username = ?", username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return rowExists(r.db.WithContext(ctx), &domain.User{}, "email = ?", email)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user and everything the user owns: recipes (with their
// instructions, links, reviews and favorites), plus reviews and favorites
// the user left on other recipes.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u domain.User
		if err := tx.First(&u, id).Error; err != nil {
			if isRecordNotFound(err) {
				return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
			}
			return err
		}

		var recipeIDs []int64
		if err := tx.Model(&domain.Recipe{}).Where("user_id = ?", id).Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}
		for _, recipeID := range recipeIDs {
			if err := deleteRecipeCascade(tx, recipeID); err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, id).Error
	})
}
