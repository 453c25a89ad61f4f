package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tastebook/internal/domain"
	"tastebook/internal/pkg/patch"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create validates both foreign keys before inserting; a dangling author or
// cuisine id is rejected, never stored.
func (r *RecipeRepository) Create(ctx context.Context, rec *domain.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := rowExists(tx, &domain.User{}, "id = ?", rec.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("author %d: %w", rec.UserID, domain.ErrNotFound)
		}

		ok, err = rowExists(tx, &domain.Cuisine{}, "id = ?", rec.CuisineID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("cuisine %d: %w", rec.CuisineID, domain.ErrNotFound)
		}

		return tx.Create(rec).Error
	})
}

func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var rec domain.Recipe
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RecipeRepository) List(ctx context.Context) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := r.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepository) ListByCuisine(ctx context.Context, cuisineID int64) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := r.db.WithContext(ctx).Where("cuisine_id = ?", cuisineID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepository) ListByAuthor(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update applies exclude-unset semantics: absent fields stay untouched, an
// explicit null clears optional fields and is rejected for required ones.
// created_at is never part of the update set.
func (r *RecipeRepository) Update(ctx context.Context, id int64, p domain.RecipePatch) (*domain.Recipe, error) {
	var rec domain.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			if isRecordNotFound(err) {
				return fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
			}
			return err
		}

		updates := map[string]any{}

		if p.Title.Set {
			if p.Title.Null || p.Title.Value == "" {
				return fmt.Errorf("title cannot be cleared: %w", domain.ErrValidation)
			}
			updates["title"] = p.Title.Value
		}
		if p.ImageURL.Set {
			if p.ImageURL.Null {
				return fmt.Errorf("image_url cannot be cleared: %w", domain.ErrValidation)
			}
			updates["image_url"] = p.ImageURL.Value
		}
		if p.Difficulty.Set {
			if p.Difficulty.Null || p.Difficulty.Value == "" {
				return fmt.Errorf("difficulty cannot be cleared: %w", domain.ErrValidation)
			}
			updates["difficulty"] = p.Difficulty.Value
		}
		if p.CuisineID.Set {
			if p.CuisineID.Null {
				return fmt.Errorf("cuisine_id cannot be cleared: %w", domain.ErrValidation)
			}
			ok, err := rowExists(tx, &domain.Cuisine{}, "id = ?", p.CuisineID.Value)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("cuisine %d: %w", p.CuisineID.Value, domain.ErrNotFound)
			}
			updates["cuisine_id"] = p.CuisineID.Value
		}

		if p.Description.Set {
			updates["description"] = optional(p.Description)
		}
		if p.PrepTime.Set {
			updates["prep_time"] = optional(p.PrepTime)
		}
		if p.CookTime.Set {
			updates["cook_time"] = optional(p.CookTime)
		}
		if p.Servings.Set {
			updates["servings"] = optional(p.Servings)
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&domain.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&rec, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec domain.Recipe
		if err := tx.First(&rec, id).Error; err != nil {
			if isRecordNotFound(err) {
				return fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
			}
			return err
		}
		return deleteRecipeCascade(tx, id)
	})
}

// deleteRecipeCascade removes a recipe together with every row that exists
// only to describe it. Shared by recipe delete and user delete.
func deleteRecipeCascade(tx *gorm.DB, recipeID int64) error {
	owned := []any{
		&domain.Instruction{},
		&domain.RecipeIngredient{},
		&domain.RecipeTag{},
		&domain.RecipeDiet{},
		&domain.RecipeAllergy{},
		&domain.Review{},
		&domain.Favorite{},
	}
	for _, model := range owned {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(model).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&domain.Recipe{}, recipeID).Error
}

// ---- instructions ----

func (r *RecipeRepository) AddInstruction(ctx context.Context, ins *domain.Instruction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := rowExists(tx, &domain.Recipe{}, "id = ?", ins.RecipeID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("recipe %d: %w", ins.RecipeID, domain.ErrNotFound)
		}
		return tx.Create(ins).Error
	})
}

func (r *RecipeRepository) ListInstructions(ctx context.Context, recipeID int64) ([]domain.Instruction, error) {
	var steps []domain.Instruction
	err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("step_number ASC").
		Find(&steps).Error
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *RecipeRepository) DeleteInstruction(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Instruction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("instruction %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---- ingredient links ----

func (r *RecipeRepository) LinkIngredient(ctx context.Context, recipeID, ingredientID int64, quantity string, ord int) (*domain.RecipeIngredient, error) {
	row := &domain.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     quantity,
		Ord:          ord,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := linkEndpointsExist(tx, recipeID, &domain.Ingredient{}, "ingredient", ingredientID); err != nil {
			return err
		}
		if err := tx.Create(row).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("ingredient %d already linked to recipe %d: %w", ingredientID, recipeID, domain.ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *RecipeRepository) UnlinkIngredient(ctx context.Context, recipeID, ingredientID int64) error {
	return unlinkPair(r.db.WithContext(ctx), &domain.RecipeIngredient{},
		"ingredient_id", recipeID, ingredientID, "ingredient")
}

// ListIngredients returns a stable sequence: ord ascending, ties broken by
// ingredient id.
func (r *RecipeRepository) ListIngredients(ctx context.Context, recipeID int64) ([]domain.RecipeIngredient, error) {
	var rows []domain.RecipeIngredient
	err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("ord ASC, ingredient_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ---- tag / diet / allergy links (no payload, order unspecified) ----

func (r *RecipeRepository) LinkTag(ctx context.Context, recipeID, tagID int64) (*domain.RecipeTag, error) {
	row := &domain.RecipeTag{RecipeID: recipeID, TagID: tagID}
	if err := r.linkPair(ctx, row, &domain.Tag{}, "tag", recipeID, tagID); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *RecipeRepository) UnlinkTag(ctx context.Context, recipeID, tagID int64) error {
	return unlinkPair(r.db.WithContext(ctx), &domain.RecipeTag{}, "tag_id", recipeID, tagID, "tag")
}

func (r *RecipeRepository) ListTags(ctx context.Context, recipeID int64) ([]domain.RecipeTag, error) {
	var rows []domain.RecipeTag
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RecipeRepository) LinkDiet(ctx context.Context, recipeID, dietID int64) (*domain.RecipeDiet, error) {
	row := &domain.RecipeDiet{RecipeID: recipeID, DietID: dietID}
	if err := r.linkPair(ctx, row, &domain.Diet{}, "diet", recipeID, dietID); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *RecipeRepository) UnlinkDiet(ctx context.Context, recipeID, dietID int64) error {
	return unlinkPair(r.db.WithContext(ctx), &domain.RecipeDiet{}, "diet_id", recipeID, dietID, "diet")
}

func (r *RecipeRepository) ListDiets(ctx context.Context, recipeID int64) ([]domain.RecipeDiet, error) {
	var rows []domain.RecipeDiet
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RecipeRepository) LinkAllergy(ctx context.Context, recipeID, allergyID int64) (*domain.RecipeAllergy, error) {
	row := &domain.RecipeAllergy{RecipeID: recipeID, AllergyID: allergyID}
	if err := r.linkPair(ctx, row, &domain.Allergy{}, "allergy", recipeID, allergyID); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *RecipeRepository) UnlinkAllergy(ctx context.Context, recipeID, allergyID int64) error {
	return unlinkPair(r.db.WithContext(ctx), &domain.RecipeAllergy{}, "allergy_id", recipeID, allergyID, "allergy")
}

func (r *RecipeRepository) ListAllergies(ctx context.Context, recipeID int64) ([]domain.RecipeAllergy, error) {
	var rows []domain.RecipeAllergy
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// linkPair inserts a payload-free association row after checking both
// endpoints exist, mapping a duplicate pair to a conflict.
func (r *RecipeRepository) linkPair(ctx context.Context, row any, otherModel any, otherName string, recipeID, otherID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := linkEndpointsExist(tx, recipeID, otherModel, otherName, otherID); err != nil {
			return err
		}
		if err := tx.Create(row).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%s %d already linked to recipe %d: %w", otherName, otherID, recipeID, domain.ErrConflict)
			}
			return err
		}
		return nil
	})
}

func linkEndpointsExist(tx *gorm.DB, recipeID int64, otherModel any, otherName string, otherID int64) error {
	ok, err := rowExists(tx, &domain.Recipe{}, "id = ?", recipeID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("recipe %d: %w", recipeID, domain.ErrNotFound)
	}

	ok, err = rowExists(tx, otherModel, "id = ?", otherID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", otherName, otherID, domain.ErrNotFound)
	}
	return nil
}

func unlinkPair(tx *gorm.DB, model any, otherColumn string, recipeID, otherID int64, otherName string) error {
	res := tx.Where("recipe_id = ? AND "+otherColumn+" = ?", recipeID, otherID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d not linked to recipe %d: %w", otherName, otherID, recipeID, domain.ErrNotFound)
	}
	return nil
}

// optional maps a tri-state patch field onto a nullable column: null clears,
// a value sets.
func optional[T any](f patch.Field[T]) any {
	if f.Null {
		return nil
	}
	return f.Value
}
