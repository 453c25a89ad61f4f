package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tastebook/internal/domain"
)

// CatalogRepository covers the five shared lookup tables. They all behave
// the same way: unique name, full listing, and a guarded delete that is
// rejected while any recipe still references the row.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func createNamed[T any](ctx context.Context, db *gorm.DB, row *T, what string) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s name already exists: %w", what, domain.ErrConflict)
		}
		return err
	}
	return nil
}

func getNamed[T any](ctx context.Context, db *gorm.DB, id int64, what string) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &row, nil
}

func listNamed[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var rows []T
	if err := db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// deleteGuarded removes the row unless refModel still references it.
func deleteGuarded[T any](ctx context.Context, db *gorm.DB, id int64, what string, refModel any, refQuery string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.First(&row, id).Error; err != nil {
			if isRecordNotFound(err) {
				return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
			}
			return err
		}

		referenced, err := rowExists(tx, refModel, refQuery, id)
		if err != nil {
			return err
		}
		if referenced {
			return fmt.Errorf("%s %d is still referenced by a recipe: %w", what, id, domain.ErrConflict)
		}
		return tx.Delete(&row).Error
	})
}

func (r *CatalogRepository) CreateCuisine(ctx context.Context, name string) (*domain.Cuisine, error) {
	row := &domain.Cuisine{Name: name}
	if err := createNamed(ctx, r.db, row, "cuisine"); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *CatalogRepository) GetCuisine(ctx context.Context, id int64) (*domain.Cuisine, error) {
	return getNamed[domain.Cuisine](ctx, r.db, id, "cuisine")
}

func (r *CatalogRepository) ListCuisines(ctx context.Context) ([]domain.Cuisine, error) {
	return listNamed[domain.Cuisine](ctx, r.db)
}

func (r *CatalogRepository) DeleteCuisine(ctx context.Context, id int64) error {
	return deleteGuarded[domain.Cuisine](ctx, r.db, id, "cuisine", &domain.Recipe{}, "cuisine_id = ?")
}

func (r *CatalogRepository) CreateIngredient(ctx context.Context, name string) (*domain.Ingredient, error) {
	row := &domain.Ingredient{Name: name}
	if err := createNamed(ctx, r.db, row, "ingredient"); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *CatalogRepository) GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	return getNamed[domain.Ingredient](ctx, r.db, id, "ingredient")
}

func (r *CatalogRepository) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	return listNamed[domain.Ingredient](ctx, r.db)
}

func (r *CatalogRepository) DeleteIngredient(ctx context.Context, id int64) error {
	return deleteGuarded[domain.Ingredient](ctx, r.db, id, "ingredient", &domain.RecipeIngredient{}, "ingredient_id = ?")
}

func (r *CatalogRepository) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	row := &domain.Tag{Name: name}
	if err := createNamed(ctx, r.db, row, "tag"); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *CatalogRepository) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	return getNamed[domain.Tag](ctx, r.db, id, "tag")
}

func (r *CatalogRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return listNamed[domain.Tag](ctx, r.db)
}

func (r *CatalogRepository) DeleteTag(ctx context.Context, id int64) error {
	return deleteGuarded[domain.Tag](ctx, r.db, id, "tag", &domain.RecipeTag{}, "tag_id = ?")
}

func (r *CatalogRepository) CreateDiet(ctx context.Context, name string) (*domain.Diet, error) {
	row := &domain.Diet{Name: name}
	if err := createNamed(ctx, r.db, row, "diet"); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *CatalogRepository) GetDiet(ctx context.Context, id int64) (*domain.Diet, error) {
	return getNamed[domain.Diet](ctx, r.db, id, "diet")
}

func (r *CatalogRepository) ListDiets(ctx context.Context) ([]domain.Diet, error) {
	return listNamed[domain.Diet](ctx, r.db)
}

func (r *CatalogRepository) DeleteDiet(ctx context.Context, id int64) error {
	return deleteGuarded[domain.Diet](ctx, r.db, id, "diet", &domain.RecipeDiet{}, "diet_id = ?")
}

func (r *CatalogRepository) CreateAllergy(ctx context.Context, name string) (*domain.Allergy, error) {
	row := &domain.Allergy{Name: name}
	if err := createNamed(ctx, r.db, row, "allergy"); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *CatalogRepository) GetAllergy(ctx context.Context, id int64) (*domain.Allergy, error) {
	return getNamed[domain.Allergy](ctx, r.db, id, "allergy")
}

func (r *CatalogRepository) ListAllergies(ctx context.Context) ([]domain.Allergy, error) {
	return listNamed[domain.Allergy](ctx, r.db)
}

func (r *CatalogRepository) DeleteAllergy(ctx context.Context, id int64) error {
	return deleteGuarded[domain.Allergy](ctx, r.db, id, "allergy", &domain.RecipeAllergy{}, "allergy_id = ?")
}
