package domain

import (
	"time"

	"tastebook/internal/pkg/patch"
)

type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	PrepTime    *int      `json:"prep_time,omitempty"`
	CookTime    *int      `json:"cook_time,omitempty"`
	Servings    *int      `json:"servings,omitempty"`
	Difficulty  string    `json:"difficulty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	UserID    int64 `json:"user_id" gorm:"not null;index"`
	CuisineID int64 `json:"cuisine_id" gorm:"not null;index"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipePatch carries partial-update fields. An absent field leaves the
// stored value untouched; an explicit JSON null clears an optional field.
type RecipePatch struct {
	Title       patch.Field[string] `json:"title"`
	Description patch.Field[string] `json:"description"`
	ImageURL    patch.Field[string] `json:"image_url"`
	PrepTime    patch.Field[int]    `json:"prep_time"`
	CookTime    patch.Field[int]    `json:"cook_time"`
	Servings    patch.Field[int]    `json:"servings"`
	Difficulty  patch.Field[string] `json:"difficulty"`
	CuisineID   patch.Field[int64]  `json:"cuisine_id"`
}

type Instruction struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	RecipeID    int64  `json:"recipe_id" gorm:"not null;index"`
	StepNumber  int    `json:"step_number" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
}

func (Instruction) TableName() string { return "instructions" }

// Association rows. Identity is the composite key itself; there is no
// surrogate id, so a duplicate pair fails on the primary key.
type RecipeIngredient struct {
	RecipeID     int64  `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	IngredientID int64  `json:"ingredient_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity     string `json:"quantity"`
	Ord          int    `json:"ord" gorm:"not null;default:0"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

type RecipeTag struct {
	RecipeID int64 `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	TagID    int64 `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}

func (RecipeTag) TableName() string { return "recipe_tags" }

type RecipeDiet struct {
	RecipeID int64 `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	DietID   int64 `json:"diet_id" gorm:"primaryKey;autoIncrement:false"`
}

func (RecipeDiet) TableName() string { return "recipe_diets" }

type RecipeAllergy struct {
	RecipeID  int64 `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	AllergyID int64 `json:"allergy_id" gorm:"primaryKey;autoIncrement:false"`
}

func (RecipeAllergy) TableName() string { return "recipe_allergies" }
