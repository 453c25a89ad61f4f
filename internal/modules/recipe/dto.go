package recipe

type CreateRecipeRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	ImageURL    string  `json:"image_url" binding:"required"`
	PrepTime    *int    `json:"prep_time" binding:"omitempty,min=0"`
	CookTime    *int    `json:"cook_time" binding:"omitempty,min=0"`
	Servings    *int    `json:"servings" binding:"omitempty,min=1"`
	Difficulty  string  `json:"difficulty" binding:"required"`
	UserID      int64   `json:"user_id" binding:"required"`
	CuisineID   int64   `json:"cuisine_id" binding:"required"`
}

type AddInstructionRequest struct {
	StepNumber  int    `json:"step_number" binding:"required,min=1"`
	Description string `json:"description" binding:"required"`
}

type LinkIngredientRequest struct {
	IngredientID int64  `json:"ingredient_id" binding:"required"`
	Quantity     string `json:"quantity"`
	Ord          int    `json:"ord" binding:"omitempty,min=0"`
}

type LinkTagRequest struct {
	TagID int64 `json:"tag_id" binding:"required"`
}

type LinkDietRequest struct {
	DietID int64 `json:"diet_id" binding:"required"`
}

type LinkAllergyRequest struct {
	AllergyID int64 `json:"allergy_id" binding:"required"`
}
