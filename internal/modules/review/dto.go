package review

type CreateReviewRequest struct {
	Rating   int     `json:"rating" binding:"required,min=1,max=5"`
	Comment  *string `json:"comment"`
	RecipeID int64   `json:"recipe_id" binding:"required"`
}
