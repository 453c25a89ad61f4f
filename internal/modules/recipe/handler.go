package recipe

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tastebook/internal/domain"
	"tastebook/internal/pkg/response"
	"tastebook/internal/repository"
)

type Handler struct {
	recipes *repository.RecipeRepository
}

func NewHandler(recipes *repository.RecipeRepository) *Handler {
	return &Handler{recipes: recipes}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/recipes", h.List)
		public.GET("/recipes/:id", h.GetByID)
		public.GET("/recipes/:id/instructions", h.ListInstructions)
		public.GET("/recipes/:id/ingredients", h.ListIngredients)
		public.GET("/recipes/:id/tags", h.ListTags)
		public.GET("/recipes/:id/diets", h.ListDiets)
		public.GET("/recipes/:id/allergies", h.ListAllergies)
		public.GET("/cuisines/:id/recipes", h.ListByCuisine)
		public.GET("/users/:id/recipes", h.ListByAuthor)
	}
	if protected != nil {
		protected.POST("/recipes", h.Create)
		protected.PUT("/recipes/:id", h.Update)
		protected.DELETE("/recipes/:id", h.Delete)
		protected.POST("/recipes/:id/instructions", h.AddInstruction)
		protected.DELETE("/instructions/:id", h.DeleteInstruction)
		protected.POST("/recipes/:id/ingredients", h.LinkIngredient)
		protected.DELETE("/recipes/:id/ingredients/:otherID", h.UnlinkIngredient)
		protected.POST("/recipes/:id/tags", h.LinkTag)
		protected.DELETE("/recipes/:id/tags/:otherID", h.UnlinkTag)
		protected.POST("/recipes/:id/diets", h.LinkDiet)
		protected.DELETE("/recipes/:id/diets/:otherID", h.UnlinkDiet)
		protected.POST("/recipes/:id/allergies", h.LinkAllergy)
		protected.DELETE("/recipes/:id/allergies/:otherID", h.UnlinkAllergy)
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+name)
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	rec := &domain.Recipe{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Difficulty:  req.Difficulty,
		UserID:      req.UserID,
		CuisineID:   req.CuisineID,
	}

	if err := h.recipes.Create(c.Request.Context(), rec); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rec)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rec, err := h.recipes.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec)
}

func (h *Handler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recipes)
}

func (h *Handler) ListByCuisine(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	recipes, err := h.recipes.ListByCuisine(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recipes)
}

func (h *Handler) ListByAuthor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	recipes, err := h.recipes.ListByAuthor(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recipes)
}

// Update applies a partial update: only fields present in the body change,
// a JSON null clears optional fields.
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var p domain.RecipePatch
	if err := c.ShouldBindJSON(&p); err != nil {
		response.BindError(c, err)
		return
	}

	rec, err := h.recipes.Update(c.Request.Context(), id, p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) AddInstruction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AddInstructionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ins := &domain.Instruction{
		RecipeID:    id,
		StepNumber:  req.StepNumber,
		Description: req.Description,
	}
	if err := h.recipes.AddInstruction(c.Request.Context(), ins); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ins)
}

func (h *Handler) ListInstructions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	steps, err := h.recipes.ListInstructions(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, steps)
}

func (h *Handler) DeleteInstruction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.recipes.DeleteInstruction(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) LinkIngredient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req LinkIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	row, err := h.recipes.LinkIngredient(c.Request.Context(), id, req.IngredientID, req.Quantity, req.Ord)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, row)
}

func (h *Handler) UnlinkIngredient(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ingredientID, ok := pathID(c, "otherID")
	if !ok {
		return
	}

	if err := h.recipes.UnlinkIngredient(c.Request.Context(), recipeID, ingredientID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unlinked": ingredientID})
}

func (h *Handler) ListIngredients(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.recipes.ListIngredients(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) LinkTag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req LinkTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	row, err := h.recipes.LinkTag(c.Request.Context(), id, req.TagID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, row)
}

func (h *Handler) UnlinkTag(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "otherID")
	if !ok {
		return
	}

	if err := h.recipes.UnlinkTag(c.Request.Context(), recipeID, tagID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unlinked": tagID})
}

func (h *Handler) ListTags(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.recipes.ListTags(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) LinkDiet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req LinkDietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	row, err := h.recipes.LinkDiet(c.Request.Context(), id, req.DietID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, row)
}

func (h *Handler) UnlinkDiet(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	dietID, ok := pathID(c, "otherID")
	if !ok {
		return
	}

	if err := h.recipes.UnlinkDiet(c.Request.Context(), recipeID, dietID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unlinked": dietID})
}

func (h *Handler) ListDiets(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.recipes.ListDiets(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) LinkAllergy(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req LinkAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	row, err := h.recipes.LinkAllergy(c.Request.Context(), id, req.AllergyID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, row)
}

func (h *Handler) UnlinkAllergy(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	allergyID, ok := pathID(c, "otherID")
	if !ok {
		return
	}

	if err := h.recipes.UnlinkAllergy(c.Request.Context(), recipeID, allergyID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unlinked": allergyID})
}

func (h *Handler) ListAllergies(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.recipes.ListAllergies(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}
