package favorite

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tastebook/internal/pkg/response"
	"tastebook/internal/repository"
)

// Handler manages a user's favorites. The acting user always comes from the
// auth middleware, never from the request body.
type Handler struct {
	favorites repository.FavoriteRepository
}

func NewHandler(favorites repository.FavoriteRepository) *Handler {
	return &Handler{favorites: favorites}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/recipes/:id/favorites", h.ListByRecipe)
	}
	if protected != nil {
		protected.POST("/recipes/:id/favorite", h.Add)
		protected.DELETE("/recipes/:id/favorite", h.Remove)
		protected.GET("/me/favorites", h.ListMine)
	}
}

func (h *Handler) Add(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe id")
		return
	}

	fav, err := h.favorites.Add(c.Request.Context(), userID, recipeID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, fav)
}

func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe id")
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), userID, recipeID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": recipeID})
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	favorites, err := h.favorites.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, favorites)
}

func (h *Handler) ListByRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe id")
		return
	}

	favorites, err := h.favorites.ListByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, favorites)
}
