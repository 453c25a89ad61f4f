package catalog

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tastebook/internal/pkg/response"
	"tastebook/internal/repository"
)

// Handler serves the five lookup collections. They share one route shape,
// so each collection is registered through the same helper.
type Handler struct {
	catalog *repository.CatalogRepository
}

func NewHandler(catalog *repository.CatalogRepository) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	registerLookup(public, protected, "/cuisines",
		h.catalog.CreateCuisine, h.catalog.ListCuisines, h.catalog.GetCuisine, h.catalog.DeleteCuisine)
	registerLookup(public, protected, "/ingredients",
		h.catalog.CreateIngredient, h.catalog.ListIngredients, h.catalog.GetIngredient, h.catalog.DeleteIngredient)
	registerLookup(public, protected, "/tags",
		h.catalog.CreateTag, h.catalog.ListTags, h.catalog.GetTag, h.catalog.DeleteTag)
	registerLookup(public, protected, "/diets",
		h.catalog.CreateDiet, h.catalog.ListDiets, h.catalog.GetDiet, h.catalog.DeleteDiet)
	registerLookup(public, protected, "/allergies",
		h.catalog.CreateAllergy, h.catalog.ListAllergies, h.catalog.GetAllergy, h.catalog.DeleteAllergy)
}

func registerLookup[T any](
	public, protected *gin.RouterGroup,
	path string,
	create func(context.Context, string) (*T, error),
	list func(context.Context) ([]T, error),
	get func(context.Context, int64) (*T, error),
	del func(context.Context, int64) error,
) {
	if public != nil {
		public.GET(path, func(c *gin.Context) {
			rows, err := list(c.Request.Context())
			if err != nil {
				response.FromError(c, err)
				return
			}
			response.Success(c, http.StatusOK, rows)
		})
		public.GET(path+"/:id", func(c *gin.Context) {
			id, ok := parseID(c)
			if !ok {
				return
			}
			row, err := get(c.Request.Context(), id)
			if err != nil {
				response.FromError(c, err)
				return
			}
			response.Success(c, http.StatusOK, row)
		})
	}
	if protected != nil {
		protected.POST(path, func(c *gin.Context) {
			var req CreateNamedRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				response.BindError(c, err)
				return
			}
			name := strings.TrimSpace(req.Name)
			if name == "" {
				response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
				return
			}
			row, err := create(c.Request.Context(), name)
			if err != nil {
				response.FromError(c, err)
				return
			}
			response.Success(c, http.StatusCreated, row)
		})
		protected.DELETE(path+"/:id", func(c *gin.Context) {
			id, ok := parseID(c)
			if !ok {
				return
			}
			if err := del(c.Request.Context(), id); err != nil {
				response.FromError(c, err)
				return
			}
			response.Success(c, http.StatusOK, gin.H{"deleted": id})
		})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
