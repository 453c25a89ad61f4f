package catalog

type CreateNamedRequest struct {
	Name string `json:"name" binding:"required"`
}
