package handlers

import (
	"net/http"

	"github.com/akinalp/serverdir/pkg"
	"github.com/akinalp/serverdir/services"
)

// CategoryHandler, kategori endpoint'lerini yöneten struct.
type CategoryHandler struct {
	categoryService services.CategoryService
}

// NewCategoryHandler, constructor.
func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List godoc
// GET /api/server/category
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, categories)
}
