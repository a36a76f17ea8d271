package handler

import (
	"github.com/gin-gonic/gin"

	"revos/internal/service"
)

// CategoryHandler exposes category capability metadata.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	RespondOK(c, h.categoryService.List())
}

// Get handles GET /api/v1/categories/:name
func (h *CategoryHandler) Get(c *gin.Context) {
	info, err := h.categoryService.Get(c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, info)
}
