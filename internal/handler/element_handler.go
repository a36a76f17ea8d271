package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"revos/internal/domain"
	"revos/internal/service"
)

// ElementHandler handles element query and mutation endpoints.
type ElementHandler struct {
	elementService service.ElementService
}

// NewElementHandler creates a new ElementHandler.
func NewElementHandler(elementService service.ElementService) *ElementHandler {
	return &ElementHandler{elementService: elementService}
}

// Filter handles POST /api/v1/elements/filter
func (h *ElementHandler) Filter(c *gin.Context) {
	var input service.FilterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, warnings, err := h.elementService.Filter(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondWarnings(c, out, warnings)
}

// Get handles GET /api/v1/elements/:id
func (h *ElementHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "element id must be an integer")
		return
	}
	detail, ok := domain.ParseDetailLevel(c.Query("detail"))
	if !ok {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "detail must be basic, standard, or full")
		return
	}

	info, err := h.elementService.Get(c.Request.Context(), id, detail)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, info)
}

// OverrideColor handles POST /api/v1/elements/color
func (h *ElementHandler) OverrideColor(c *gin.Context) {
	var input service.ColorOverrideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	results, err := h.elementService.OverrideColor(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, results)
}
