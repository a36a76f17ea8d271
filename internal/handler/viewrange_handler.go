package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revos/internal/domain"
	"revos/internal/service"
)

// ViewRangeHandler handles view-range resolution endpoints.
type ViewRangeHandler struct {
	viewRangeService service.ViewRangeService
}

// NewViewRangeHandler creates a new ViewRangeHandler.
func NewViewRangeHandler(viewRangeService service.ViewRangeService) *ViewRangeHandler {
	return &ViewRangeHandler{viewRangeService: viewRangeService}
}

// Resolve handles POST /api/v1/viewrange/resolve
func (h *ViewRangeHandler) Resolve(c *gin.Context) {
	var cfg domain.ViewRangeConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, warnings, err := h.viewRangeService.Resolve(c.Request.Context(), cfg)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondWarnings(c, out, warnings)
}

// Levels handles GET /api/v1/levels
func (h *ViewRangeHandler) Levels(c *gin.Context) {
	levels, err := h.viewRangeService.Levels(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, levels)
}
