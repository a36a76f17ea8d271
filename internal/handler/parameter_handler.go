package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"revos/internal/service"
)

// ParameterHandler handles parameter read and write endpoints.
type ParameterHandler struct {
	parameterService service.ParameterService
}

// NewParameterHandler creates a new ParameterHandler.
func NewParameterHandler(parameterService service.ParameterService) *ParameterHandler {
	return &ParameterHandler{parameterService: parameterService}
}

// Get handles GET /api/v1/elements/:id/parameters/:name
func (h *ParameterHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "element id must be an integer")
		return
	}

	value, err := h.parameterService.Get(c.Request.Context(), id, c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, value)
}

type getManyInput struct {
	Names []string `json:"names" binding:"required,min=1"`
}

// GetMany handles POST /api/v1/elements/:id/parameters/query
func (h *ParameterHandler) GetMany(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "element id must be an integer")
		return
	}

	var input getManyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	values, err := h.parameterService.GetMany(c.Request.Context(), id, input.Names)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, values)
}

// Set handles PUT /api/v1/parameters
func (h *ParameterHandler) Set(c *gin.Context) {
	var input service.SetParameterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.parameterService.Set(c.Request.Context(), input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"element_id": input.ElementID, "name": input.Name})
}

type setBatchInput struct {
	Items []service.SetParameterInput `json:"items" binding:"required,min=1,dive"`
}

// SetBatch handles PUT /api/v1/parameters/batch
func (h *ParameterHandler) SetBatch(c *gin.Context) {
	var input setBatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	results, err := h.parameterService.SetBatch(c.Request.Context(), input.Items)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, results)
}
