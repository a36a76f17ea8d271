package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"revos/internal/service"
)

// ReportHandler handles report generation endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Generate handles POST /api/v1/reports
func (h *ReportHandler) Generate(c *gin.Context) {
	var input service.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, warnings, err := h.reportService.Generate(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondWarnings(c, out, warnings)
}

// Delete handles DELETE /api/v1/reports/*key
func (h *ReportHandler) Delete(c *gin.Context) {
	// Wildcard params carry a leading slash; report keys never do.
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "report key is required")
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), key); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": key})
}
