package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"revos/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success  bool             `json:"success"`
	Data     interface{}      `json:"data,omitempty"`
	Error    *APIError        `json:"error,omitempty"`
	Warnings []domain.Warning `json:"warnings,omitempty"`
	Meta     *PagMeta         `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondWarnings sends a 200 success response carrying non-fatal warnings.
func RespondWarnings(c *gin.Context, data interface{}, warnings []domain.Warning) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Warnings: warnings})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrElementNotFound):
		return http.StatusNotFound, "ELEMENT_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrParameterNotFound):
		return http.StatusNotFound, "PARAMETER_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrLevelNotFound):
		return http.StatusNotFound, "LEVEL_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusBadRequest, "UNKNOWN_CATEGORY", err.Error()
	case errors.Is(err, domain.ErrUnknownClass):
		return http.StatusBadRequest, "UNKNOWN_CLASS", err.Error()
	case errors.Is(err, domain.ErrInvalidFilter):
		return http.StatusBadRequest, "INVALID_FILTER", err.Error()
	case errors.Is(err, domain.ErrInvalidViewRange):
		return http.StatusBadRequest, "INVALID_VIEW_RANGE", err.Error()
	case errors.Is(err, domain.ErrAmbiguousAlias):
		return http.StatusBadRequest, "AMBIGUOUS_ALIAS", err.Error()
	case errors.Is(err, domain.ErrHostTimeout):
		return http.StatusGatewayTimeout, "HOST_TIMEOUT", "host did not respond in time"
	case errors.Is(err, domain.ErrHostOperation):
		return http.StatusInternalServerError, "HOST_OPERATION_FAILED", "host operation failed"
	case errors.Is(err, domain.ErrReportFailed):
		return http.StatusInternalServerError, "REPORT_FAILED", "report generation failed"
	case errors.Is(err, domain.ErrInvalidReportKey):
		return http.StatusBadRequest, "INVALID_REPORT_KEY", err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid client credentials"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
