package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/broccoli/backend/internal/apperrors"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// SuccessResponse is returned by operations that have no entity to show.
type SuccessResponse struct {
	Message string `json:"message"`
}

const (
	constraintViolationDetail = "Data constraint violation. Please check your input."
	internalErrorDetail       = "Internal server error"
)

// --- Error Response Helpers ---

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: resource + " not found"})
}

// respondConstraintViolation sends a 400 without the underlying store message.
func respondConstraintViolation(c *gin.Context, err error, context string) {
	log.Printf("Constraint violation (%s): %v", context, err)
	c.JSON(http.StatusBadRequest, ErrorResponse{Detail: constraintViolationDetail})
}

// respondValidationError sends a 422 Unprocessable Entity response.
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: internalErrorDetail})
}

// respondAppError maps a repository error onto its status code.
func respondAppError(c *gin.Context, err error, resource, context string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondNotFound(c, resource)
	case errors.Is(err, apperrors.ErrConstraintViolation):
		respondConstraintViolation(c, err, context)
	case errors.Is(err, apperrors.ErrValidation):
		respondValidationError(c, err.Error())
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 422 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondValidationError(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes and validates the request body, responding with 422 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidationError(c, err.Error())
		return false
	}
	return true
}
