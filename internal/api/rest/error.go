package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeKeyError      ErrorCode = "encryption_key_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps a registry error to its HTTP representation. Scope
// violations are reported as not found so records outside the caller's
// jurisdiction are indistinguishable from absent ones.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		respondBadRequest(c, "Invalid request", err.Error())
	case errors.Is(err, domain.ErrHeadNotMember):
		respondBadRequest(c, "Household head must be an active member", err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrScopeViolation):
		respondNotFound(c, "Record not found")
	case errors.Is(err, domain.ErrConcurrencyConflict):
		respondWithError(c, http.StatusConflict, errCodeConflict, "Write conflicted with a concurrent change, retry the request")
	case errors.Is(err, domain.ErrActiveMembershipExists):
		respondWithError(c, http.StatusConflict, errCodeConflict, "Resident already belongs to a household", err.Error())
	case errors.Is(err, domain.ErrNoActiveKey), errors.Is(err, domain.ErrKeyUnavailable):
		logger.Error(err)
		respondWithError(c, http.StatusInternalServerError, errCodeKeyError, "Encryption key unavailable")
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
