package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Codes carried in the "code" field of every error body.
const (
	ErrCodeUnauthenticated    = "UNAUTHENTICATED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeWeakPassword       = "WEAK_PASSWORD"
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeDuplicateAccount   = "DUPLICATE_ACCOUNT"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// APIError is the JSON body of every failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Abort writes an error body with the given status and stops the handler chain.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, APIError{Code: code, Message: message})
}

// Forbidden is used for every authentication failure.
func Forbidden(c *gin.Context, message string) {
	Abort(c, http.StatusForbidden, ErrCodeUnauthenticated, orDefault(message, "Access denied"))
}

func NotFound(c *gin.Context, message string) {
	Abort(c, http.StatusNotFound, ErrCodeNotFound, orDefault(message, "Resource not found"))
}

// BadRequest reports malformed input with INVALID_INPUT.
func BadRequest(c *gin.Context, message string) {
	BadRequestWithCode(c, ErrCodeInvalidInput, orDefault(message, "Invalid request"))
}

func BadRequestWithCode(c *gin.Context, code, message string) {
	Abort(c, http.StatusBadRequest, code, message)
}

// InternalError never exposes the underlying cause; callers log it.
func InternalError(c *gin.Context, message string) {
	Abort(c, http.StatusInternalServerError, ErrCodeInternalError, orDefault(message, "Internal server error"))
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
