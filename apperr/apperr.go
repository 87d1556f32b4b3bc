package apperr

import (
	"fmt"
	"net/http"
)

// Error codes surfaced to API clients.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeStore      = "STORE_ERROR"
)

// AppError is a request-scoped failure with an HTTP status mapping.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{Code: code, Message: message, StatusCode: statusCode}
}

// Validation returns a 400 validation failure with an explanatory message.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// NotFound returns a 404 for an absent update/delete target.
func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// Store wraps a persistence failure as a generic 500. The underlying error
// is logged at the call site, not exposed to the client.
func Store(message string) *AppError {
	return New(CodeStore, message, http.StatusInternalServerError)
}

var (
	ErrObjectNotFound = NotFound("Object not found")
	ErrIssueNotFound  = NotFound("Issue not found")
)
