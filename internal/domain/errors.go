// Package domain – typed application errors.
//
// Every failure that crosses a service boundary is an *AppError carrying a
// human-readable message, the HTTP status it maps to, and a category tag.
// Errors are constructed at the failure site, propagated unchanged, and
// formatted exactly once by the HTTP error funnel. Raw driver or framework
// errors never leave the store/service layer.
package domain

import "net/http"

// ErrorType categorizes an AppError for logging and for the HTTP funnel.
type ErrorType string

// Error categories.
const (
	// ErrorTypeClient marks malformed input or ids supplied by the caller.
	ErrorTypeClient ErrorType = "CLIENT"
	// ErrorTypeServer marks unexpected internal failures.
	ErrorTypeServer ErrorType = "SERVER"
	// ErrorTypeDatabase marks persistence I/O failures.
	ErrorTypeDatabase ErrorType = "DATABASE"
	// ErrorTypeCORS marks requests from a disallowed origin.
	ErrorTypeCORS ErrorType = "CORS"
	// ErrorTypeNotFound marks a well-formed id with no matching record.
	// It still maps to HTTP 400: the API keeps a flat client-error bucket.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
)

// AppError is the typed error value used throughout the service. It is
// immutable after construction.
type AppError struct {
	Message string
	Code    int
	Type    ErrorType
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Status returns the HTTP status code for the error, defaulting to 500
// when none was set.
func (e *AppError) Status() int {
	if e.Code == 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// NewAppError constructs an AppError with the given message, HTTP status
// code, and category.
func NewAppError(message string, code int, t ErrorType) *AppError {
	return &AppError{Message: message, Code: code, Type: t}
}
