package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound     = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden    = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest   = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrTokenExpired = &AppError{Code: http.StatusUnauthorized, Message: "Token has expired"}
	ErrInvalidToken = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}

	// ErrSubscriptionInactive is the distinguished signal that the tenant's
	// subscription has lapsed. Callers switch the whole dashboard into
	// read-only mode on this error instead of showing an inline failure.
	ErrSubscriptionInactive = &AppError{Code: http.StatusPaymentRequired, Message: "Subscription inactive"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a local validation error. These never reach the
// upstream order service.
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Errors:  []FieldError{{Field: field, Message: message}},
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewUpstreamError wraps a failure reported by the order service. The
// upstream message is carried verbatim so the dashboard can surface it.
func NewUpstreamError(status int, message string) *AppError {
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	if message == "" {
		message = "Order service request failed"
	}
	return &AppError{Code: status, Message: message}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsSubscriptionInactive reports whether err carries the distinguished
// subscription-inactive condition.
func IsSubscriptionInactive(err error) bool {
	return errors.Is(err, ErrSubscriptionInactive)
}

// IsValidation reports whether err is a local validation error.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusUnprocessableEntity
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
