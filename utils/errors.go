package utils

import (
	"net/http"
)

// Error codes surfaced in the response envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeInvalidState = "INVALID_STATE"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is the error taxonomy of the API: a stable code, a user-facing
// message and the HTTP status it maps to. Details carries field-level
// validation info when present.
type AppError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Status  int         `json:"-"`
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func NewValidationError(message string, details interface{}) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Details: details, Status: http.StatusBadRequest}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message, Status: http.StatusUnauthorized}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message, Status: http.StatusForbidden}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, Status: http.StatusNotFound}
}

// NewInvalidStateError covers transitions attempted from a non-eligible
// state, including the loser of two racing admin actions.
func NewInvalidStateError(message string) *AppError {
	return &AppError{Code: CodeInvalidState, Message: message, Status: http.StatusConflict}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message, Status: http.StatusConflict}
}

func NewInternalError(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Status: http.StatusInternalServerError}
}
