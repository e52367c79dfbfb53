package utils

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("invalid state transition")
	ErrInsufficientBalance = errors.New("insufficient reward balance")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrDatabaseError       = errors.New("database error")
)

// ValidationError carries per-field messages alongside ErrValidation so the
// API layer can return the details map the dashboard renders.
type ValidationError struct {
	Details map[string][]string
}

func (e *ValidationError) Error() string { return ErrValidation.Error() }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Details: map[string][]string{field: {message}}}
}
