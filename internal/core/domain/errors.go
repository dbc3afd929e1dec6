package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrForbidden is returned when the caller's role may not perform an action.
	ErrForbidden = errors.New("access forbidden")
	// ErrScopeIntegrity marks a client-role identity with no linked client.
	ErrScopeIntegrity = errors.New("client user has no linked client")
	// ErrValidation is the class of all malformed-input errors.
	ErrValidation = errors.New("validation failed")

	ErrProjectNotFound     = errors.New("project not found")
	ErrTimeEntryNotFound   = errors.New("time entry not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateSubmission = errors.New("submission with this idempotency key is in progress")
)

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
