package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application. Each one maps to a
// single externally observable outcome at the API boundary.
var (
	// ErrValidation is returned when input fails shape or bound checks.
	// It is usually wrapped by a *ValidationError listing the violations.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when an operation would violate a uniqueness
	// rule, such as registering an email that is already taken.
	ErrConflict = errors.New("resource already exists")

	// ErrUnauthorized is returned for failed credential checks. Unknown
	// email and wrong password both produce this error unchanged.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrNotFound is returned when a keyed lookup, update, or owner-scoped
	// delete matches nothing. Callers cannot tell a missing resource from
	// one owned by somebody else.
	ErrNotFound = errors.New("resource not found")
)

// Violation describes a single failed field rule.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one input.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, rule, message string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: field, Rule: rule, Message: message}}}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
