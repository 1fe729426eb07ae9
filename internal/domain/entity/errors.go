package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError reports a read-by-id miss. The message embeds the requested
// id verbatim so that log lines and responses can be correlated with the
// offending request.
type NotFoundError struct {
	Resource string
	ID       any
}

// Error returns a message of the form "<resource> not found - id: <id>".
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found - id: %v", e.Resource, e.ID)
}

// Is makes NotFoundError match ErrNotFound under errors.Is.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
