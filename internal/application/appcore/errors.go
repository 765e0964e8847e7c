package appcore

import (
	"errors"
	"fmt"
)

// Common application errors
var (
	// ErrValidationFailed groups command validation failures
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotFound is returned when a referenced aggregate is missing
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned on state conflicts
	ErrConflict = errors.New("conflict")

	// ErrEventStoreError wraps infrastructure failures of the store
	ErrEventStoreError = errors.New("event store error")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets ValidationError match ErrValidationFailed
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError represents a "not found" error
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Unwrap lets NotFoundError match ErrNotFound
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a NotFoundError
func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// NeedsConfirmationError is returned when a cascade would touch children
// the caller has not confirmed. It carries the child count for the UI.
type NeedsConfirmationError struct {
	Operation string
	Children  int
}

func (e *NeedsConfirmationError) Error() string {
	return fmt.Sprintf("%s needs confirmation: %d children affected", e.Operation, e.Children)
}

// NewNeedsConfirmationError creates a NeedsConfirmationError
func NewNeedsConfirmationError(operation string, children int) error {
	return &NeedsConfirmationError{Operation: operation, Children: children}
}

// AsNeedsConfirmation extracts a NeedsConfirmationError from an error chain.
func AsNeedsConfirmation(err error) (*NeedsConfirmationError, bool) {
	var nc *NeedsConfirmationError
	if errors.As(err, &nc) {
		return nc, true
	}
	return nil, false
}
