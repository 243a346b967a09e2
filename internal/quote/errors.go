package quote

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates no quote matched the requested ID.
	ErrNotFound = errors.New("quote not found")

	// ErrValidation indicates a quote failed validation before storage.
	ErrValidation = errors.New("validation failed")

	// ErrUsage indicates a query was issued without any selector.
	ErrUsage = errors.New("missing selector")

	// ErrEmptyStore indicates an operation that needs at least one quote
	// ran against an empty collection.
	ErrEmptyStore = errors.New("quote store is empty")
)

// ValidationError provides context for validation failures.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError provides context for ID lookup misses.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no quote with id %d", e.ID)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
