// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Error classes. Every specific error below matches exactly one of these via errors.Is.
var (
	ErrInvalidInput   = errors.New("invalid input provided")
	ErrConflict       = errors.New("resource conflict")
	ErrNotFound       = errors.New("resource not found")
	ErrStorage        = errors.New("storage failure")
	ErrDuplicateEntry = errors.New("duplicate entry") // Unique constraint violated at the storage layer
)

// Validation errors reported by the use cases, in the order the checks run.
var (
	ErrEmptyName          = newValidationError("Name cannot be empty")
	ErrInvalidEmailFormat = newValidationError("Invalid email format")
	ErrNonPositiveAge     = newValidationError("Age must be positive")
	ErrNonPositiveID      = newValidationError("User ID must be positive")
	ErrNegativeSkip       = newValidationError("Skip must be non-negative")
	ErrNonPositiveLimit   = newValidationError("Limit must be positive")
	ErrLimitTooLarge      = newValidationError("Limit cannot exceed 100")
	ErrNoFieldsProvided   = newValidationError("At least one field must be provided for update")
	ErrMissingID          = newValidationError("User must have an ID to be updated")
)

// ErrDuplicateEmail is returned when another user already holds the email.
var ErrDuplicateEmail = &ConflictError{Message: "Email already exists"}

// ValidationError is a rejected input. It matches ErrInvalidInput.
type ValidationError struct {
	Message string
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// ConflictError is a uniqueness violation. It matches ErrConflict.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// NotFoundError reports a missing record by id. It matches ErrNotFound.
type NotFoundError struct {
	Resource string
	ID       int64
}

// NewUserNotFound builds the NotFoundError for a user id.
func NewUserNotFound(id int64) *NotFoundError {
	return &NotFoundError{Resource: "User", ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StorageError wraps a failed read or write in the repository adapter.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err with the failing operation name.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// IsError reports whether any error in err's chain matches target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
