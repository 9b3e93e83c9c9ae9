package task

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("task not found")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("invalid task")
	// ErrCorruptStore is matched by every *CorruptStoreError.
	ErrCorruptStore = errors.New("corrupt task store")
)

// NotFoundError reports that no task carries the requested id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a rejected field value.
type ValidationError struct {
	Field string // name of the offending field
	Err   error  // underlying reason
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CorruptStoreError reports a task file that exists but cannot be used.
// The file is left untouched so it can be inspected and repaired by hand.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("corrupt task file %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("corrupt task file: %s", e.Err)
}

// Unwrap returns the underlying error.
func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCorruptStore) hold.
func (e *CorruptStoreError) Is(target error) bool {
	return target == ErrCorruptStore
}

var (
	errEmptyDescription = errors.New("description must not be empty")
	errIDsExhausted     = errors.New("no task id left: highest id is already the maximum")
)
