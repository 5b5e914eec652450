package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a missing id and a record owned by someone
	// else, so callers cannot tell whether another user's id exists.
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) true for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Required builds the error for an empty mandatory field.
func Required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}
