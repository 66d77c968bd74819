package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEntityNotFound *notFoundError
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
)

type notFoundError struct {
	EntityType string
	Key        string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.Key)
}

func NewNotFoundError(entityType string, id uuid.UUID) error {
	return &notFoundError{
		EntityType: entityType,
		Key:        id.String(),
	}
}

// NewNotFoundErrorByKey is used when the entity is addressed by something
// other than its ID, such as a slug.
func NewNotFoundErrorByKey(entityType, key string) error {
	return &notFoundError{
		EntityType: entityType,
		Key:        key,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	return errors.As(err, &notFoundError)
}

type validationError struct {
	Field  string
	Reason string
}

func (e *validationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *validationError) Unwrap() error {
	return ErrInvalidInput
}

func NewValidationError(field, reason string) error {
	return &validationError{Field: field, Reason: reason}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
