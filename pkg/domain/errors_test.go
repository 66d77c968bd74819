package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	id := uuid.New()
	err := fmt.Errorf("loading tool: %w", NewNotFoundError("tool", id))

	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), id.String())
	assert.False(t, IsNotFoundError(errors.New("boom")))
	assert.False(t, IsNotFoundError(nil))
	assert.True(t, IsNotFoundError(NewNotFoundErrorByKey("category", "video")))
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("create: %w", NewValidationError("url", "must be a valid URL"))

	assert.True(t, IsValidationError(err))
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "create: url must be a valid URL", err.Error())
	assert.False(t, IsValidationError(NewNotFoundError("tool", uuid.New())))
}
