package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorWrapping(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(ErrUserNotFound, ErrNotFound),
		"entity-specific not found errors should wrap ErrNotFound")
	assert.True(t, errors.Is(ErrTaskNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrTaskNotFound, ErrUserNotFound),
		"entity-specific errors should stay distinct from each other")

	wrapped := fmt.Errorf("get task 42: %w", ErrTaskNotFound)
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsDuplicateError(wrapped))
}

func TestDuplicateErrorWrapping(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(ErrEmailExists, ErrDuplicate))

	wrapped := fmt.Errorf("create user: %w", ErrEmailExists)
	assert.True(t, IsDuplicateError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
}

func TestHelpersRejectUnrelatedErrors(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")
	assert.False(t, IsNotFoundError(err))
	assert.False(t, IsDuplicateError(err))
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsDuplicateError(nil))
}
