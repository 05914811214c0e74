package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("element", "leaf-01")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
	assert.Contains(t, err.Error(), "element")
	assert.Contains(t, err.Error(), "leaf-01")
}

func TestConflict(t *testing.T) {
	err := Conflict("rack %s unit %d occupied", "r1", 3)

	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsStaleVersion(err))
	assert.Contains(t, err.Error(), "rack r1 unit 3 occupied")
}

func TestStaleVersionIsConflict(t *testing.T) {
	// stale versions are conflicts, but distinguishable as retryable
	assert.True(t, IsConflict(ErrStaleVersion))
	assert.True(t, IsStaleVersion(ErrStaleVersion))
	assert.False(t, IsStaleVersion(Conflict("plain conflict")))
}

func TestWrappedErrorsSurvive(t *testing.T) {
	wrapped := fmt.Errorf("storing settings: %w", NotFound("role", "spine"))
	assert.True(t, IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}
