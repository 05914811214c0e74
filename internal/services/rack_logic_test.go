package services

import (
	"testing"

	"atlas_inventory_server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPlacementSpan(t *testing.T) {
	start, end := placementSpan(3, 1)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)

	start, end = placementSpan(3, 4)
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)

	// zero or negative height defaults to one unit
	start, end = placementSpan(10, 0)
	assert.Equal(t, 10, start)
	assert.Equal(t, 10, end)
}

func TestSpansOverlap(t *testing.T) {
	assert.True(t, spansOverlap(1, 2, 2, 3))
	assert.True(t, spansOverlap(2, 3, 1, 2))
	assert.True(t, spansOverlap(1, 10, 4, 5))
	assert.True(t, spansOverlap(4, 4, 4, 4))

	assert.False(t, spansOverlap(1, 2, 3, 4))
	assert.False(t, spansOverlap(5, 8, 1, 4))
}

func TestPlatformHeight(t *testing.T) {
	assert.Equal(t, 1, platformHeight(nil))
	assert.Equal(t, 1, platformHeight(&models.Platform{UnitHeight: 0}))
	assert.Equal(t, 4, platformHeight(&models.Platform{UnitHeight: 4}))
}

func TestHalfRackConflict(t *testing.T) {
	// same unit, opposite sides: no conflict
	assert.False(t, halfRackConflict(3, models.HalfRackLeft, 3, models.HalfRackRight))
	assert.False(t, halfRackConflict(3, models.HalfRackRight, 3, models.HalfRackLeft))

	// same unit, same side: conflict
	assert.True(t, halfRackConflict(3, models.HalfRackLeft, 3, models.HalfRackLeft))

	// different unit with overlapping spans: conflict regardless of side
	assert.True(t, halfRackConflict(3, models.HalfRackLeft, 4, models.HalfRackRight))

	// a side-less participant always conflicts
	assert.True(t, halfRackConflict(3, "", 3, models.HalfRackRight))
	assert.True(t, halfRackConflict(3, models.HalfRackLeft, 3, ""))
}
