package events

import (
	"testing"

	"atlas_inventory_server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeCreatesGlobalHub(t *testing.T) {
	Initialize()

	require.NotNil(t, WSHub)
	assert.Equal(t, 0, WSHub.ClientCount())

	// the hub accepts broadcasts before any HTTP server exists, so the
	// watchdog can start ahead of the listener
	WSHub.BroadcastWatchdogSweep(3)
}

func TestEmitNeverBlocks(t *testing.T) {
	hub := NewHub()

	// no run loop draining the channel; overflow must be dropped, not
	// block the writer
	element := &models.Element{ElementID: "e-1", Name: "leaf-01", OperState: models.OperStateUp}
	for i := 0; i < 256; i++ {
		hub.BroadcastElementEvent("element_updated", element)
	}
}
