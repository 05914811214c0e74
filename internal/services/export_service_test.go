package services

import (
	"testing"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRackCapturesOrderedContents(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	rackService := NewRackService()
	service := NewExportService(rackService)

	rack := seedRack(t, fixture, 42)
	low := seedElement(t, fixture, nil)
	high := seedElement(t, fixture, nil)
	require.NoError(t, rackService.PlaceElement(rack.RackID, high.ElementID, 20, ""))
	require.NoError(t, rackService.PlaceElement(rack.RackID, low.ElementID, 4, ""))

	snapshot, err := service.ExportRack(rack.RackID)
	require.NoError(t, err)

	assert.Equal(t, rack.Name, snapshot.Name)
	assert.Equal(t, fixture.Group.Name, snapshot.Group)
	assert.Equal(t, 42, snapshot.Units)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, low.Name, snapshot.Items[0].Element)
	assert.Equal(t, 4, snapshot.Items[0].Position)
	assert.Equal(t, high.Name, snapshot.Items[1].Element)
	assert.Equal(t, 20, snapshot.Items[1].Position)
}

func TestImportSnapshotRecreatesRack(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	rackService := NewRackService()
	service := NewExportService(rackService)

	rack := seedRack(t, fixture, 42)
	element := seedElement(t, fixture, nil)
	require.NoError(t, rackService.PlaceElement(rack.RackID, element.ElementID, 6, ""))

	snapshot, err := service.ExportRack(rack.RackID)
	require.NoError(t, err)

	// drop the rack entirely, then restore it from the snapshot
	database := db.GetDB()
	require.NoError(t, database.Where("rack_id = ?", rack.ID).Delete(&models.RackPlacement{}).Error)
	require.NoError(t, database.Delete(rack).Error)

	require.NoError(t, service.ImportSnapshot(&InventorySnapshot{Racks: []RackSnapshot{*snapshot}}))

	var restored models.Rack
	require.NoError(t, database.Where("group_id = ? AND name = ?", fixture.Group.ID, rack.Name).First(&restored).Error)
	assert.Equal(t, 42, restored.Units)

	placement, found, err := rackService.FindPlacement(element.ElementID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, restored.RackID, placement.Rack.RackID)
	assert.Equal(t, 6, placement.Unit)
}

func TestImportSnapshotUnknownElementFails(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewExportService(NewRackService())

	err := service.ImportSnapshot(&InventorySnapshot{Racks: []RackSnapshot{{
		Name:      uniqueName("ghost-rack"),
		Group:     fixture.Group.Name,
		GroupType: fixture.Group.Type,
		Units:     42,
		Items: []RackSnapshotItem{{
			Position: 1,
			Element:  uniqueName("no-such-element"),
		}},
	}}})
	assert.True(t, errs.IsNotFound(err))
}
