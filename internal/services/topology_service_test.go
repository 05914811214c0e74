package services

import (
	"testing"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveRackBlockedByPlacements(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewTopologyService()
	rackService := NewRackService()

	rack := seedRack(t, fixture, 42)
	element := seedElement(t, fixture, nil)
	require.NoError(t, rackService.PlaceElement(rack.RackID, element.ElementID, 3, ""))

	err := service.RemoveRack(rack.RackID, false)
	assert.True(t, errs.IsConflict(err))

	require.NoError(t, service.RemoveRack(rack.RackID, true))

	_, found, err := rackService.FindPlacement(element.ElementID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRemoveGroupNeverCascadesElements(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewTopologyService()

	seedElement(t, fixture, nil)

	// even forced removal refuses while elements remain
	err := service.RemoveGroup(fixture.Group.GroupID, false)
	assert.True(t, errs.IsConflict(err))
	err = service.RemoveGroup(fixture.Group.GroupID, true)
	assert.True(t, errs.IsConflict(err))
}

func TestRemoveGroupCascadesRacksWhenForced(t *testing.T) {
	setupTestDB(t)
	service := NewTopologyService()
	database := db.GetDB()

	group := &models.ElementGroup{
		Name: uniqueName("empty-group"),
		Type: models.GroupTypePod,
	}
	require.NoError(t, database.Create(group).Error)

	rack := &models.Rack{
		Name:    uniqueName("orphan-rack"),
		GroupID: group.ID,
	}
	require.NoError(t, database.Create(rack).Error)

	err := service.RemoveGroup(group.GroupID, false)
	assert.True(t, errs.IsConflict(err))

	require.NoError(t, service.RemoveGroup(group.GroupID, true))

	var count int64
	database.Model(&models.Rack{}).Where("group_id = ?", group.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRemoveFacilityDetachesReferencesWhenForced(t *testing.T) {
	setupTestDB(t)
	service := NewTopologyService()
	database := db.GetDB()

	facility := &models.Facility{
		Name: uniqueName("test-facility"),
		Type: models.FacilityTypeDatacenter,
	}
	require.NoError(t, database.Create(facility).Error)

	group := &models.ElementGroup{
		Name:       uniqueName("sited-group"),
		Type:       models.GroupTypePod,
		FacilityID: &facility.ID,
	}
	require.NoError(t, database.Create(group).Error)
	t.Cleanup(func() { database.Delete(group) })

	err := service.RemoveFacility(facility.FacilityID, false)
	assert.True(t, errs.IsConflict(err))

	// forced: the group survives, unsited
	require.NoError(t, service.RemoveFacility(facility.FacilityID, true))

	var refreshed models.ElementGroup
	require.NoError(t, database.First(&refreshed, group.ID).Error)
	assert.Nil(t, refreshed.FacilityID)
}
