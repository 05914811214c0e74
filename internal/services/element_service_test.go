package services

import (
	"errors"
	"testing"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStoreElementSettingsCreateThenUpdate(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewElementService()

	settings := &ElementSettings{
		ElementID: uuid.NewString(),
		Name:      uniqueName("leaf"),
		GroupID:   fixture.Group.GroupID,
		Role:      fixture.Role.Name,
	}

	created, err := service.StoreElementSettings(settings)
	require.NoError(t, err)
	assert.True(t, created)

	// the same submission again is an update, not a second create
	created, err = service.StoreElementSettings(settings)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	db.GetDB().Model(&models.Element{}).Where("element_id = ?", settings.ElementID).Count(&count)
	assert.Equal(t, int64(1), count)

	var element models.Element
	require.NoError(t, db.GetDB().Where("element_id = ?", settings.ElementID).First(&element).Error)
	assert.Equal(t, settings.Name, element.Name)
	assert.Equal(t, models.AdminStateDown, element.AdminState)
	assert.Equal(t, models.OperStateUnknown, element.OperState)
}

func TestStoreElementSettingsRejectsDuplicateName(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewElementService()

	name := uniqueName("leaf")
	_, err := service.StoreElementSettings(&ElementSettings{
		ElementID: uuid.NewString(),
		Name:      name,
		GroupID:   fixture.Group.GroupID,
		Role:      fixture.Role.Name,
	})
	require.NoError(t, err)

	_, err = service.StoreElementSettings(&ElementSettings{
		ElementID: uuid.NewString(),
		Name:      name,
		GroupID:   fixture.Group.GroupID,
		Role:      fixture.Role.Name,
	})
	assert.True(t, errs.IsConflict(err))
}

func TestTranslateCreateError(t *testing.T) {
	// a unique-index race on create is a conflict, not an internal error
	err := translateCreateError(gorm.ErrDuplicatedKey, "leaf-01")
	assert.True(t, errs.IsConflict(err))
	assert.Contains(t, err.Error(), "leaf-01")

	// anything else passes through unchanged
	other := errors.New("connection reset")
	assert.Equal(t, other, translateCreateError(other, "leaf-01"))
}

func TestStoreElementSettingsUnknownReferences(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewElementService()

	_, err := service.StoreElementSettings(&ElementSettings{
		ElementID: uuid.NewString(),
		Name:      uniqueName("leaf"),
		GroupID:   uuid.NewString(),
		Role:      fixture.Role.Name,
	})
	assert.True(t, errs.IsNotFound(err))

	_, err = service.StoreElementSettings(&ElementSettings{
		ElementID: uuid.NewString(),
		Name:      uniqueName("leaf"),
		GroupID:   fixture.Group.GroupID,
		Role:      uniqueName("no-such-role"),
	})
	assert.True(t, errs.IsNotFound(err))
}

func TestStoreElementSettingsCreatesStubPlatform(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewElementService()

	platformID := uuid.NewString()
	platformName := uniqueName("unknown-platform")
	t.Cleanup(func() {
		db.GetDB().Where("platform_id = ?", platformID).Delete(&models.Platform{})
	})

	_, err := service.StoreElementSettings(&ElementSettings{
		ElementID:    uuid.NewString(),
		Name:         uniqueName("leaf"),
		GroupID:      fixture.Group.GroupID,
		Role:         fixture.Role.Name,
		PlatformID:   platformID,
		PlatformName: platformName,
		Chipset:      "TH3",
		UnitHeight:   2,
	})
	require.NoError(t, err)

	var platform models.Platform
	require.NoError(t, db.GetDB().Where("platform_id = ?", platformID).First(&platform).Error)
	assert.True(t, platform.Stub)
	assert.Equal(t, platformName, platform.Name)
	assert.Equal(t, "TH3", platform.Chipset)
	assert.Equal(t, 2, platform.UnitHeight)
}

func TestRemoveElementBlockedByPlacement(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewElementService()
	rackService := NewRackService()

	element := seedElement(t, fixture, nil)
	rack := seedRack(t, fixture, 42)
	require.NoError(t, rackService.PlaceElement(rack.RackID, element.ElementID, 3, ""))

	err := service.RemoveElement(element.ElementID)
	assert.True(t, errs.IsConflict(err))

	// force removal cascades the placement
	require.NoError(t, service.ForceRemoveElement(element.ElementID))

	var count int64
	db.GetDB().Model(&models.RackPlacement{}).Where("element_id = ?", element.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	err = service.RemoveElement(element.ElementID)
	assert.True(t, errs.IsNotFound(err))
}

func TestRecordHeartbeatMarksUp(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewElementService()

	element := seedElement(t, fixture, nil)
	assert.Equal(t, models.OperStateUnknown, element.OperState)

	require.NoError(t, service.RecordHeartbeat(element.ElementID))

	var refreshed models.Element
	require.NoError(t, db.GetDB().Where("element_id = ?", element.ElementID).First(&refreshed).Error)
	assert.Equal(t, models.OperStateUp, refreshed.OperState)
	assert.Greater(t, refreshed.Version, element.Version)
}
