package services

import (
	"testing"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveRoleBlockedByElements(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewRoleService()

	seedElement(t, fixture, nil)

	err := service.RemoveRole(fixture.Role.RoleID)
	assert.True(t, errs.IsConflict(err))

	// the role survives the refused removal
	var count int64
	db.GetDB().Model(&models.ElementRole{}).Where("role_id = ?", fixture.Role.RoleID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRemoveRoleUnreferenced(t *testing.T) {
	setupTestDB(t)
	service := NewRoleService()

	role := &models.ElementRole{
		Name:        uniqueName("spare-role"),
		DisplayName: "Spare",
		Plane:       models.PlaneManagement,
	}
	require.NoError(t, db.GetDB().Create(role).Error)

	require.NoError(t, service.RemoveRole(role.RoleID))

	err := service.RemoveRole(role.RoleID)
	assert.True(t, errs.IsNotFound(err))
}

func TestForceRemoveRoleReassignsElements(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewRoleService()

	element := seedElement(t, fixture, nil)

	replacement := &models.ElementRole{
		Name:        uniqueName("replacement-role"),
		DisplayName: "Replacement",
		Plane:       models.PlaneData,
	}
	require.NoError(t, db.GetDB().Create(replacement).Error)
	t.Cleanup(func() { db.GetDB().Delete(replacement) })

	// the replacement must be a different role
	err := service.ForceRemoveRole(fixture.Role.RoleID, fixture.Role.Name)
	assert.True(t, errs.IsConflict(err))

	require.NoError(t, service.ForceRemoveRole(fixture.Role.RoleID, replacement.Name))

	var refreshed models.Element
	require.NoError(t, db.GetDB().Where("element_id = ?", element.ElementID).First(&refreshed).Error)
	assert.Equal(t, replacement.ID, refreshed.RoleID)
}
