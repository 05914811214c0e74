package services

import (
	"fmt"
	"testing"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"

	"github.com/google/uuid"
)

// setupTestDB connects to the test database, skipping the test when no
// database is available
func setupTestDB(t *testing.T) {
	t.Helper()
	if err := db.Initialize(); err != nil {
		t.Skipf("Database not available for testing: %v", err)
	}
	t.Cleanup(func() { db.Close() })
}

// topologyFixture is a seeded group/role pair plus everything created
// under it during a test
type topologyFixture struct {
	Group *models.ElementGroup
	Role  *models.ElementRole
}

// uniqueName builds a collision-free name for fixture records
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

// seedTopology creates a group and a role for a test and removes them,
// with all dependent records, on cleanup
func seedTopology(t *testing.T) *topologyFixture {
	t.Helper()
	database := db.GetDB()

	group := &models.ElementGroup{
		Name: uniqueName("test-group"),
		Type: models.GroupTypePod,
	}
	if err := database.Create(group).Error; err != nil {
		t.Fatalf("Failed to seed group: %v", err)
	}

	role := &models.ElementRole{
		Name:        uniqueName("test-role"),
		DisplayName: "Test Role",
		Plane:       models.PlaneData,
	}
	if err := database.Create(role).Error; err != nil {
		t.Fatalf("Failed to seed role: %v", err)
	}

	t.Cleanup(func() {
		var elements []models.Element
		database.Where("group_id = ?", group.ID).Find(&elements)
		for i := range elements {
			database.Where("element_id = ?", elements[i].ID).Delete(&models.RackPlacement{})
			database.Where("element_id = ?", elements[i].ID).Delete(&models.InstalledImage{})
			database.Where("element_id = ?", elements[i].ID).Delete(&models.ElementModule{})
			database.Where("element_id = ?", elements[i].ID).Delete(&models.ServiceContext{})
		}
		database.Where("group_id = ?", group.ID).Delete(&models.Element{})
		database.Where("group_id = ?", group.ID).Delete(&models.Rack{})
		database.Delete(group)
		database.Delete(role)
	})

	return &topologyFixture{Group: group, Role: role}
}

// seedPlatform creates a platform for a test and removes it on cleanup
func seedPlatform(t *testing.T, height int, halfRack bool) *models.Platform {
	t.Helper()
	database := db.GetDB()

	platform := &models.Platform{
		Name:       uniqueName("test-platform"),
		Chipset:    "BCM",
		UnitHeight: height,
		HalfRack:   halfRack,
	}
	if err := database.Create(platform).Error; err != nil {
		t.Fatalf("Failed to seed platform: %v", err)
	}
	t.Cleanup(func() { database.Delete(platform) })
	return platform
}

// seedRack creates a rack inside the fixture group
func seedRack(t *testing.T, fixture *topologyFixture, units int) *models.Rack {
	t.Helper()
	database := db.GetDB()

	rack := &models.Rack{
		Name:    uniqueName("test-rack"),
		GroupID: fixture.Group.ID,
		Units:   units,
	}
	if err := database.Create(rack).Error; err != nil {
		t.Fatalf("Failed to seed rack: %v", err)
	}
	return rack
}

// seedElement stores settings for a new element through the lifecycle
// service and returns the created record
func seedElement(t *testing.T, fixture *topologyFixture, platform *models.Platform) *models.Element {
	t.Helper()

	settings := &ElementSettings{
		ElementID: uuid.NewString(),
		Name:      uniqueName("test-element"),
		GroupID:   fixture.Group.GroupID,
		Role:      fixture.Role.Name,
	}
	if platform != nil {
		settings.PlatformName = platform.Name
	}

	created, err := NewElementService().StoreElementSettings(settings)
	if err != nil {
		t.Fatalf("Failed to seed element: %v", err)
	}
	if !created {
		t.Fatalf("Expected element %s to be created", settings.Name)
	}

	var element models.Element
	if err := db.GetDB().Where("element_id = ?", settings.ElementID).First(&element).Error; err != nil {
		t.Fatalf("Failed to load seeded element: %v", err)
	}
	return &element
}
