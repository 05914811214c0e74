package services

import (
	"fmt"
	"testing"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanupImage(t *testing.T, imageID string) {
	t.Cleanup(func() {
		database := db.GetDB()
		var image models.Image
		if err := database.Where("image_id = ?", imageID).First(&image).Error; err == nil {
			database.Where("image_id = ?", image.ID).Delete(&models.InstalledImage{})
			database.Delete(&image)
		}
	})
}

func TestEnsureReportedImageCreatesStubOnce(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewImageService()

	platform := seedPlatform(t, 1, false)
	element := seedElement(t, fixture, platform)

	imageID := uuid.NewString()
	cleanupImage(t, imageID)
	report := &ImageReport{
		ImageID: imageID,
		Type:    models.ImageTypeFirmware,
		Version: "1.2",
	}

	image, err := service.EnsureReportedImage(element, report)
	require.NoError(t, err)
	assert.True(t, image.Stub)
	assert.Equal(t, fmt.Sprintf("%s_BCM_FIRMWARE_1.2", fixture.Role.Name), image.Name)
	assert.Equal(t, "BCM", image.Chipset)
	assert.Equal(t, fixture.Role.Name, image.ApplicableTo)

	// a second report of the same image resolves to the existing record
	again, err := service.EnsureReportedImage(element, report)
	require.NoError(t, err)
	assert.Equal(t, image.ID, again.ID)

	var count int64
	db.GetDB().Model(&models.Image{}).Where("image_id = ?", imageID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnsureReportedImageKeepsReportedName(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewImageService()

	element := seedElement(t, fixture, nil)

	imageID := uuid.NewString()
	cleanupImage(t, imageID)
	name := uniqueName("reported-image")

	image, err := service.EnsureReportedImage(element, &ImageReport{
		ImageID: imageID,
		Name:    name,
		Type:    models.ImageTypeOS,
		Version: "4.0.1",
	})
	require.NoError(t, err)
	assert.Equal(t, name, image.Name)
	assert.True(t, image.Stub)
}

func TestMarkInstalledUpserts(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	service := NewImageService()

	element := seedElement(t, fixture, nil)

	imageID := uuid.NewString()
	cleanupImage(t, imageID)
	image, err := service.EnsureReportedImage(element, &ImageReport{
		ImageID: imageID,
		Name:    uniqueName("installed-image"),
		Type:    models.ImageTypePatch,
		Version: "0.9",
	})
	require.NoError(t, err)

	require.NoError(t, service.MarkInstalled(element, image, false))
	require.NoError(t, service.MarkInstalled(element, image, true))
	require.NoError(t, service.MarkInstalled(element, image, true))

	var installed []models.InstalledImage
	require.NoError(t, db.GetDB().
		Where("element_id = ? AND image_id = ?", element.ID, image.ID).
		Find(&installed).Error)
	require.Len(t, installed, 1)
	assert.True(t, installed[0].Active)
}
