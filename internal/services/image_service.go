package services

import (
	"errors"
	"fmt"

	"atlas_inventory_server/config"
	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/pkg/colors"
	"atlas_inventory_server/pkg/errs"

	"gorm.io/gorm"
)

// ImageService creates stub image records for images reported installed
// on elements before the inventory has heard of them.
type ImageService struct {
	nameFormat string
}

// NewImageService creates a new image service
func NewImageService() *ImageService {
	return &ImageService{
		nameFormat: config.GetImageNameFormat(),
	}
}

// ImageReport is an installed-image reference reported by an element
type ImageReport struct {
	ImageID string           `json:"image_id" binding:"required"`
	Name    string           `json:"name"`
	Type    models.ImageType `json:"type"`
	Version string           `json:"version"`
}

// DeriveImageName builds the deterministic stub name used when the
// report carries none, e.g. leaf_BCM_FIRMWARE_1.2
func DeriveImageName(format, role, chipset string, imageType models.ImageType, version string) string {
	return fmt.Sprintf(format, role, chipset, imageType, version)
}

// EnsureReportedImage returns the image the report refers to, creating a
// stub record when the image id is unknown. The stub is created in its
// own transaction, committed before this function returns, so the record
// is durably visible to the caller's enclosing flow; the returned image
// is re-fetched by name rather than the in-memory reference reused.
func (is *ImageService) EnsureReportedImage(element *models.Element, report *ImageReport) (*models.Image, error) {
	database := db.GetDB()

	image, ok, err := providers.FindImage(database, report.ImageID)
	if err != nil {
		return nil, err
	}
	if ok {
		return image, nil
	}

	var role models.ElementRole
	if err := database.First(&role, element.RoleID).Error; err != nil {
		return nil, err
	}
	chipset := ""
	if element.PlatformID != nil {
		var platform models.Platform
		if err := database.First(&platform, *element.PlatformID).Error; err != nil {
			return nil, err
		}
		chipset = platform.Chipset
	}

	name := report.Name
	if name == "" {
		name = DeriveImageName(is.nameFormat, role.Name, chipset, report.Type, report.Version)
	}

	// independent sub-transaction: commit the stub before resuming the
	// caller's flow
	err = database.Transaction(func(tx *gorm.DB) error {
		stub := &models.Image{
			ImageID:      report.ImageID,
			Name:         name,
			Type:         report.Type,
			Version:      report.Version,
			Chipset:      chipset,
			ApplicableTo: role.Name,
			Stub:         true,
		}
		return tx.Create(stub).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// two elements raced reporting the same new image; the
			// caller retries and finds the winner's record
			return nil, errs.Conflict("image %s created concurrently", report.ImageID)
		}
		return nil, err
	}

	colors.PrintInfo("Created stub image %s for unknown image id %s", name, report.ImageID)

	// resume with an attached, query-consistent instance
	return providers.GetImageByName(database, name)
}

// MarkInstalled records the image as installed on the element, upserting
// the join row.
func (is *ImageService) MarkInstalled(element *models.Element, image *models.Image, active bool) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		var installed models.InstalledImage
		err := tx.Where("element_id = ? AND image_id = ?", element.ID, image.ID).First(&installed).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&models.InstalledImage{
				ElementID: element.ID,
				ImageID:   image.ID,
				Active:    active,
			}).Error
		}
		if installed.Active != active {
			return tx.Model(&installed).Update("active", active).Error
		}
		return nil
	})
}
