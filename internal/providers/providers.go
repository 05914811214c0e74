// Package providers implements read-only lookups for every aggregate.
// Each aggregate exposes a Find pair (absence is not an error) and a Get
// pair (absence is errs.ErrNotFound). This is the single point where a
// missing record becomes a typed error; callers pick the contract they
// need instead of re-checking gorm.ErrRecordNotFound at every site.
package providers

import (
	"errors"

	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/pkg/errs"

	"gorm.io/gorm"
)

// find runs the query and maps record-not-found to (false, nil)
func find(tx *gorm.DB, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := tx.Where(query, args...).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FindFacility looks up a facility by its opaque id
func FindFacility(tx *gorm.DB, facilityID string) (*models.Facility, bool, error) {
	var facility models.Facility
	ok, err := find(tx, &facility, "facility_id = ?", facilityID)
	if !ok || err != nil {
		return nil, false, err
	}
	return &facility, true, nil
}

// GetFacility looks up a facility by its opaque id, failing when absent
func GetFacility(tx *gorm.DB, facilityID string) (*models.Facility, error) {
	facility, ok, err := FindFacility(tx, facilityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("facility", facilityID)
	}
	return facility, nil
}

// FindFacilityByName looks up a facility by its unique name
func FindFacilityByName(tx *gorm.DB, name string) (*models.Facility, bool, error) {
	var facility models.Facility
	ok, err := find(tx, &facility, "name = ?", name)
	if !ok || err != nil {
		return nil, false, err
	}
	return &facility, true, nil
}

// GetFacilityByName looks up a facility by name, failing when absent
func GetFacilityByName(tx *gorm.DB, name string) (*models.Facility, error) {
	facility, ok, err := FindFacilityByName(tx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("facility", name)
	}
	return facility, nil
}

// FindGroup looks up an element group by its opaque id
func FindGroup(tx *gorm.DB, groupID string) (*models.ElementGroup, bool, error) {
	var group models.ElementGroup
	ok, err := find(tx, &group, "group_id = ?", groupID)
	if !ok || err != nil {
		return nil, false, err
	}
	return &group, true, nil
}

// GetGroup looks up an element group by its opaque id, failing when absent
func GetGroup(tx *gorm.DB, groupID string) (*models.ElementGroup, error) {
	group, ok, err := FindGroup(tx, groupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("element group", groupID)
	}
	return group, nil
}

// FindGroupByName looks up an element group by (name, type)
func FindGroupByName(tx *gorm.DB, name string, groupType models.GroupType) (*models.ElementGroup, bool, error) {
	var group models.ElementGroup
	ok, err := find(tx, &group, "name = ? AND type = ?", name, groupType)
	if !ok || err != nil {
		return nil, false, err
	}
	return &group, true, nil
}

// GetGroupByName looks up an element group by (name, type), failing when absent
func GetGroupByName(tx *gorm.DB, name string, groupType models.GroupType) (*models.ElementGroup, error) {
	group, ok, err := FindGroupByName(tx, name, groupType)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("element group", name)
	}
	return group, nil
}

// FindRole looks up an element role by its opaque id
func FindRole(tx *gorm.DB, roleID string) (*models.ElementRole, bool, error) {
	var role models.ElementRole
	ok, err := find(tx, &role, "role_id = ?", roleID)
	if !ok || err != nil {
		return nil, false, err
	}
	return &role, true, nil
}

// GetRole looks up an element role by its opaque id, failing when absent
func GetRole(tx *gorm.DB, roleID string) (*models.ElementRole, error) {
	role, ok, err := FindRole(tx, roleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("element role", roleID)
	}
	return role, nil
}

// FindRoleByName looks up an element role by its unique name
func FindRoleByName(tx *gorm.DB, name string) (*models.ElementRole, bool, error) {
	var role models.ElementRole
	ok, err := find(tx, &role, "name = ?", name)
	if !ok || err != nil {
		return nil, false, err
	}
	return &role, true, nil
}

// GetRoleByName looks up an element role by name, failing when absent
func GetRoleByName(tx *gorm.DB, name string) (*models.ElementRole, error) {
	role, ok, err := FindRoleByName(tx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("element role", name)
	}
	return role, nil
}

// FindPlatform looks up a platform by its opaque id
func FindPlatform(tx *gorm.DB, platformID string) (*models.Platform, bool, error) {
	var platform models.Platform
	ok, err := find(tx, &platform, "platform_id = ?", platformID)
	if !ok || err != nil {
		return nil, false, err
	}
	return &platform, true, nil
}

// GetPlatform looks up a platform by its opaque id, failing when absent
func GetPlatform(tx *gorm.DB, platformID string) (*models.Platform, error) {
	platform, ok, err := FindPlatform(tx, platformID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("platform", platformID)
	}
	return platform, nil
}

// FindPlatformByName looks up a platform by its unique name
func FindPlatformByName(tx *gorm.DB, name string) (*models.Platform, bool, error) {
	var platform models.Platform
	ok, err := find(tx, &platform, "name = ?", name)
	if !ok || err != nil {
		return nil, false, err
	}
	return &platform, true, nil
}

// GetPlatformByName looks up a platform by name, failing when absent
func GetPlatformByName(tx *gorm.DB, name string) (*models.Platform, error) {
	platform, ok, err := FindPlatformByName(tx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("platform", name)
	}
	return platform, nil
}

// FindElement looks up an element by its opaque id
func FindElement(tx *gorm.DB, elementID string) (*models.Element, bool, error) {
	var element models.Element
	ok, err := find(tx, &element, "element_id = ?", elementID)
	if !ok || err != nil {
		return nil, false, err
	}
	return &element, true, nil
}

// GetElement looks up an element by its opaque id, failing when absent
func GetElement(tx *gorm.DB, elementID string) (*models.Element, error) {
	element, ok, err := FindElement(tx, elementID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("element", elementID)
	}
	return element, nil
}

// FindElementByName looks up an element by its unique name
func FindElementByName(tx *gorm.DB, name string) (*models.Element, bool, error) {
	var element models.Element
	ok, err := find(tx, &element, "name = ?", name)
	if !ok || err != nil {
		return nil, false, err
	}
	return &element, true, nil
}

// GetElementByName looks up an element by name, failing when absent
func GetElementByName(tx *gorm.DB, name string) (*models.Element, error) {
	element, ok, err := FindElementByName(tx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("element", name)
	}
	return element, nil
}

// FindRack looks up a rack by its opaque id
func FindRack(tx *gorm.DB, rackID string) (*models.Rack, bool, error) {
	var rack models.Rack
	ok, err := find(tx, &rack, "rack_id = ?", rackID)
	if !ok || err != nil {
		return nil, false, err
	}
	return &rack, true, nil
}

// GetRack looks up a rack by its opaque id, failing when absent
func GetRack(tx *gorm.DB, rackID string) (*models.Rack, error) {
	rack, ok, err := FindRack(tx, rackID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("rack", rackID)
	}
	return rack, nil
}

// FindRackByName looks up a rack by name within a group
func FindRackByName(tx *gorm.DB, groupID uint, name string) (*models.Rack, bool, error) {
	var rack models.Rack
	ok, err := find(tx, &rack, "group_id = ? AND name = ?", groupID, name)
	if !ok || err != nil {
		return nil, false, err
	}
	return &rack, true, nil
}

// GetRackByName looks up a rack by name within a group, failing when absent
func GetRackByName(tx *gorm.DB, groupID uint, name string) (*models.Rack, error) {
	rack, ok, err := FindRackByName(tx, groupID, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("rack", name)
	}
	return rack, nil
}

// FindImage looks up an image by its external image id
func FindImage(tx *gorm.DB, imageID string) (*models.Image, bool, error) {
	var image models.Image
	ok, err := find(tx, &image, "image_id = ?", imageID)
	if !ok || err != nil {
		return nil, false, err
	}
	return &image, true, nil
}

// GetImage looks up an image by its external image id, failing when absent
func GetImage(tx *gorm.DB, imageID string) (*models.Image, error) {
	image, ok, err := FindImage(tx, imageID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("image", imageID)
	}
	return image, nil
}

// FindImageByName looks up an image by its unique name
func FindImageByName(tx *gorm.DB, name string) (*models.Image, bool, error) {
	var image models.Image
	ok, err := find(tx, &image, "name = ?", name)
	if !ok || err != nil {
		return nil, false, err
	}
	return &image, true, nil
}

// GetImageByName looks up an image by name, failing when absent
func GetImageByName(tx *gorm.DB, name string) (*models.Image, error) {
	image, ok, err := FindImageByName(tx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("image", name)
	}
	return image, nil
}
