package services

import (
	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/pkg/errs"

	"gorm.io/gorm"
)

// TopologyService manages facilities, element groups and racks. Removal
// requires zero dependent children unless forced, in which case the
// children are cascaded.
type TopologyService struct{}

// NewTopologyService creates a new topology service
func NewTopologyService() *TopologyService {
	return &TopologyService{}
}

// RemoveFacility deletes a facility with no dependent groups or racks
func (ts *TopologyService) RemoveFacility(facilityID string, force bool) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		facility, err := providers.GetFacility(tx, facilityID)
		if err != nil {
			return err
		}

		var groups, racks int64
		if err := tx.Model(&models.ElementGroup{}).Where("facility_id = ?", facility.ID).Count(&groups).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Rack{}).Where("facility_id = ?", facility.ID).Count(&racks).Error; err != nil {
			return err
		}

		if groups+racks > 0 {
			if !force {
				return errs.Conflict("facility %s still has %d group(s) and %d rack(s)",
					facility.Name, groups, racks)
			}
			// forced: detach references, the children keep existing
			if err := tx.Model(&models.ElementGroup{}).Where("facility_id = ?", facility.ID).
				Update("facility_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Rack{}).Where("facility_id = ?", facility.ID).
				Update("facility_id", nil).Error; err != nil {
				return err
			}
		}

		return tx.Delete(facility).Error
	})
}

// RemoveGroup deletes an element group with no elements or racks; forced
// removal cascades racks (and their placements) and fails only when
// elements remain, since elements cannot exist without a group.
func (ts *TopologyService) RemoveGroup(groupID string, force bool) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		group, err := providers.GetGroup(tx, groupID)
		if err != nil {
			return err
		}

		var elements int64
		if err := tx.Model(&models.Element{}).Where("group_id = ?", group.ID).Count(&elements).Error; err != nil {
			return err
		}
		if elements > 0 {
			return errs.Conflict("group %s still has %d element(s)", group.Name, elements)
		}

		var racks []models.Rack
		if err := tx.Where("group_id = ?", group.ID).Find(&racks).Error; err != nil {
			return err
		}
		if len(racks) > 0 && !force {
			return errs.Conflict("group %s still has %d rack(s)", group.Name, len(racks))
		}
		for i := range racks {
			if err := ts.removeRack(tx, &racks[i], force); err != nil {
				return err
			}
		}

		return tx.Delete(group).Error
	})
}

// RemoveRack deletes a rack; forced removal cascades its placements
func (ts *TopologyService) RemoveRack(rackID string, force bool) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		rack, err := providers.GetRack(tx, rackID)
		if err != nil {
			return err
		}
		return ts.removeRack(tx, rack, force)
	})
}

func (ts *TopologyService) removeRack(tx *gorm.DB, rack *models.Rack, force bool) error {
	var placements int64
	if err := tx.Model(&models.RackPlacement{}).Where("rack_id = ?", rack.ID).Count(&placements).Error; err != nil {
		return err
	}
	if placements > 0 {
		if !force {
			return errs.Conflict("rack %s still has %d placement(s)", rack.Name, placements)
		}
		if err := tx.Where("rack_id = ?", rack.ID).Delete(&models.RackPlacement{}).Error; err != nil {
			return err
		}
	}
	return tx.Delete(rack).Error
}
