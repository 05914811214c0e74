package services

import (
	"errors"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/pkg/errs"

	"gorm.io/gorm"
)

// RackService manages the physical placement of elements into racks.
// Placement validity (unit range, span overlap, half-rack sides) is
// checked against the rack's current contents inside one transaction.
type RackService struct{}

// NewRackService creates a new rack placement service
func NewRackService() *RackService {
	return &RackService{}
}

// Placement describes where an element sits
type Placement struct {
	Rack         *models.Rack            `json:"rack"`
	Unit         int                     `json:"unit"`
	HalfPosition models.HalfRackPosition `json:"half_position,omitempty"`
}

// placementSpan returns the inclusive unit range occupied by an element
// of the given platform height placed at unit
func placementSpan(unit, height int) (int, int) {
	if height <= 0 {
		height = 1
	}
	return unit, unit + height - 1
}

// spansOverlap reports whether two inclusive unit ranges intersect
func spansOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart <= bEnd && bStart <= aEnd
}

// platformHeight returns the rack unit height for an element, 1 when it
// has no platform
func platformHeight(platform *models.Platform) int {
	if platform == nil || platform.UnitHeight <= 0 {
		return 1
	}
	return platform.UnitHeight
}

// halfRackConflict decides whether two half-rack placements at
// overlapping spans actually collide. Two half-rack elements may share a
// unit as long as they claim different sides.
func halfRackConflict(unit int, half models.HalfRackPosition, otherUnit int, otherHalf models.HalfRackPosition) bool {
	if half == "" || otherHalf == "" {
		return true
	}
	if unit != otherUnit {
		return true
	}
	return half == otherHalf
}

// PlaceElement puts an element into a rack at a unit position. An
// element already placed elsewhere is moved. Placement fails with a
// conflict when the unit span is out of range or collides with another
// placement.
func (rs *RackService) PlaceElement(rackID, elementID string, unit int, half models.HalfRackPosition) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		rack, err := providers.GetRack(tx, rackID)
		if err != nil {
			return err
		}
		element, err := providers.GetElement(tx, elementID)
		if err != nil {
			return err
		}

		var platform *models.Platform
		if element.PlatformID != nil {
			platform = &models.Platform{}
			if err := tx.First(platform, *element.PlatformID).Error; err != nil {
				return err
			}
		}

		halfRack := platform != nil && platform.IsHalfRackSize()
		if halfRack && half == "" {
			return errs.Conflict("element %s is half-rack sized and needs a half-rack position", element.Name)
		}
		if !halfRack {
			half = ""
		}

		height := platformHeight(platform)
		start, end := placementSpan(unit, height)
		if unit < 1 || end > rack.Units {
			return errs.Conflict("units %d-%d outside rack %s range 1-%d", start, end, rack.Name, rack.Units)
		}

		var others []models.RackPlacement
		if err := tx.Preload("Element.Platform").
			Where("rack_id = ? AND element_id <> ?", rack.ID, element.ID).
			Find(&others).Error; err != nil {
			return err
		}

		for i := range others {
			other := &others[i]
			otherStart, otherEnd := other.Span(platformHeight(other.Element.Platform))
			if !spansOverlap(start, end, otherStart, otherEnd) {
				continue
			}
			if halfRack && other.HalfPosition != "" {
				if !halfRackConflict(unit, half, other.Unit, other.HalfPosition) {
					continue
				}
			}
			return errs.Conflict("units %d-%d in rack %s already occupied by element %d",
				otherStart, otherEnd, rack.Name, other.ElementID)
		}

		// one slot per element: move an existing placement instead of
		// inserting a second one
		var existing models.RackPlacement
		err = tx.Where("element_id = ?", element.ID).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			return tx.Model(&existing).Updates(map[string]interface{}{
				"rack_id":       rack.ID,
				"unit":          unit,
				"half_position": half,
			}).Error
		}

		placement := &models.RackPlacement{
			RackID:       rack.ID,
			ElementID:    element.ID,
			Unit:         unit,
			HalfPosition: half,
		}
		return tx.Create(placement).Error
	})
}

// RemovePlacement deletes the placement of an element in a rack; absent
// placements are a no-op.
func (rs *RackService) RemovePlacement(rackID, elementID string) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		rack, err := providers.GetRack(tx, rackID)
		if err != nil {
			return err
		}
		element, err := providers.GetElement(tx, elementID)
		if err != nil {
			return err
		}
		return tx.Where("rack_id = ? AND element_id = ?", rack.ID, element.ID).
			Delete(&models.RackPlacement{}).Error
	})
}

// FindPlacement returns where an element currently sits, if anywhere.
// An element occupies at most one slot at any time.
func (rs *RackService) FindPlacement(elementID string) (*Placement, bool, error) {
	tx := db.GetDB()

	element, err := providers.GetElement(tx, elementID)
	if err != nil {
		return nil, false, err
	}

	var placement models.RackPlacement
	err = tx.Preload("Rack").Where("element_id = ?", element.ID).First(&placement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return &Placement{
		Rack:         &placement.Rack,
		Unit:         placement.Unit,
		HalfPosition: placement.HalfPosition,
	}, true, nil
}

// ListPlacements returns the contents of a rack ordered bottom-up by
// unit, left before right within a shared unit.
func (rs *RackService) ListPlacements(rackID string) (*models.Rack, []models.RackPlacement, error) {
	tx := db.GetDB()

	rack, err := providers.GetRack(tx, rackID)
	if err != nil {
		return nil, nil, err
	}

	var placements []models.RackPlacement
	if err := tx.Preload("Element.Platform").
		Where("rack_id = ?", rack.ID).
		Order("unit asc, half_position asc").
		Find(&placements).Error; err != nil {
		return nil, nil, err
	}
	return rack, placements, nil
}
