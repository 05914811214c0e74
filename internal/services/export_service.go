package services

import (
	"time"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/pkg/colors"

	"gorm.io/gorm"
)

// ExportService serializes rack contents to snapshot documents for
// backup and migration, and re-applies them through the rack placement
// service on import.
type ExportService struct {
	racks *RackService
}

// NewExportService creates a new export service
func NewExportService(racks *RackService) *ExportService {
	return &ExportService{racks: racks}
}

// RackSnapshotItem is one placement inside a rack snapshot, in document
// order
type RackSnapshotItem struct {
	Position     int                     `json:"position"`
	Element      string                  `json:"element"`
	ElementID    string                  `json:"element_id"`
	HalfRack     bool                    `json:"half_rack"`
	HalfPosition models.HalfRackPosition `json:"half_position,omitempty"`
}

// RackSnapshot captures one rack's settings and ordered contents
type RackSnapshot struct {
	Name        string             `json:"name"`
	Group       string             `json:"group"`
	GroupType   models.GroupType   `json:"group_type"`
	Location    string             `json:"location,omitempty"`
	Description string             `json:"description,omitempty"`
	Units       int                `json:"units"`
	Items       []RackSnapshotItem `json:"items"`
}

// InventorySnapshot is a whole-inventory rack export
type InventorySnapshot struct {
	ExportedAt time.Time      `json:"exported_at"`
	Racks      []RackSnapshot `json:"racks"`
}

// ExportRack serializes one rack, items ordered bottom-up
func (ex *ExportService) ExportRack(rackID string) (*RackSnapshot, error) {
	rack, placements, err := ex.racks.ListPlacements(rackID)
	if err != nil {
		return nil, err
	}

	var group models.ElementGroup
	if err := db.GetDB().First(&group, rack.GroupID).Error; err != nil {
		return nil, err
	}

	snapshot := &RackSnapshot{
		Name:        rack.Name,
		Group:       group.Name,
		GroupType:   group.Type,
		Location:    rack.Location,
		Description: rack.Description,
		Units:       rack.Units,
		Items:       make([]RackSnapshotItem, 0, len(placements)),
	}
	for i := range placements {
		p := &placements[i]
		halfRack := p.Element.Platform != nil && p.Element.Platform.IsHalfRackSize()
		snapshot.Items = append(snapshot.Items, RackSnapshotItem{
			Position:     p.Unit,
			Element:      p.Element.Name,
			ElementID:    p.Element.ElementID,
			HalfRack:     halfRack,
			HalfPosition: p.HalfPosition,
		})
	}
	return snapshot, nil
}

// ExportAll serializes every rack in the inventory
func (ex *ExportService) ExportAll() (*InventorySnapshot, error) {
	var racks []models.Rack
	if err := db.GetDB().Order("id asc").Find(&racks).Error; err != nil {
		return nil, err
	}

	snapshot := &InventorySnapshot{
		ExportedAt: time.Now(),
		Racks:      make([]RackSnapshot, 0, len(racks)),
	}
	for i := range racks {
		rackSnapshot, err := ex.ExportRack(racks[i].RackID)
		if err != nil {
			return nil, err
		}
		snapshot.Racks = append(snapshot.Racks, *rackSnapshot)
	}
	return snapshot, nil
}

// ImportSnapshot re-applies a snapshot: racks are upserted by
// (group, name), then each item is placed in document order through the
// placement rules. Elements referenced by the snapshot must exist.
func (ex *ExportService) ImportSnapshot(snapshot *InventorySnapshot) error {
	for i := range snapshot.Racks {
		if err := ex.importRack(&snapshot.Racks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (ex *ExportService) importRack(snapshot *RackSnapshot) error {
	database := db.GetDB()

	group, err := providers.GetGroupByName(database, snapshot.Group, snapshot.GroupType)
	if err != nil {
		return err
	}

	rack, ok, err := providers.FindRackByName(database, group.ID, snapshot.Name)
	if err != nil {
		return err
	}
	if !ok {
		rack = &models.Rack{
			Name:        snapshot.Name,
			GroupID:     group.ID,
			FacilityID:  group.FacilityID,
			Location:    snapshot.Location,
			Description: snapshot.Description,
			Units:       snapshot.Units,
		}
		if err := database.Create(rack).Error; err != nil {
			return err
		}
		colors.PrintInfo("Created rack %s in group %s from snapshot", rack.Name, group.Name)
	} else if rack.Units != snapshot.Units || rack.Location != snapshot.Location {
		if err := database.Model(rack).Updates(map[string]interface{}{
			"units":    snapshot.Units,
			"location": snapshot.Location,
			"version":  gorm.Expr("version + 1"),
		}).Error; err != nil {
			return err
		}
	}

	for _, item := range snapshot.Items {
		element, err := providers.GetElementByName(database, item.Element)
		if err != nil {
			return err
		}
		if err := ex.racks.PlaceElement(rack.RackID, element.ElementID, item.Position, item.HalfPosition); err != nil {
			return err
		}
	}
	return nil
}
