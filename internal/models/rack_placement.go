package models

import (
	"time"
)

// RackPlacement binds one element to one rack at one unit position.
// Composite identity is (rack, element); an element occupies at most one
// slot in the whole inventory, so ElementID is unique on its own too.
// HalfPosition is set only for elements on half-rack platforms.
type RackPlacement struct {
	ID           uint             `json:"id" gorm:"primarykey"`
	RackID       uint             `json:"rack_ref" gorm:"uniqueIndex:idx_placement_rack_element;not null;index"`
	ElementID    uint             `json:"element_ref" gorm:"uniqueIndex:idx_placement_rack_element;uniqueIndex:idx_placement_element;not null"`
	Unit         int              `json:"unit" gorm:"not null" validate:"required,min=1"`
	HalfPosition HalfRackPosition `json:"half_position,omitempty" gorm:"type:varchar(10)"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	Rack    Rack    `json:"rack,omitempty" gorm:"foreignKey:RackID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Element Element `json:"element,omitempty" gorm:"foreignKey:ElementID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for RackPlacement model
func (RackPlacement) TableName() string {
	return "rack_placements"
}

// Span returns the inclusive unit range this placement occupies given
// the platform height (1 when the element has no platform)
func (p *RackPlacement) Span(height int) (int, int) {
	if height <= 0 {
		height = 1
	}
	return p.Unit, p.Unit + height - 1
}
