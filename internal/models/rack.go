package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rack represents a physical rack belonging to exactly one element group.
// Rack names are unique within their group.
type Rack struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	RackID      string    `json:"rack_id" gorm:"uniqueIndex;not null;size:36"`
	Name        string    `json:"name" gorm:"uniqueIndex:idx_rack_group_name;not null;size:100" validate:"required"`
	GroupID     uint      `json:"group_ref" gorm:"uniqueIndex:idx_rack_group_name;not null;index"`
	FacilityID  *uint     `json:"facility_ref" gorm:"index"`
	Location    string    `json:"location" gorm:"size:100"`
	Description string    `json:"description" gorm:"type:text"`
	Units       int       `json:"units" gorm:"not null;default:42" validate:"required,min=1"`
	Version     uint      `json:"version" gorm:"not null;default:1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Group    ElementGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Facility *Facility    `json:"facility,omitempty" gorm:"foreignKey:FacilityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for Rack model
func (Rack) TableName() string {
	return "racks"
}

// BeforeCreate hook to assign the opaque identifier and default units
func (r *Rack) BeforeCreate(tx *gorm.DB) error {
	if r.RackID == "" {
		r.RackID = uuid.NewString()
	}
	if r.Units <= 0 {
		r.Units = 42
	}
	return nil
}
