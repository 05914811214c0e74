package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupType represents the element group type enum
type GroupType string

const (
	GroupTypePod  GroupType = "pod"
	GroupTypeSite GroupType = "site"
	GroupTypeZone GroupType = "zone"
)

// ElementGroup represents a logical grouping of elements and racks,
// e.g. a POD or a site group. Name and type are unique as a pair.
type ElementGroup struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	GroupID     string    `json:"group_id" gorm:"uniqueIndex;not null;size:36"`
	Name        string    `json:"name" gorm:"uniqueIndex:idx_group_name_type;not null;size:100" validate:"required"`
	Type        GroupType `json:"type" gorm:"uniqueIndex:idx_group_name_type;type:varchar(20);not null" validate:"required,oneof=pod site zone"`
	Description string    `json:"description" gorm:"type:text"`
	FacilityID  *uint     `json:"facility_ref" gorm:"index"`
	Version     uint      `json:"version" gorm:"not null;default:1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Facility *Facility `json:"facility,omitempty" gorm:"foreignKey:FacilityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for ElementGroup model
func (ElementGroup) TableName() string {
	return "element_groups"
}

// BeforeCreate hook to assign the opaque identifier
func (g *ElementGroup) BeforeCreate(tx *gorm.DB) error {
	if g.GroupID == "" {
		g.GroupID = uuid.NewString()
	}
	return nil
}
