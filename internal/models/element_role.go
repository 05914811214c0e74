package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ElementRole represents the functional classification of an element,
// e.g. "leaf" or "spine". A role referenced by at least one element
// cannot be removed.
type ElementRole struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	RoleID      string    `json:"role_id" gorm:"uniqueIndex;not null;size:36"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null;size:50" validate:"required"`
	DisplayName string    `json:"display_name" gorm:"size:100"`
	Plane       Plane     `json:"plane" gorm:"type:varchar(20);not null;default:'DATA'"`
	Manageable  bool      `json:"manageable" gorm:"default:true"`
	Version     uint      `json:"version" gorm:"not null;default:1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for ElementRole model
func (ElementRole) TableName() string {
	return "element_roles"
}

// BeforeCreate hook to assign the opaque identifier
func (r *ElementRole) BeforeCreate(tx *gorm.DB) error {
	if r.RoleID == "" {
		r.RoleID = uuid.NewString()
	}
	return nil
}
