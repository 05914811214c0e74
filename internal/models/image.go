package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/google/uuid"
)

// Checksum identifies image contents by digest
type Checksum struct {
	Algorithm string `json:"algorithm" gorm:"size:20"`
	Digest    string `json:"digest" gorm:"size:128"`
}

// Image represents an installable software image. Stub images are
// placeholder records created automatically the first time an element
// reports an image unknown to the inventory.
type Image struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	ImageID       string    `json:"image_id" gorm:"uniqueIndex;not null;size:64"`
	Name          string    `json:"name" gorm:"uniqueIndex;not null;size:150" validate:"required"`
	Type          ImageType `json:"type" gorm:"type:varchar(20);not null"`
	Version       string    `json:"version" gorm:"size:50"`
	Chipset       string    `json:"chipset" gorm:"size:50"`
	ApplicableTo  string    `json:"applicable_to" gorm:"size:255"` // comma-joined role names
	Checksum      Checksum  `json:"checksum" gorm:"embedded;embeddedPrefix:checksum_"`
	Stub          bool      `json:"stub" gorm:"default:false"`
	EntityVersion uint      `json:"entity_version" gorm:"not null;default:1"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for Image model
func (Image) TableName() string {
	return "images"
}

// BeforeCreate hook to assign the external identifier when the report
// did not carry one
func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ImageID == "" {
		i.ImageID = uuid.NewString()
	}
	return nil
}
