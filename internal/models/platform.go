package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Platform represents a hardware platform descriptor. Elements reference
// a platform; the platform decides rack unit height and half-rack
// eligibility.
type Platform struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	PlatformID string    `json:"platform_id" gorm:"uniqueIndex;not null;size:36"`
	Name       string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required"`
	Chipset    string    `json:"chipset" gorm:"size:50"`
	UnitHeight int       `json:"unit_height" gorm:"not null;default:1"`
	HalfRack   bool      `json:"half_rack" gorm:"default:false"`
	Stub       bool      `json:"stub" gorm:"default:false"`
	Version    uint      `json:"version" gorm:"not null;default:1"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for Platform model
func (Platform) TableName() string {
	return "platforms"
}

// BeforeCreate hook to assign the opaque identifier and default height
func (p *Platform) BeforeCreate(tx *gorm.DB) error {
	if p.PlatformID == "" {
		p.PlatformID = uuid.NewString()
	}
	if p.UnitHeight <= 0 {
		p.UnitHeight = 1
	}
	return nil
}

// IsHalfRackSize reports whether elements on this platform occupy half
// a rack unit width
func (p *Platform) IsHalfRackSize() bool {
	return p.HalfRack
}
