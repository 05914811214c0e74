package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FacilityType represents the facility type enum
type FacilityType string

const (
	FacilityTypeDatacenter FacilityType = "datacenter"
	FacilityTypePop        FacilityType = "pop"
	FacilityTypeOffice     FacilityType = "office"
)

// Geolocation is the physical coordinates of a facility
type Geolocation struct {
	Longitude float64 `json:"longitude" gorm:"type:decimal(10,6)"`
	Latitude  float64 `json:"latitude" gorm:"type:decimal(10,6)"`
}

// Facility represents a physical site hosting element groups and racks
type Facility struct {
	ID          uint         `json:"id" gorm:"primarykey"`
	FacilityID  string       `json:"facility_id" gorm:"uniqueIndex;not null;size:36"`
	Name        string       `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required"`
	Type        FacilityType `json:"type" gorm:"type:varchar(20);not null" validate:"required,oneof=datacenter pop office"`
	Category    string       `json:"category" gorm:"size:50"`
	Geolocation Geolocation  `json:"geolocation" gorm:"embedded;embeddedPrefix:geo_"`
	Description string       `json:"description" gorm:"type:text"`
	Version     uint         `json:"version" gorm:"not null;default:1"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Groups and racks reference the facility by id, never the other
	// way around
}

// TableName specifies the table name for Facility model
func (Facility) TableName() string {
	return "facilities"
}

// BeforeCreate hook to assign the opaque identifier
func (f *Facility) BeforeCreate(tx *gorm.DB) error {
	if f.FacilityID == "" {
		f.FacilityID = uuid.NewString()
	}
	return nil
}
