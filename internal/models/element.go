package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Element represents a managed network device instance, the central
// entity of the inventory. Name and ElementID are each globally unique.
// LastModified is the heartbeat timestamp the watchdog evaluates.
type Element struct {
	ID           uint                `json:"id" gorm:"primarykey"`
	ElementID    string              `json:"element_id" gorm:"uniqueIndex;not null;size:36"`
	Name         string              `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required"`
	Alias        string              `json:"alias" gorm:"size:100"`
	AdminState   AdministrativeState `json:"admin_state" gorm:"type:varchar(10);not null;default:'DOWN'"`
	OperState    OperationalState    `json:"oper_state" gorm:"type:varchar(10);not null;default:'UNKNOWN';index"`
	RoleID       uint                `json:"role_ref" gorm:"not null;index"`
	GroupID      uint                `json:"group_ref" gorm:"not null;index"`
	PlatformID   *uint               `json:"platform_ref" gorm:"index"`
	LastModified time.Time           `json:"last_modified" gorm:"index"`
	Version      uint                `json:"version" gorm:"not null;default:1"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`

	Role     ElementRole  `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Group    ElementGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Platform *Platform    `json:"platform,omitempty" gorm:"foreignKey:PlatformID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName specifies the table name for Element model
func (Element) TableName() string {
	return "elements"
}

// BeforeCreate hook to assign the opaque identifier and heartbeat time
func (e *Element) BeforeCreate(tx *gorm.DB) error {
	if e.ElementID == "" {
		e.ElementID = uuid.NewString()
	}
	if e.LastModified.IsZero() {
		e.LastModified = time.Now()
	}
	return nil
}

// InstalledImage records an image reported installed on an element
type InstalledImage struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ElementID uint      `json:"element_ref" gorm:"uniqueIndex:idx_installed_element_image;not null;index"`
	ImageID   uint      `json:"image_ref" gorm:"uniqueIndex:idx_installed_element_image;not null;index"`
	Active    bool      `json:"active" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Element Element `json:"element,omitempty" gorm:"foreignKey:ElementID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Image   Image   `json:"image,omitempty" gorm:"foreignKey:ImageID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for InstalledImage model
func (InstalledImage) TableName() string {
	return "installed_images"
}

// ElementModule records a hardware module seated in an element
type ElementModule struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ElementID uint      `json:"element_ref" gorm:"not null;index"`
	Slot      int       `json:"slot" gorm:"not null"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Serial    string    `json:"serial" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Element Element `json:"element,omitempty" gorm:"foreignKey:ElementID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for ElementModule model
func (ElementModule) TableName() string {
	return "element_modules"
}

// ServiceContext binds an element into a provisioned service
type ServiceContext struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ElementID   uint      `json:"element_ref" gorm:"not null;index"`
	ServiceName string    `json:"service_name" gorm:"size:100;not null"`
	Context     string    `json:"context" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Element Element `json:"element,omitempty" gorm:"foreignKey:ElementID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for ServiceContext model
func (ServiceContext) TableName() string {
	return "service_contexts"
}
