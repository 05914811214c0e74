package models

// AdministrativeState represents the configured state of an element
type AdministrativeState string

const (
	AdminStateUp   AdministrativeState = "UP"
	AdminStateDown AdministrativeState = "DOWN"
)

// OperationalState represents the observed state of an element
type OperationalState string

const (
	OperStateUp       OperationalState = "UP"
	OperStateDown     OperationalState = "DOWN"
	OperStateDetached OperationalState = "DETACHED"
	OperStateUnknown  OperationalState = "UNKNOWN"
)

// HalfRackPosition qualifies which half of a rack unit a half-rack
// element occupies
type HalfRackPosition string

const (
	HalfRackLeft  HalfRackPosition = "LEFT"
	HalfRackRight HalfRackPosition = "RIGHT"
)

// Plane classifies the network plane an element role serves
type Plane string

const (
	PlaneData       Plane = "DATA"
	PlaneControl    Plane = "CONTROL"
	PlaneManagement Plane = "MANAGEMENT"
)

// ImageType classifies installable images
type ImageType string

const (
	ImageTypeFirmware ImageType = "FIRMWARE"
	ImageTypeOS       ImageType = "OS"
	ImageTypePatch    ImageType = "PATCH"
)
