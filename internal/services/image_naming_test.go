package services

import (
	"testing"

	"atlas_inventory_server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDeriveImageName(t *testing.T) {
	name := DeriveImageName("%s_%s_%s_%s", "leaf", "BCM", models.ImageTypeFirmware, "1.2")
	assert.Equal(t, "leaf_BCM_FIRMWARE_1.2", name)
}

func TestDeriveImageNameCustomFormat(t *testing.T) {
	// the join format follows the reporting convention and stays
	// configurable
	name := DeriveImageName("%s-%s-%s-%s", "spine", "TH3", models.ImageTypeOS, "4.0.1")
	assert.Equal(t, "spine-TH3-OS-4.0.1", name)
}
