package controllers

import (
	"net/http"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"

	"github.com/gin-gonic/gin"
)

// PlatformController handles platform HTTP requests
type PlatformController struct{}

// NewPlatformController creates a new platform controller
func NewPlatformController() *PlatformController {
	return &PlatformController{}
}

// GetPlatforms returns all platforms
func (pc *PlatformController) GetPlatforms(c *gin.Context) {
	var platforms []models.Platform
	if err := db.GetDB().Find(&platforms).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Platforms retrieved successfully", platforms, len(platforms))
}

// GetPlatform returns a single platform by its opaque id
func (pc *PlatformController) GetPlatform(c *gin.Context) {
	platform, err := providers.GetPlatform(db.GetDB(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Platform retrieved successfully", platform, 0)
}

// CreatePlatform registers a new platform
func (pc *PlatformController) CreatePlatform(c *gin.Context) {
	var platform models.Platform
	if err := c.ShouldBindJSON(&platform); err != nil {
		respondBadRequest(c, "Invalid platform payload: "+err.Error())
		return
	}

	if err := db.GetDB().Create(&platform).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Platform created successfully", platform, 0)
}

// UpdatePlatform updates a platform with an optimistic version check
func (pc *PlatformController) UpdatePlatform(c *gin.Context) {
	platform, err := providers.GetPlatform(db.GetDB(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req struct {
		Name       string `json:"name"`
		Chipset    string `json:"chipset"`
		UnitHeight int    `json:"unit_height"`
		HalfRack   *bool  `json:"half_rack"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid platform payload: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Chipset != "" {
		updates["chipset"] = req.Chipset
	}
	if req.UnitHeight > 0 {
		updates["unit_height"] = req.UnitHeight
	}
	if req.HalfRack != nil {
		updates["half_rack"] = *req.HalfRack
	}
	// a reconfigured platform is no longer a stub
	updates["stub"] = false

	if err := db.OptimisticUpdate(db.GetDB(), &models.Platform{}, platform.ID, platform.Version, updates); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Platform updated successfully", nil, 0)
}
