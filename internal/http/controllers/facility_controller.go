package controllers

import (
	"net/http"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/internal/services"

	"github.com/gin-gonic/gin"
)

// FacilityController handles facility HTTP requests
type FacilityController struct {
	topology *services.TopologyService
}

// NewFacilityController creates a new facility controller
func NewFacilityController(topology *services.TopologyService) *FacilityController {
	return &FacilityController{topology: topology}
}

// GetFacilities returns all facilities
func (fc *FacilityController) GetFacilities(c *gin.Context) {
	var facilities []models.Facility
	if err := db.GetDB().Find(&facilities).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Facilities retrieved successfully", facilities, len(facilities))
}

// GetFacility returns a single facility by its opaque id
func (fc *FacilityController) GetFacility(c *gin.Context) {
	facility, err := providers.GetFacility(db.GetDB(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Facility retrieved successfully", facility, 0)
}

// CreateFacility registers a new facility
func (fc *FacilityController) CreateFacility(c *gin.Context) {
	var facility models.Facility
	if err := c.ShouldBindJSON(&facility); err != nil {
		respondBadRequest(c, "Invalid facility payload: "+err.Error())
		return
	}

	if err := db.GetDB().Create(&facility).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Facility created successfully", facility, 0)
}

// UpdateFacility updates a facility with an optimistic version check
func (fc *FacilityController) UpdateFacility(c *gin.Context) {
	facility, err := providers.GetFacility(db.GetDB(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req struct {
		Name        string              `json:"name"`
		Type        models.FacilityType `json:"type"`
		Category    string              `json:"category"`
		Geolocation *models.Geolocation `json:"geolocation"`
		Description string              `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid facility payload: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Geolocation != nil {
		updates["geo_longitude"] = req.Geolocation.Longitude
		updates["geo_latitude"] = req.Geolocation.Latitude
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	if err := db.OptimisticUpdate(db.GetDB(), &models.Facility{}, facility.ID, facility.Version, updates); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Facility updated successfully", nil, 0)
}

// DeleteFacility removes a facility; ?force=true detaches children
func (fc *FacilityController) DeleteFacility(c *gin.Context) {
	if err := fc.topology.RemoveFacility(c.Param("id"), c.Query("force") == "true"); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Facility removed successfully", nil, 0)
}
