package controllers

import (
	"net/http"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/internal/services"

	"github.com/gin-gonic/gin"
)

// RackController handles rack and rack placement HTTP requests
type RackController struct {
	racks    *services.RackService
	topology *services.TopologyService
}

// NewRackController creates a new rack controller
func NewRackController(racks *services.RackService, topology *services.TopologyService) *RackController {
	return &RackController{
		racks:    racks,
		topology: topology,
	}
}

// CreateRackRequest is the payload for registering a rack
type CreateRackRequest struct {
	Name        string `json:"name" binding:"required"`
	GroupID     string `json:"group_id" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Units       int    `json:"units"`
}

// GetRacks returns all racks
func (rc *RackController) GetRacks(c *gin.Context) {
	var racks []models.Rack
	if err := db.GetDB().Preload("Group").Preload("Facility").Find(&racks).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Racks retrieved successfully", racks, len(racks))
}

// GetRack returns a rack with its placements, ordered bottom-up
func (rc *RackController) GetRack(c *gin.Context) {
	rack, placements, err := rc.racks.ListPlacements(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Rack retrieved successfully", gin.H{
		"rack":       rack,
		"placements": placements,
	}, len(placements))
}

// CreateRack registers a new rack in a group
func (rc *RackController) CreateRack(c *gin.Context) {
	var req CreateRackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid rack payload: "+err.Error())
		return
	}

	group, err := providers.GetGroup(db.GetDB(), req.GroupID)
	if err != nil {
		respondError(c, err)
		return
	}

	rack := &models.Rack{
		Name:        req.Name,
		GroupID:     group.ID,
		FacilityID:  group.FacilityID,
		Location:    req.Location,
		Description: req.Description,
		Units:       req.Units,
	}
	if err := db.GetDB().Create(rack).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Rack created successfully", rack, 0)
}

// DeleteRack removes a rack; ?force=true cascades placements
func (rc *RackController) DeleteRack(c *gin.Context) {
	if err := rc.topology.RemoveRack(c.Param("id"), c.Query("force") == "true"); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Rack removed successfully", nil, 0)
}

// PlaceElementRequest is the payload for placing an element into a rack
type PlaceElementRequest struct {
	ElementID    string                  `json:"element_id" binding:"required"`
	Unit         int                     `json:"unit" binding:"required,min=1"`
	HalfPosition models.HalfRackPosition `json:"half_position" binding:"omitempty,oneof=LEFT RIGHT"`
}

// PlaceElement places an element into the rack at a unit position
func (rc *RackController) PlaceElement(c *gin.Context) {
	var req PlaceElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid placement payload: "+err.Error())
		return
	}

	if err := rc.racks.PlaceElement(c.Param("id"), req.ElementID, req.Unit, req.HalfPosition); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Element placed successfully", nil, 0)
}

// RemovePlacement removes an element's placement from the rack
func (rc *RackController) RemovePlacement(c *gin.Context) {
	if err := rc.racks.RemovePlacement(c.Param("id"), c.Param("elementId")); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Placement removed successfully", nil, 0)
}
