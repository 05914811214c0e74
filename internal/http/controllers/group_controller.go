package controllers

import (
	"net/http"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/internal/services"

	"github.com/gin-gonic/gin"
)

// GroupController handles element group HTTP requests
type GroupController struct {
	topology *services.TopologyService
}

// NewGroupController creates a new group controller
func NewGroupController(topology *services.TopologyService) *GroupController {
	return &GroupController{topology: topology}
}

// CreateGroupRequest is the payload for registering an element group
type CreateGroupRequest struct {
	Name        string           `json:"name" binding:"required"`
	Type        models.GroupType `json:"type" binding:"required,oneof=pod site zone"`
	Description string           `json:"description"`
	FacilityID  string           `json:"facility_id"`
}

// GetGroups returns all element groups
func (gc *GroupController) GetGroups(c *gin.Context) {
	var groups []models.ElementGroup
	if err := db.GetDB().Preload("Facility").Find(&groups).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Element groups retrieved successfully", groups, len(groups))
}

// GetGroup returns a single element group by its opaque id
func (gc *GroupController) GetGroup(c *gin.Context) {
	group, err := providers.GetGroup(db.GetDB(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Element group retrieved successfully", group, 0)
}

// CreateGroup registers a new element group
func (gc *GroupController) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid group payload: "+err.Error())
		return
	}

	group := &models.ElementGroup{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	}
	if req.FacilityID != "" {
		facility, err := providers.GetFacility(db.GetDB(), req.FacilityID)
		if err != nil {
			respondError(c, err)
			return
		}
		group.FacilityID = &facility.ID
	}

	if err := db.GetDB().Create(group).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Element group created successfully", group, 0)
}

// DeleteGroup removes an element group; ?force=true cascades racks
func (gc *GroupController) DeleteGroup(c *gin.Context) {
	if err := gc.topology.RemoveGroup(c.Param("id"), c.Query("force") == "true"); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Element group removed successfully", nil, 0)
}
