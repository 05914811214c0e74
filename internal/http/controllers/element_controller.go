package controllers

import (
	"net/http"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/internal/services"

	"github.com/gin-gonic/gin"
)

// ElementController handles element lifecycle HTTP requests
type ElementController struct {
	elements *services.ElementService
	racks    *services.RackService
	images   *services.ImageService
}

// NewElementController creates a new element controller
func NewElementController(elements *services.ElementService, racks *services.RackService, images *services.ImageService) *ElementController {
	return &ElementController{
		elements: elements,
		racks:    racks,
		images:   images,
	}
}

// GetElements returns all elements, optionally filtered by group, role
// or operational state
func (ec *ElementController) GetElements(c *gin.Context) {
	query := db.GetDB().Preload("Role").Preload("Group").Preload("Platform")

	if state := c.Query("oper_state"); state != "" {
		query = query.Where("oper_state = ?", state)
	}
	if groupID := c.Query("group_id"); groupID != "" {
		group, err := providers.GetGroup(db.GetDB(), groupID)
		if err != nil {
			respondError(c, err)
			return
		}
		query = query.Where("group_id = ?", group.ID)
	}
	if role := c.Query("role"); role != "" {
		roleRecord, err := providers.GetRoleByName(db.GetDB(), role)
		if err != nil {
			respondError(c, err)
			return
		}
		query = query.Where("role_id = ?", roleRecord.ID)
	}

	var elements []models.Element
	if err := query.Find(&elements).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Elements retrieved successfully", elements, len(elements))
}

// GetElement returns a single element by its opaque id
func (ec *ElementController) GetElement(c *gin.Context) {
	element, err := providers.GetElement(db.GetDB(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var full models.Element
	if err := db.GetDB().Preload("Role").Preload("Group").Preload("Platform").
		First(&full, element.ID).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Element retrieved successfully", full, 0)
}

// StoreSettings creates or updates an element from a settings submission
func (ec *ElementController) StoreSettings(c *gin.Context) {
	var settings services.ElementSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondBadRequest(c, "Invalid element settings: "+err.Error())
		return
	}

	created, err := ec.elements.StoreElementSettings(&settings)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	message := "Element updated successfully"
	if created {
		status = http.StatusCreated
		message = "Element created successfully"
	}
	respondSuccess(c, status, message, gin.H{"created": created}, 0)
}

// UpdateOperationalState sets the operational state of an element
func (ec *ElementController) UpdateOperationalState(c *gin.Context) {
	var req struct {
		OperState models.OperationalState `json:"oper_state" binding:"required,oneof=UP DOWN DETACHED UNKNOWN"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "oper_state must be one of UP, DOWN, DETACHED, UNKNOWN")
		return
	}

	if err := ec.elements.UpdateOperationalState(c.Param("id"), req.OperState); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Operational state updated", nil, 0)
}

// Heartbeat records a heartbeat report for an element
func (ec *ElementController) Heartbeat(c *gin.Context) {
	if err := ec.elements.RecordHeartbeat(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Heartbeat recorded", nil, 0)
}

// DeleteElement removes an element; ?force=true cascades dependents
func (ec *ElementController) DeleteElement(c *gin.Context) {
	var err error
	if c.Query("force") == "true" {
		err = ec.elements.ForceRemoveElement(c.Param("id"))
	} else {
		err = ec.elements.RemoveElement(c.Param("id"))
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Element removed successfully", nil, 0)
}

// GetPlacement returns where the element sits, if placed
func (ec *ElementController) GetPlacement(c *gin.Context) {
	placement, ok, err := ec.racks.FindPlacement(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		respondSuccess(c, http.StatusOK, "Element is not placed in any rack", nil, 0)
		return
	}
	respondSuccess(c, http.StatusOK, "Placement retrieved successfully", placement, 0)
}

// ReportImage records an installed image reported by an element,
// creating a stub image record when the image id is unknown
func (ec *ElementController) ReportImage(c *gin.Context) {
	var report services.ImageReport
	if err := c.ShouldBindJSON(&report); err != nil {
		respondBadRequest(c, "Invalid image report: "+err.Error())
		return
	}

	element, err := providers.GetElement(db.GetDB(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	image, err := ec.images.EnsureReportedImage(element, &report)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ec.images.MarkInstalled(element, image, c.Query("active") == "true"); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Installed image recorded", image, 0)
}
