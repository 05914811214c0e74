package controllers

import (
	"net/http"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/internal/services"

	"github.com/gin-gonic/gin"
)

// RoleController handles element role HTTP requests
type RoleController struct {
	roles *services.RoleService
}

// NewRoleController creates a new role controller
func NewRoleController(roles *services.RoleService) *RoleController {
	return &RoleController{roles: roles}
}

// GetRoles returns all element roles
func (rc *RoleController) GetRoles(c *gin.Context) {
	var roles []models.ElementRole
	if err := db.GetDB().Find(&roles).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Element roles retrieved successfully", roles, len(roles))
}

// GetRole returns a single element role by its opaque id
func (rc *RoleController) GetRole(c *gin.Context) {
	role, err := providers.GetRole(db.GetDB(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Element role retrieved successfully", role, 0)
}

// CreateRole registers a new element role
func (rc *RoleController) CreateRole(c *gin.Context) {
	var role models.ElementRole
	if err := c.ShouldBindJSON(&role); err != nil {
		respondBadRequest(c, "Invalid role payload: "+err.Error())
		return
	}

	if err := db.GetDB().Create(&role).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Element role created successfully", role, 0)
}

// DeleteRole removes an element role. Roles referenced by elements are
// protected; ?force=true with a replacement query parameter reassigns
// the referencing elements first.
func (rc *RoleController) DeleteRole(c *gin.Context) {
	var err error
	if c.Query("force") == "true" {
		replacement := c.Query("replacement")
		if replacement == "" {
			respondBadRequest(c, "Force removal requires a replacement role name")
			return
		}
		err = rc.roles.ForceRemoveRole(c.Param("id"), replacement)
	} else {
		err = rc.roles.RemoveRole(c.Param("id"))
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Element role removed successfully", nil, 0)
}
