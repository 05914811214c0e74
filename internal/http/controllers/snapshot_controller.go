package controllers

import (
	"net/http"

	"atlas_inventory_server/internal/services"

	"github.com/gin-gonic/gin"
)

// SnapshotController handles rack snapshot export/import
type SnapshotController struct {
	export *services.ExportService
}

// NewSnapshotController creates a new snapshot controller
func NewSnapshotController(export *services.ExportService) *SnapshotController {
	return &SnapshotController{export: export}
}

// ExportRacks returns a snapshot of every rack in the inventory
func (sc *SnapshotController) ExportRacks(c *gin.Context) {
	snapshot, err := sc.export.ExportAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ExportRack returns a snapshot of one rack
func (sc *SnapshotController) ExportRack(c *gin.Context) {
	snapshot, err := sc.export.ExportRack(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ImportRacks re-applies a snapshot document in order
func (sc *SnapshotController) ImportRacks(c *gin.Context) {
	var snapshot services.InventorySnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		respondBadRequest(c, "Invalid snapshot document: "+err.Error())
		return
	}

	if err := sc.export.ImportSnapshot(&snapshot); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Snapshot imported successfully", nil, 0)
}
