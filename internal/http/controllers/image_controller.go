package controllers

import (
	"net/http"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"

	"github.com/gin-gonic/gin"
)

// ImageController handles image HTTP requests
type ImageController struct{}

// NewImageController creates a new image controller
func NewImageController() *ImageController {
	return &ImageController{}
}

// GetImages returns all images; ?stub=true filters to stub records
func (ic *ImageController) GetImages(c *gin.Context) {
	query := db.GetDB()
	if c.Query("stub") == "true" {
		query = query.Where("stub = ?", true)
	}

	var images []models.Image
	if err := query.Find(&images).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Images retrieved successfully", images, len(images))
}

// GetImage returns a single image by its external image id
func (ic *ImageController) GetImage(c *gin.Context) {
	image, err := providers.GetImage(db.GetDB(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Image retrieved successfully", image, 0)
}
