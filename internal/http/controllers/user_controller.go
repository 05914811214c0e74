package controllers

import (
	"net/http"
	"strconv"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"

	"github.com/gin-gonic/gin"
)

// UserController handles operator account management (admin only)
type UserController struct{}

// NewUserController creates a new user controller
func NewUserController() *UserController {
	return &UserController{}
}

// GetUsers returns all operator accounts
func (uc *UserController) GetUsers(c *gin.Context) {
	var users []models.User
	if err := db.GetDB().Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Users retrieved successfully", users, len(users))
}

// CreateUser registers a new operator account
func (uc *UserController) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		respondBadRequest(c, "Invalid user payload: "+err.Error())
		return
	}

	if err := db.GetDB().Create(&user).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "User created successfully", user, 0)
}

// DeleteUser removes an operator account
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "User ID must be a valid number")
		return
	}

	if err := db.GetDB().Delete(&models.User{}, uint(id)).Error; err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "User removed successfully", nil, 0)
}
