package controllers

import (
	"net/http"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// AuthController handles authentication for operator accounts
type AuthController struct{}

// NewAuthController creates a new auth controller
func NewAuthController() *AuthController {
	return &AuthController{}
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an operator and issues a bearer token
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Email and password are required")
		return
	}

	var user models.User
	if err := db.GetDB().Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "INVALID_CREDENTIALS",
			Message: "Invalid email or password",
		})
		return
	}

	if !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "INVALID_CREDENTIALS",
			Message: "Invalid email or password",
		})
		return
	}

	if err := user.GenerateToken(); err != nil {
		respondError(c, err)
		return
	}
	if err := db.GetDB().Model(&user).Updates(map[string]interface{}{
		"token":     user.Token,
		"token_exp": user.TokenExp,
	}).Error; err != nil {
		respondError(c, err)
		return
	}

	colors.PrintInfo("Operator %s logged in", user.Email)
	respondSuccess(c, http.StatusOK, "Login successful", gin.H{
		"token": user.Token,
		"user":  user,
	}, 0)
}

// Logout invalidates the current token
func (ac *AuthController) Logout(c *gin.Context) {
	userValue, _ := c.Get("user")
	user := userValue.(*models.User)

	user.ClearToken()
	if err := db.GetDB().Model(user).Updates(map[string]interface{}{
		"token":     nil,
		"token_exp": nil,
	}).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Logout successful", nil, 0)
}

// Me returns the authenticated operator's profile
func (ac *AuthController) Me(c *gin.Context) {
	userValue, _ := c.Get("user")
	respondSuccess(c, http.StatusOK, "Profile retrieved", userValue, 0)
}
