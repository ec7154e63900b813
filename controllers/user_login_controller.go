package controllers

import (
	"time"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginUser authenticates a parent/student account and issues a JWT.
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	utils.LogInfo("Login attempt for email: %s", req.Email)

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login failed - unknown email: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed - wrong password for email: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if user.IsBlocked {
		utils.LogError("Login attempt by blocked user: %d", user.ID)
		utils.Forbidden(c, utils.ErrUserBlocked)
		return
	}
	if !user.IsVerified {
		utils.LogError("Login attempt by unverified user: %d", user.ID)
		utils.Forbidden(c, "Please verify your email before logging in")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to login", nil)
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, utils.MsgLoginSuccess, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
		},
	})
}

// LogoutUser blacklists the presented token until its natural expiry.
func LogoutUser(c *gin.Context) {
	tokenVal, exists := c.Get("token")
	if !exists {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	tokenString := tokenVal.(string)

	blacklisted := models.BlacklistedToken{
		Token:     tokenString,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := config.DB.Create(&blacklisted).Error; err != nil {
		utils.LogError("Failed to blacklist token: %v", err)
		utils.InternalServerError(c, "Failed to logout", nil)
		return
	}

	utils.Success(c, utils.MsgLogoutSuccess, nil)
}
