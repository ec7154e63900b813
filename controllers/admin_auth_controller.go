package controllers

import (
	"os"
	"time"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// AdminLogin authenticates a back-office administrator.
func AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	utils.LogInfo("Admin login attempt for email: %s", req.Email)

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.LogError("Admin login failed - unknown email: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !utils.CheckPassword(req.Password, admin.Password) {
		utils.LogError("Admin login failed - wrong password for email: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !admin.IsActive {
		utils.Forbidden(c, "Admin account is inactive")
		return
	}

	token, err := utils.GenerateAdminToken(&admin)
	if err != nil {
		utils.LogError("Failed to generate admin token for %d: %v", admin.ID, err)
		utils.InternalServerError(c, "Failed to login", nil)
		return
	}

	config.DB.Model(&admin).Update("last_login", time.Now())

	utils.LogInfo("Admin %d logged in", admin.ID)
	utils.Success(c, utils.MsgLoginSuccess, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}

// CreateSampleAdmin seeds the default admin account on first boot.
func CreateSampleAdmin() error {
	var count int64
	if err := config.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@sunrisepublicschool.in"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin@123"
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:    email,
		Password: hashed,
		Name:     "School Admin",
		IsActive: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Seeded default admin account: %s", email)
	return nil
}
