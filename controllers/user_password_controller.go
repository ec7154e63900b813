package controllers

import (
	"time"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// ForgotPassword issues a reset OTP to a registered email.
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. Email is required", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// Do not reveal whether the email exists.
		utils.LogInfo("Password reset requested for unknown email: %s", req.Email)
		utils.Success(c, "If the email is registered, an OTP has been sent", nil)
		return
	}

	otp := utils.GenerateOTP()
	record := models.UserOTP{
		UserID:    user.ID,
		Code:      otp,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		utils.LogError("Failed to store reset OTP for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to process request", nil)
		return
	}

	if err := utils.SendOTP(user.Email, otp); err != nil {
		utils.LogError("Failed to send reset OTP to %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to send OTP", nil)
		return
	}

	utils.LogInfo("Password reset OTP sent for user %d", user.ID)
	utils.Success(c, "If the email is registered, an OTP has been sent", nil)
}

// ResetPassword sets a new password after checking the reset OTP.
func ResetPassword(c *gin.Context) {
	var req struct {
		Email           string `json:"email" binding:"required,email"`
		OTP             string `json:"otp" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.BadRequest(c, "Invalid OTP", nil)
		return
	}

	var otpRecord models.UserOTP
	err := config.DB.Where("user_id = ? AND code = ? AND expires_at > ?", user.ID, req.OTP, time.Now()).
		Order("created_at DESC").First(&otpRecord).Error
	if err != nil {
		utils.LogError("Invalid or expired reset OTP for user %d", user.ID)
		utils.BadRequest(c, "Invalid OTP", nil)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	if err := config.DB.Model(&user).Update("password", hashed).Error; err != nil {
		utils.LogError("Failed to update password for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	// Used OTPs are burned immediately.
	config.DB.Where("user_id = ?", user.ID).Delete(&models.UserOTP{})

	utils.LogInfo("Password reset for user %d", user.ID)
	utils.Success(c, "Password reset successful. Please login with your new password", nil)
}
