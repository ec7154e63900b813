package controllers

import (
	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// ContactRequest is the public contact form body.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubmitContactMessage records an enquiry from the public site.
func SubmitContactMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, utils.ErrInvalidEmail, msg)
		return
	}
	if err := utils.ValidateStringLength(req.Message, 10, 2000); err != nil {
		utils.BadRequest(c, "Message must be between 10 and 2000 characters", nil)
		return
	}
	phone := ""
	if req.Phone != "" {
		formatted, err := utils.FormatPhoneNumber(req.Phone)
		if err != nil {
			utils.BadRequest(c, utils.ErrInvalidPhone, err.Error())
			return
		}
		phone = formatted
	}

	message := models.ContactMessage{
		Name:    utils.SanitizeString(req.Name),
		Email:   req.Email,
		Phone:   phone,
		Subject: utils.SanitizeString(req.Subject),
		Message: req.Message,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		utils.LogError("Failed to record contact message: %v", err)
		utils.InternalServerError(c, "Failed to submit message", nil)
		return
	}

	utils.Created(c, "Message submitted. The school office will get back to you", gin.H{
		"id": message.ID,
	})
}

// GetContactMessages lists enquiries for the admin panel. Unresolved
// messages come first.
func GetContactMessages(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.ContactMessage{})
	if c.Query("resolved") == "false" {
		query = query.Where("resolved = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch messages", nil)
		return
	}

	var messages []models.ContactMessage
	if err := query.Order("resolved ASC, created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&messages).Error; err != nil {
		utils.LogError("Failed to fetch contact messages: %v", err)
		utils.InternalServerError(c, "Failed to fetch messages", nil)
		return
	}

	utils.SuccessWithPagination(c, "Messages retrieved", messages, total, pagination.Page, pagination.Limit)
}

// ResolveContactMessage marks an enquiry as handled.
func ResolveContactMessage(c *gin.Context) {
	var message models.ContactMessage
	if err := config.DB.First(&message, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Message not found")
		return
	}

	if err := config.DB.Model(&message).Update("resolved", true).Error; err != nil {
		utils.LogError("Failed to resolve contact message %d: %v", message.ID, err)
		utils.InternalServerError(c, "Failed to update message", nil)
		return
	}
	message.Resolved = true
	utils.Success(c, utils.MsgUpdateSuccess, message)
}
