package controllers

import (
	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// GetPaymentHistory lists the logged-in user's payments, newest first.
func GetPaymentHistory(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	user := userVal.(models.User)

	pagination := utils.NewPagination(c)

	var total int64
	query := config.DB.Model(&models.Payment{}).Where("user_id = ?", user.ID)
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch payment history", nil)
		return
	}

	var payments []models.Payment
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payment history for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch payment history", nil)
		return
	}

	utils.SuccessWithPagination(c, "Payment history retrieved", payments, total, pagination.Page, pagination.Limit)
}

// LookupPaymentHistory lists payments by payer contact info for parents
// who paid without an account. Both email and phone must match to keep
// casual enumeration out.
func LookupPaymentHistory(c *gin.Context) {
	email := c.Query("email")
	phone := c.Query("phone")
	if email == "" || phone == "" {
		utils.BadRequest(c, "email and phone query parameters are required", nil)
		return
	}
	formatted, err := utils.FormatPhoneNumber(phone)
	if err != nil {
		utils.BadRequest(c, utils.ErrInvalidPhone, err.Error())
		return
	}

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Payment{}).Where("email = ? AND phone = ?", email, formatted)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}

	var payments []models.Payment
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&payments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}

	utils.SuccessWithPagination(c, "Payments retrieved", payments, total, pagination.Page, pagination.Limit)
}

// GetAllPayments lists every payment for the admin back-office, with
// optional status and fee type filters.
func GetAllPayments(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Payment{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if feeType := c.Query("fee_type"); feeType != "" {
		query = query.Where("fee_type = ?", feeType)
	}
	if year := c.Query("academic_year"); year != "" {
		query = query.Where("academic_year = ?", year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}

	var payments []models.Payment
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}

	utils.SuccessWithPagination(c, "Payments retrieved", payments, total, pagination.Page, pagination.Limit)
}
