package controllers

import (
	"strconv"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/services"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// SubmitManualPayment records a payment made outside the gateway (bank
// transfer, UPI to the school account) from an uploaded proof
// screenshot. The record starts in pending_verification and is only ever
// moved by an admin review; the gateway reconciliation never touches it.
func SubmitManualPayment(c *gin.Context) {
	utils.LogInfo("SubmitManualPayment called")

	amountStr := c.PostForm("amount")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid amount", nil)
		return
	}
	if err := utils.ValidateAmount(amount); err != nil {
		utils.BadRequest(c, utils.ErrInvalidAmount, err.Error())
		return
	}

	feeType := c.PostForm("fee_type")
	if err := utils.ValidateFeeType(feeType); err != nil {
		utils.BadRequest(c, utils.ErrInvalidFeeType, err.Error())
		return
	}

	email := c.PostForm("email")
	if email != "" {
		if valid, msg := utils.ValidateEmail(email); !valid {
			utils.BadRequest(c, utils.ErrInvalidEmail, msg)
			return
		}
	}
	phone := c.PostForm("phone")
	if phone != "" {
		formatted, err := utils.FormatPhoneNumber(phone)
		if err != nil {
			utils.BadRequest(c, utils.ErrInvalidPhone, err.Error())
			return
		}
		phone = formatted
	}
	if email == "" && phone == "" {
		utils.BadRequest(c, "An email or phone number is required for manual payments", nil)
		return
	}

	file, err := c.FormFile("screenshot")
	if err != nil {
		utils.BadRequest(c, "A payment screenshot is required", nil)
		return
	}
	if err := utils.ValidateImageFile(file); err != nil {
		utils.BadRequest(c, "Invalid screenshot", err.Error())
		return
	}

	path, err := utils.SaveUploadedFile(file, "uploads/payment-proofs")
	if err != nil {
		utils.LogError("Failed to save payment screenshot: %v", err)
		utils.InternalServerError(c, "Failed to save screenshot", nil)
		return
	}

	payment := models.Payment{
		MerchantOrderID: services.NewMerchantOrderID(),
		StudentName:     c.PostForm("student_name"),
		Email:           email,
		Phone:           phone,
		Amount:          amount,
		Currency:        utils.Currency,
		FeeType:         feeType,
		ClassName:       c.PostForm("class_name"),
		AcademicYear:    c.PostForm("academic_year"),
		Notes:           c.PostForm("notes"),
		Status:          models.PaymentStatusPendingVerification,
		PaymentMethod:   models.PaymentMethodManual,
		ScreenshotPath:  path,
	}

	if userVal, exists := c.Get("user"); exists {
		if user, ok := userVal.(models.User); ok {
			id := user.ID
			payment.UserID = &id
		}
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to record manual payment: %v", err)
		utils.InternalServerError(c, "Failed to record payment", nil)
		return
	}

	utils.LogInfo("Manual payment %s recorded for review", payment.MerchantOrderID)
	utils.Created(c, "Payment proof submitted. It will be verified by the school office", gin.H{
		"payment_id": payment.ID,
		"order_id":   payment.MerchantOrderID,
		"status":     payment.Status,
	})
}
