package controllers

import (
	"strconv"
	"time"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// GetPendingVerifications lists manual payments awaiting office review.
func GetPendingVerifications(c *gin.Context) {
	utils.LogInfo("GetPendingVerifications called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusPendingVerification)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch pending payments", nil)
		return
	}

	var payments []models.Payment
	if err := query.Order("created_at ASC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch pending payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch pending payments", nil)
		return
	}

	utils.SuccessWithPagination(c, "Pending payments retrieved", payments, total, pagination.Page, pagination.Limit)
}

// ReviewManualPaymentRequest carries the admin's decision on a manual
// payment. transaction_id is the bank/UPI reference from the screenshot.
type ReviewManualPaymentRequest struct {
	Action        string `json:"action" binding:"required"`
	TransactionID string `json:"transaction_id"`
	Remark        string `json:"remark"`
}

// ReviewManualPayment approves or rejects a payment that sits in
// pending_verification. Payments in any other state cannot be reviewed
// here; the gateway reconciliation owns them.
func ReviewManualPayment(c *gin.Context) {
	utils.LogInfo("ReviewManualPayment called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid payment ID", nil)
		return
	}

	var req ReviewManualPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if req.Action != "approve" && req.Action != "reject" {
		utils.BadRequest(c, "Action must be approve or reject", nil)
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, id).Error; err != nil {
		utils.NotFound(c, "Payment not found")
		return
	}
	if payment.Status != models.PaymentStatusPendingVerification {
		utils.Conflict(c, "Only payments pending verification can be reviewed", gin.H{
			"status": payment.Status,
		})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{}
	if req.Action == "approve" {
		updates["status"] = models.PaymentStatusCompleted
		updates["transaction_date"] = &now
		if req.TransactionID != "" {
			updates["transaction_id"] = req.TransactionID
		}
	} else {
		updates["status"] = models.PaymentStatusFailed
	}
	if req.Remark != "" {
		updates["notes"] = payment.Notes + " | office: " + req.Remark
	}

	if err := config.DB.Model(&payment).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update payment %d: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to update payment", nil)
		return
	}

	if err := config.DB.First(&payment, id).Error; err != nil {
		utils.LogError("Failed to reload payment %d after review: %v", id, err)
	}

	if payment.Status == models.PaymentStatusCompleted && payment.Email != "" {
		go func(p models.Payment) {
			if err := utils.SendReceiptEmail(&p); err != nil {
				utils.LogError("Failed to send receipt email for payment %d: %v", p.ID, err)
			}
		}(payment)
	}

	utils.LogInfo("Manual payment %s reviewed: %s", payment.MerchantOrderID, req.Action)
	utils.Success(c, "Payment reviewed", payment)
}
