package controllers

import (
	"errors"

	"github.com/Nikhil-527/VidyaSetu/services"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// VerifyPaymentRequest represents the verify request body. At least one
// order id must be supplied.
type VerifyPaymentRequest struct {
	MerchantOrderID string `json:"order_id"`
	GatewayOrderID  string `json:"gateway_order_id"`
}

// VerifyPayment polls the gateway for the authoritative order state and
// reconciles the local payment record. The browser calls this every few
// seconds after redirecting back, until a terminal state or its retry
// budget runs out. A failed status check is reported as retryable and is
// never conflated with a failed payment.
func VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if req.MerchantOrderID == "" && req.GatewayOrderID == "" {
		utils.BadRequest(c, "order_id or gateway_order_id is required", nil)
		return
	}

	result, err := services.Payments().Verify(req.MerchantOrderID, req.GatewayOrderID)
	if err != nil {
		if errors.Is(err, services.ErrGatewayUnreachable) {
			utils.LogError("Transient verify failure for order %s%s: %v", req.MerchantOrderID, req.GatewayOrderID, err)
			utils.BadGateway(c, "Could not verify payment status right now. Please retry", gin.H{"retry": true})
			return
		}
		utils.LogError("Verify failed for order %s%s: %v", req.MerchantOrderID, req.GatewayOrderID, err)
		utils.InternalServerError(c, "Failed to verify payment", nil)
		return
	}

	utils.LogInfo("Verify result for order %s%s: %s", req.MerchantOrderID, req.GatewayOrderID, result.PaymentStatus)
	utils.Success(c, "Payment status retrieved", result)
}
