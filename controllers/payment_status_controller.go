package controllers

import (
	"strconv"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/repository"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// GetPaymentStatus returns the stored payment record by internal id.
func GetPaymentStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid payment ID", nil)
		return
	}

	repo := repository.NewPaymentRepository(config.DB)
	payment, err := repo.FindByID(uint(id))
	if err != nil {
		utils.LogError("Failed to look up payment %d: %v", id, err)
		utils.InternalServerError(c, "Failed to look up payment", nil)
		return
	}
	if payment == nil {
		utils.NotFound(c, "Payment not found")
		return
	}

	utils.Success(c, "Payment retrieved", payment)
}

// GetPaymentStatusByOrder returns the stored payment record by either
// order id, passed as the order_id query parameter.
func GetPaymentStatusByOrder(c *gin.Context) {
	orderID := c.Query("order_id")
	if orderID == "" {
		utils.BadRequest(c, "order_id query parameter is required", nil)
		return
	}

	repo := repository.NewPaymentRepository(config.DB)
	payment, err := repo.FindByMerchantOrderID(orderID)
	if err != nil {
		utils.InternalServerError(c, "Failed to look up payment", nil)
		return
	}
	if payment == nil {
		payment, err = repo.FindByGatewayOrderID(orderID)
		if err != nil {
			utils.InternalServerError(c, "Failed to look up payment", nil)
			return
		}
	}
	if payment == nil {
		utils.NotFound(c, "Payment not found")
		return
	}

	utils.Success(c, "Payment retrieved", payment)
}
