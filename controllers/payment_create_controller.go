package controllers

import (
	"errors"

	"github.com/Nikhil-527/VidyaSetu/gateway"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/services"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// CreateOrderRequest represents the create-order request body
type CreateOrderRequest struct {
	Amount       float64 `json:"amount"`
	FeeType      string  `json:"fee_type" binding:"required"`
	ClassName    string  `json:"class_name" binding:"required"`
	AcademicYear string  `json:"academic_year" binding:"required"`
	StudentName  string  `json:"student_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Notes        string  `json:"notes"`
}

// CreatePaymentOrder validates a fee payment request, registers the
// order with the gateway and returns the redirect URL for the payer.
// All validation happens before any gateway call.
func CreatePaymentOrder(c *gin.Context) {
	utils.LogInfo("CreatePaymentOrder called")

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid create-order request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if err := utils.ValidateAmount(req.Amount); err != nil {
		utils.LogError("Create-order rejected - bad amount %.2f", req.Amount)
		utils.BadRequest(c, utils.ErrInvalidAmount, err.Error())
		return
	}
	if err := utils.ValidateFeeType(req.FeeType); err != nil {
		utils.LogError("Create-order rejected - bad fee type %q", req.FeeType)
		utils.BadRequest(c, utils.ErrInvalidFeeType, err.Error())
		return
	}
	if err := utils.ValidateAcademicYear(req.AcademicYear); err != nil {
		utils.BadRequest(c, "Invalid academic year", err.Error())
		return
	}
	if req.Email != "" {
		if valid, msg := utils.ValidateEmail(req.Email); !valid {
			utils.BadRequest(c, utils.ErrInvalidEmail, msg)
			return
		}
	}
	if req.Phone != "" {
		formatted, err := utils.FormatPhoneNumber(req.Phone)
		if err != nil {
			utils.BadRequest(c, utils.ErrInvalidPhone, err.Error())
			return
		}
		req.Phone = formatted
	}

	in := services.CreateOrderInput{
		Amount:       req.Amount,
		FeeType:      req.FeeType,
		ClassName:    req.ClassName,
		AcademicYear: req.AcademicYear,
		StudentName:  req.StudentName,
		Email:        req.Email,
		Phone:        req.Phone,
		Notes:        req.Notes,
	}

	// A logged-in parent's identity fills any gaps in the payer fields.
	if userVal, exists := c.Get("user"); exists {
		if user, ok := userVal.(models.User); ok {
			id := user.ID
			in.UserID = &id
			if in.Email == "" {
				in.Email = user.Email
			}
			if in.Phone == "" {
				in.Phone = user.Phone
			}
		}
	}

	result, err := services.Payments().CreateOrder(in)
	if err != nil {
		if errors.Is(err, gateway.ErrUnavailable) {
			utils.LogError("Gateway unreachable during order creation: %v", err)
			utils.InternalServerError(c, "Payment gateway is temporarily unavailable. Please try again", nil)
			return
		}
		utils.LogError("Failed to create payment order: %v", err)
		utils.InternalServerError(c, "Failed to create payment order", nil)
		return
	}

	utils.LogInfo("Created payment order %s (gateway %s)", result.MerchantOrderID, result.GatewayOrderID)
	utils.Created(c, "Payment order created", result)
}
