package controllers

import (
	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// GetFeeStructures lists published fees, filterable by class and year
// so the payment page can show the right amounts.
func GetFeeStructures(c *gin.Context) {
	query := config.DB.Model(&models.FeeStructure{})
	if class := c.Query("class_name"); class != "" {
		query = query.Where("class_name = ?", class)
	}
	if year := c.Query("academic_year"); year != "" {
		query = query.Where("academic_year = ?", year)
	}

	var fees []models.FeeStructure
	if err := query.Order("class_name ASC, fee_type ASC").Find(&fees).Error; err != nil {
		utils.LogError("Failed to fetch fee structures: %v", err)
		utils.InternalServerError(c, "Failed to fetch fee structures", nil)
		return
	}

	utils.Success(c, "Fee structures retrieved", fees)
}

// FeeStructureRequest is the admin create/update body.
type FeeStructureRequest struct {
	ClassName    string  `json:"class_name" binding:"required"`
	AcademicYear string  `json:"academic_year" binding:"required"`
	FeeType      string  `json:"fee_type" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	Term         string  `json:"term"`
	Description  string  `json:"description"`
}

func (r *FeeStructureRequest) validate(c *gin.Context) bool {
	if err := utils.ValidateFeeType(r.FeeType); err != nil {
		utils.BadRequest(c, utils.ErrInvalidFeeType, err.Error())
		return false
	}
	if err := utils.ValidateAcademicYear(r.AcademicYear); err != nil {
		utils.BadRequest(c, "Invalid academic year", err.Error())
		return false
	}
	if err := utils.ValidateAmount(r.Amount); err != nil {
		utils.BadRequest(c, utils.ErrInvalidAmount, err.Error())
		return false
	}
	return true
}

// CreateFeeStructure publishes a fee entry. Admin only.
func CreateFeeStructure(c *gin.Context) {
	var req FeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if !req.validate(c) {
		return
	}

	var existing int64
	config.DB.Model(&models.FeeStructure{}).
		Where("class_name = ? AND academic_year = ? AND fee_type = ?", req.ClassName, req.AcademicYear, req.FeeType).
		Count(&existing)
	if existing > 0 {
		utils.Conflict(c, "A fee entry for this class, year and type already exists", nil)
		return
	}

	term := req.Term
	if term == "" {
		term = "annual"
	}
	fee := models.FeeStructure{
		ClassName:    req.ClassName,
		AcademicYear: req.AcademicYear,
		FeeType:      req.FeeType,
		Amount:       req.Amount,
		Term:         term,
		Description:  req.Description,
	}
	if err := config.DB.Create(&fee).Error; err != nil {
		utils.LogError("Failed to create fee structure: %v", err)
		utils.InternalServerError(c, "Failed to create fee structure", nil)
		return
	}

	utils.Created(c, utils.MsgCreateSuccess, fee)
}

// UpdateFeeStructure edits a published fee entry.
func UpdateFeeStructure(c *gin.Context) {
	var fee models.FeeStructure
	if err := config.DB.First(&fee, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Fee structure not found")
		return
	}

	var req FeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if !req.validate(c) {
		return
	}

	updates := map[string]interface{}{
		"class_name":    req.ClassName,
		"academic_year": req.AcademicYear,
		"fee_type":      req.FeeType,
		"amount":        req.Amount,
		"description":   req.Description,
	}
	if req.Term != "" {
		updates["term"] = req.Term
	}
	if err := config.DB.Model(&fee).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update fee structure %d: %v", fee.ID, err)
		utils.InternalServerError(c, "Failed to update fee structure", nil)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, fee)
}

// DeleteFeeStructure removes a fee entry.
func DeleteFeeStructure(c *gin.Context) {
	var fee models.FeeStructure
	if err := config.DB.First(&fee, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Fee structure not found")
		return
	}
	if err := config.DB.Delete(&fee).Error; err != nil {
		utils.LogError("Failed to delete fee structure %d: %v", fee.ID, err)
		utils.InternalServerError(c, "Failed to delete fee structure", nil)
		return
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
