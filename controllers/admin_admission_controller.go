package controllers

import (
	"fmt"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// GetAllAdmissions lists admission applications for the admin panel
// with optional status, class and year filters.
func GetAllAdmissions(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Admission{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if class := c.Query("class_applied"); class != "" {
		query = query.Where("class_applied = ?", class)
	}
	if year := c.Query("academic_year"); year != "" {
		query = query.Where("academic_year = ?", year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch applications", nil)
		return
	}

	var admissions []models.Admission
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&admissions).Error; err != nil {
		utils.LogError("Failed to fetch admissions: %v", err)
		utils.InternalServerError(c, "Failed to fetch applications", nil)
		return
	}

	utils.SuccessWithPagination(c, "Applications retrieved", admissions, total, pagination.Page, pagination.Limit)
}

// GetAdmissionDetails returns one application by id.
func GetAdmissionDetails(c *gin.Context) {
	var admission models.Admission
	if err := config.DB.First(&admission, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Application not found")
		return
	}
	utils.Success(c, "Application retrieved", admission)
}

// UpdateAdmissionStatusRequest carries the admin's decision.
type UpdateAdmissionStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

var validAdmissionStatuses = map[string]bool{
	models.AdmissionStatusSubmitted:   true,
	models.AdmissionStatusUnderReview: true,
	models.AdmissionStatusApproved:    true,
	models.AdmissionStatusRejected:    true,
}

// UpdateAdmissionStatus moves an application through the review
// pipeline and notifies the parent by email and SMS.
func UpdateAdmissionStatus(c *gin.Context) {
	utils.LogInfo("UpdateAdmissionStatus called")

	var req UpdateAdmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if !validAdmissionStatuses[req.Status] {
		utils.BadRequest(c, "Invalid status", "Status must be submitted, under_review, approved or rejected")
		return
	}

	var admission models.Admission
	if err := config.DB.First(&admission, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Application not found")
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Remarks != "" {
		updates["remarks"] = req.Remarks
	}
	if err := config.DB.Model(&admission).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update application %s: %v", admission.ApplicationNo, err)
		utils.InternalServerError(c, "Failed to update application", nil)
		return
	}
	admission.Status = req.Status

	go func(a models.Admission) {
		if err := utils.SendAdmissionStatusEmail(a.Email, a.ApplicationNo, a.StudentName, a.Status); err != nil {
			utils.LogError("Failed to send admission email for %s: %v", a.ApplicationNo, err)
		}
		msg := fmt.Sprintf("%s: application %s is now %s", utils.SchoolName, a.ApplicationNo, a.Status)
		if err := utils.SendSMS(a.Phone, msg); err != nil {
			utils.LogError("Failed to send admission SMS for %s: %v", a.ApplicationNo, err)
		}
	}(admission)

	utils.LogInfo("Application %s moved to %s", admission.ApplicationNo, req.Status)
	utils.Success(c, "Application updated", admission)
}
