package controllers

import (
	"strings"
	"time"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// newApplicationNo builds a short unique admission application number.
func newApplicationNo() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ADM-" + id[:10]
}

// SubmitAdmission accepts a public admission application, with an
// optional supporting document upload. The form is multipart so the
// document can ride along with the fields.
func SubmitAdmission(c *gin.Context) {
	utils.LogInfo("SubmitAdmission called")

	studentName := utils.SanitizeString(c.PostForm("student_name"))
	if valid, msg := utils.ValidateName(studentName); !valid {
		utils.BadRequest(c, "Invalid student name", msg)
		return
	}
	parentName := utils.SanitizeString(c.PostForm("parent_name"))
	if valid, msg := utils.ValidateName(parentName); !valid {
		utils.BadRequest(c, "Invalid parent name", msg)
		return
	}

	email := c.PostForm("email")
	if valid, msg := utils.ValidateEmail(email); !valid {
		utils.BadRequest(c, utils.ErrInvalidEmail, msg)
		return
	}
	phone, err := utils.FormatPhoneNumber(c.PostForm("phone"))
	if err != nil {
		utils.BadRequest(c, utils.ErrInvalidPhone, err.Error())
		return
	}

	classApplied := c.PostForm("class_applied")
	if classApplied == "" {
		utils.BadRequest(c, "class_applied is required", nil)
		return
	}
	academicYear := c.PostForm("academic_year")
	if err := utils.ValidateAcademicYear(academicYear); err != nil {
		utils.BadRequest(c, "Invalid academic year", err.Error())
		return
	}

	var dob time.Time
	if dobStr := c.PostForm("date_of_birth"); dobStr != "" {
		dob, err = time.Parse("2006-01-02", dobStr)
		if err != nil {
			utils.BadRequest(c, "date_of_birth must be in YYYY-MM-DD format", nil)
			return
		}
	}

	documentPath := ""
	if file, err := c.FormFile("document"); err == nil {
		if err := utils.ValidateDocumentFile(file); err != nil {
			utils.BadRequest(c, "Invalid document", err.Error())
			return
		}
		documentPath, err = utils.SaveUploadedFile(file, "uploads/admission-documents")
		if err != nil {
			utils.LogError("Failed to save admission document: %v", err)
			utils.InternalServerError(c, "Failed to save document", nil)
			return
		}
	}

	admission := models.Admission{
		ApplicationNo:  newApplicationNo(),
		StudentName:    studentName,
		DateOfBirth:    dob,
		ClassApplied:   classApplied,
		AcademicYear:   academicYear,
		ParentName:     parentName,
		Email:          email,
		Phone:          phone,
		Address:        utils.SanitizeString(c.PostForm("address")),
		PreviousSchool: utils.SanitizeString(c.PostForm("previous_school")),
		DocumentPath:   documentPath,
		Status:         models.AdmissionStatusSubmitted,
	}

	if err := config.DB.Create(&admission).Error; err != nil {
		utils.LogError("Failed to create admission application: %v", err)
		utils.InternalServerError(c, "Failed to submit application", nil)
		return
	}

	go func(a models.Admission) {
		if err := utils.SendAdmissionStatusEmail(a.Email, a.ApplicationNo, a.StudentName, a.Status); err != nil {
			utils.LogError("Failed to send admission email for %s: %v", a.ApplicationNo, err)
		}
	}(admission)

	utils.LogInfo("Admission application %s submitted", admission.ApplicationNo)
	utils.Created(c, "Application submitted successfully", gin.H{
		"application_no": admission.ApplicationNo,
		"status":         admission.Status,
	})
}

// GetAdmissionStatus lets a parent check their application. Both the
// application number and the registered phone must match.
func GetAdmissionStatus(c *gin.Context) {
	applicationNo := c.Query("application_no")
	phone := c.Query("phone")
	if applicationNo == "" || phone == "" {
		utils.BadRequest(c, "application_no and phone query parameters are required", nil)
		return
	}
	formatted, err := utils.FormatPhoneNumber(phone)
	if err != nil {
		utils.BadRequest(c, utils.ErrInvalidPhone, err.Error())
		return
	}

	var admission models.Admission
	if err := config.DB.Where("application_no = ? AND phone = ?", applicationNo, formatted).
		First(&admission).Error; err != nil {
		utils.NotFound(c, "Application not found")
		return
	}

	utils.Success(c, "Application retrieved", gin.H{
		"application_no": admission.ApplicationNo,
		"student_name":   admission.StudentName,
		"class_applied":  admission.ClassApplied,
		"academic_year":  admission.AcademicYear,
		"status":         admission.Status,
		"remarks":        admission.Remarks,
		"submitted_at":   admission.CreatedAt,
	})
}
