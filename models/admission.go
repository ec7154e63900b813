package models

import (
	"time"

	"gorm.io/gorm"
)

// Admission application statuses
const (
	AdmissionStatusSubmitted   = "submitted"
	AdmissionStatusUnderReview = "under_review"
	AdmissionStatusApproved    = "approved"
	AdmissionStatusRejected    = "rejected"
)

// Admission is one admission application
type Admission struct {
	gorm.Model
	ApplicationNo  string    `json:"application_no" gorm:"type:varchar(40);uniqueIndex;not null"`
	StudentName    string    `json:"student_name" gorm:"not null"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	ClassApplied   string    `json:"class_applied" gorm:"not null"`
	AcademicYear   string    `json:"academic_year" gorm:"not null"`
	ParentName     string    `json:"parent_name" gorm:"not null"`
	Email          string    `json:"email" gorm:"not null"`
	Phone          string    `json:"phone" gorm:"not null;index"`
	Address        string    `json:"address"`
	PreviousSchool string    `json:"previous_school"`
	DocumentPath   string    `json:"document_path,omitempty"`
	Status         string    `json:"status" gorm:"type:varchar(30);default:'submitted'"`
	Remarks        string    `json:"remarks"`
	PaymentID      *uint     `json:"payment_id"`
}
