package models

import "gorm.io/gorm"

// FeeStructure is the published fee for a class, year and fee category
type FeeStructure struct {
	gorm.Model
	ClassName    string  `json:"class_name" gorm:"not null;index"`
	AcademicYear string  `json:"academic_year" gorm:"not null;index"`
	FeeType      string  `json:"fee_type" gorm:"type:varchar(30);not null"`
	Amount       float64 `json:"amount" gorm:"not null"`
	Term         string  `json:"term" gorm:"type:varchar(30);default:'annual'"`
	Description  string  `json:"description"`
}
