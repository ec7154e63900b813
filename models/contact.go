package models

import "gorm.io/gorm"

// ContactMessage is an enquiry submitted through the public contact form
type ContactMessage struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message" gorm:"not null"`
	Resolved bool   `json:"resolved" gorm:"default:false"`
}
