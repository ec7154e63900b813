package models

import (
	"time"

	"gorm.io/gorm"
)

// Notice is a school announcement shown on the public site
type Notice struct {
	gorm.Model
	Title          string    `json:"title" gorm:"not null"`
	Body           string    `json:"body" gorm:"not null"`
	Category       string    `json:"category" gorm:"type:varchar(50);default:'general'"`
	Important      bool      `json:"important" gorm:"default:false"`
	AttachmentPath string    `json:"attachment_path,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
}
