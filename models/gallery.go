package models

import "gorm.io/gorm"

// GalleryImage is one image in the public gallery
type GalleryImage struct {
	gorm.Model
	Title     string `json:"title"`
	ImagePath string `json:"image_path" gorm:"not null"`
	Category  string `json:"category" gorm:"type:varchar(50);default:'campus'"`
}
