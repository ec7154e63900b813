package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a parent/student account
type User struct {
	gorm.Model
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	Phone       string    `json:"phone"`
	IsBlocked   bool      `json:"is_blocked"`
	IsVerified  bool      `json:"is_verified" gorm:"default:false"`
	LastLoginAt time.Time `json:"last_login_at"`
	GoogleID    string    `gorm:"default:null" json:"google_id,omitempty"`
}

// Admin represents a back-office administrator
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// UserOTP is a one-time password issued for password reset
type UserOTP struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Code      string    `json:"code" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlacklistedToken records a JWT invalidated by logout
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
