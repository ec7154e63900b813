package models

import (
	"time"
)

// Payment statuses. pending moves to completed or failed via gateway
// reconciliation; pending_verification is a manual-review state entered
// directly at creation and only ever changed by an admin.
const (
	PaymentStatusPending             = "pending"
	PaymentStatusCompleted           = "completed"
	PaymentStatusFailed              = "failed"
	PaymentStatusPendingVerification = "pending_verification"
)

// PaymentMethodManual tags payments recorded from an uploaded proof
// rather than a gateway order.
const PaymentMethodManual = "MANUAL"

// Payment is one fee payment attempt. Rows are never deleted; a retry
// after failure creates a fresh row.
type Payment struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	MerchantOrderID string `json:"merchant_order_id" gorm:"type:varchar(64);uniqueIndex;not null"`
	GatewayOrderID  string `json:"gateway_order_id" gorm:"type:varchar(100);index"`

	UserID      *uint  `json:"user_id"`
	StudentName string `json:"student_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`

	Amount       float64 `json:"amount" gorm:"not null"`
	Currency     string  `json:"currency" gorm:"type:varchar(10);default:'INR'"`
	FeeType      string  `json:"fee_type" gorm:"type:varchar(30);not null"`
	ClassName    string  `json:"class_name"`
	AcademicYear string  `json:"academic_year"`
	Notes        string  `json:"notes"`

	Status        string `json:"status" gorm:"type:varchar(30);default:'pending'"`
	PaymentMethod string `json:"payment_method" gorm:"type:varchar(50)"`
	TransactionID string `json:"transaction_id" gorm:"type:varchar(100)"`

	ScreenshotPath string `json:"screenshot_path,omitempty"`

	TransactionDate *time.Time `json:"transaction_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsTerminal reports whether no further automatic transition applies.
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusFailed
}
