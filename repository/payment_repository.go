// Package repository holds the persistence layer for payment records.
package repository

import (
	"errors"

	"github.com/Nikhil-527/VidyaSetu/models"
	"gorm.io/gorm"
)

// ErrDuplicateOrderID is returned when inserting a payment whose
// merchant order id already exists.
var ErrDuplicateOrderID = errors.New("merchant order id already exists")

// PaymentRepository stores payment attempts. Payments are never deleted;
// they form the audit trail for every fee transaction.
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a PaymentRepository on the given DB handle
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Insert persists a new payment attempt
func (r *PaymentRepository) Insert(payment *models.Payment) error {
	var count int64
	if err := r.db.Model(&models.Payment{}).
		Where("merchant_order_id = ?", payment.MerchantOrderID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateOrderID
	}
	return r.db.Create(payment).Error
}

// FindByMerchantOrderID returns the payment with the locally generated
// order id, or nil when none exists.
func (r *PaymentRepository) FindByMerchantOrderID(id string) (*models.Payment, error) {
	return r.findOne("merchant_order_id = ?", id)
}

// FindByGatewayOrderID returns the payment with the provider-assigned
// order id, or nil when none exists.
func (r *PaymentRepository) FindByGatewayOrderID(id string) (*models.Payment, error) {
	return r.findOne("gateway_order_id = ?", id)
}

// FindByID returns the payment with the internal numeric id, or nil.
func (r *PaymentRepository) FindByID(id uint) (*models.Payment, error) {
	return r.findOne("id = ?", id)
}

func (r *PaymentRepository) findOne(query string, arg interface{}) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where(query, arg).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// UpdateStatusByOrderID applies a partial update to the payment matching
// either order id space; unset fields are left unchanged. Returns the
// updated payment, or nil when no row matched. Re-applying the same
// terminal fields is a no-op in effect, which is what makes repeated
// verify calls safe.
func (r *PaymentRepository) UpdateStatusByOrderID(orderID string, fields map[string]interface{}) (*models.Payment, error) {
	res := r.db.Model(&models.Payment{}).
		Where("merchant_order_id = ? OR gateway_order_id = ?", orderID, orderID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var payment models.Payment
	if err := r.db.Where("merchant_order_id = ? OR gateway_order_id = ?", orderID, orderID).
		First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
