// Package services holds the payment order and reconciliation logic.
package services

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/Nikhil-527/VidyaSetu/gateway"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/google/uuid"
)

// ErrGatewayUnreachable means the status check itself failed. This is a
// transient condition, distinct from a payment the gateway reports as
// failed; the local record must not change because of it.
var ErrGatewayUnreachable = errors.New("could not check payment status with the gateway")

// PaymentStore is the persistence surface the service needs.
type PaymentStore interface {
	Insert(payment *models.Payment) error
	FindByMerchantOrderID(id string) (*models.Payment, error)
	FindByGatewayOrderID(id string) (*models.Payment, error)
	UpdateStatusByOrderID(orderID string, fields map[string]interface{}) (*models.Payment, error)
}

// OrderState is the closed set of states a gateway response decodes to.
type OrderState int

const (
	OrderStatePending OrderState = iota
	OrderStateCompleted
	OrderStateFailed
)

// String returns the gateway-facing token for the state
func (s OrderState) String() string {
	switch s {
	case OrderStateCompleted:
		return "COMPLETED"
	case OrderStateFailed:
		return "FAILED"
	default:
		return "PENDING"
	}
}

// PaymentStatus returns the local payment status the state maps to
func (s OrderState) PaymentStatus() string {
	switch s {
	case OrderStateCompleted:
		return models.PaymentStatusCompleted
	case OrderStateFailed:
		return models.PaymentStatusFailed
	default:
		return models.PaymentStatusPending
	}
}

// PaymentService creates gateway orders and reconciles their status with
// the local payment records.
type PaymentService struct {
	store PaymentStore
	gw    gateway.Client

	// notify dispatches the receipt after a completed payment is
	// persisted. Best-effort: failures are logged, never propagated.
	notify func(payment *models.Payment)
}

// NewPaymentService wires the service with its store and gateway client
func NewPaymentService(store PaymentStore, gw gateway.Client) *PaymentService {
	return &PaymentService{
		store:  store,
		gw:     gw,
		notify: sendReceipt,
	}
}

// CreateOrderInput carries a validated create-order request.
type CreateOrderInput struct {
	Amount       float64
	FeeType      string
	ClassName    string
	AcademicYear string
	StudentName  string
	Email        string
	Phone        string
	Notes        string
	UserID       *uint
}

// CreateOrderResult is returned to the client so it can redirect the
// payer and poll for the outcome.
type CreateOrderResult struct {
	PaymentID       uint    `json:"payment_id"`
	MerchantOrderID string  `json:"order_id"`
	GatewayOrderID  string  `json:"gateway_order_id"`
	RedirectURL     string  `json:"redirect_url"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// VerifyResult is the normalized outcome of a verify/poll call.
type VerifyResult struct {
	State         string  `json:"state"`
	PaymentStatus string  `json:"payment_status"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Amount        float64 `json:"amount"`
}

// NewMerchantOrderID generates the local idempotency key for one payment
// attempt.
func NewMerchantOrderID() string {
	return "FEE-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
}

// CreateOrder registers the order with the gateway and records a pending
// payment carrying both order ids.
func (s *PaymentService) CreateOrder(in CreateOrderInput) (*CreateOrderResult, error) {
	merchantOrderID := NewMerchantOrderID()
	amountPaise := int64(math.Round(in.Amount * 100))

	redirectURL := strings.TrimRight(os.Getenv("FRONTEND_URL"), "/") +
		"/payment/status?order_id=" + merchantOrderID

	notes := map[string]interface{}{
		"fee_type":      in.FeeType,
		"class_name":    in.ClassName,
		"academic_year": in.AcademicYear,
	}
	if in.StudentName != "" {
		notes["student_name"] = in.StudentName
	}

	order, err := s.gw.CreateOrder(amountPaise, merchantOrderID, redirectURL, notes, time.Now().Add(30*time.Minute))
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		MerchantOrderID: merchantOrderID,
		GatewayOrderID:  order.GatewayOrderID,
		UserID:          in.UserID,
		StudentName:     in.StudentName,
		Email:           in.Email,
		Phone:           in.Phone,
		Amount:          in.Amount,
		Currency:        utils.Currency,
		FeeType:         in.FeeType,
		ClassName:       in.ClassName,
		AcademicYear:    in.AcademicYear,
		Notes:           in.Notes,
		Status:          models.PaymentStatusPending,
	}
	if err := s.store.Insert(payment); err != nil {
		return nil, fmt.Errorf("order created at gateway but local record failed: %w", err)
	}

	return &CreateOrderResult{
		PaymentID:       payment.ID,
		MerchantOrderID: merchantOrderID,
		GatewayOrderID:  order.GatewayOrderID,
		RedirectURL:     order.RedirectURL,
		Amount:          in.Amount,
		Currency:        utils.Currency,
	}, nil
}

// Verify polls the gateway for the authoritative order state and applies
// it to the local record. Safe to call any number of times; a repeat
// observation of a terminal state changes nothing. A failed status check
// returns ErrGatewayUnreachable and leaves the record untouched.
func (s *PaymentService) Verify(merchantOrderID, gatewayOrderID string) (*VerifyResult, error) {
	if merchantOrderID == "" && gatewayOrderID == "" {
		return nil, fmt.Errorf("an order id is required")
	}

	// The two id spaces are distinct; resolve the local row by whichever
	// id the caller supplied, never by guessing from the id's shape.
	var payment *models.Payment
	var err error
	if merchantOrderID != "" {
		payment, err = s.store.FindByMerchantOrderID(merchantOrderID)
		if err != nil {
			return nil, err
		}
	}
	if payment == nil && gatewayOrderID != "" {
		payment, err = s.store.FindByGatewayOrderID(gatewayOrderID)
		if err != nil {
			return nil, err
		}
	}

	// Manually submitted proofs have no gateway order; only an admin
	// review can move them.
	if payment != nil && payment.Status == models.PaymentStatusPendingVerification {
		return &VerifyResult{
			State:         "PENDING",
			PaymentStatus: models.PaymentStatusPendingVerification,
			Amount:        payment.Amount,
		}, nil
	}

	// The gateway is queried with its own id. Without a local row the
	// caller-supplied value is used as a best effort.
	queryID := gatewayOrderID
	if payment != nil && payment.GatewayOrderID != "" {
		queryID = payment.GatewayOrderID
	}
	if queryID == "" {
		queryID = merchantOrderID
	}

	raw, err := s.gw.FetchOrderStatus(queryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}

	state := DecodeOrderState(raw)

	result := &VerifyResult{
		State:         state.String(),
		PaymentStatus: state.PaymentStatus(),
	}
	if amount, ok := amountFromResponse(raw); ok {
		result.Amount = amount
	} else if payment != nil {
		result.Amount = payment.Amount
	}
	if state == OrderStateCompleted {
		result.TransactionID = extractTransactionID(raw, queryID)
	}

	if state == OrderStatePending {
		return result, nil
	}
	// Terminal writes happen once; a row already in a terminal state is
	// left as it is.
	if payment != nil && payment.IsTerminal() {
		return result, nil
	}

	fields := map[string]interface{}{
		"status":         state.PaymentStatus(),
		"payment_method": extractPaymentMethod(raw),
	}
	if state == OrderStateCompleted {
		fields["transaction_id"] = result.TransactionID
		fields["transaction_date"] = time.Now()
	}

	orderKey := queryID
	if payment != nil {
		orderKey = payment.MerchantOrderID
	}
	updated, err := s.store.UpdateStatusByOrderID(orderKey, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Status checking still works when local bookkeeping lagged.
		utils.LogError("No payment record found for order %s while applying status %s", orderKey, state.PaymentStatus())
		return result, nil
	}

	if state == OrderStateCompleted && s.notify != nil {
		go s.notify(updated)
	}

	return result, nil
}

func sendReceipt(payment *models.Payment) {
	if err := utils.SendReceiptEmail(payment); err != nil {
		utils.LogError("Failed to send receipt email for order %s: %v", payment.MerchantOrderID, err)
		return
	}
	utils.LogInfo("Receipt email sent for order %s", payment.MerchantOrderID)
}
