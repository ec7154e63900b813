package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Nikhil-527/VidyaSetu/gateway"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu       sync.Mutex
	payments map[string]*models.Payment // keyed by merchant order id
	updates  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{payments: make(map[string]*models.Payment)}
}

func (s *fakeStore) Insert(p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.payments[p.MerchantOrderID]; exists {
		return errors.New("duplicate order id")
	}
	p.ID = uint(len(s.payments) + 1)
	clone := *p
	s.payments[p.MerchantOrderID] = &clone
	return nil
}

func (s *fakeStore) FindByMerchantOrderID(id string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.payments[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (s *fakeStore) FindByGatewayOrderID(id string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.GatewayOrderID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) UpdateStatusByOrderID(orderID string, fields map[string]interface{}) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.MerchantOrderID == orderID || p.GatewayOrderID == orderID {
			s.updates++
			if v, ok := fields["status"].(string); ok {
				p.Status = v
			}
			if v, ok := fields["payment_method"].(string); ok {
				p.PaymentMethod = v
			}
			if v, ok := fields["transaction_id"].(string); ok {
				p.TransactionID = v
			}
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

// stubGateway implements gateway.Client for service tests.
type stubGateway struct {
	response   map[string]interface{}
	fetchErr   error
	createErr  error
	gatewayID  string
	fetchCalls int
	lastQuery  string
	lastPaise  int64
}

func (g *stubGateway) CreateOrder(amountPaise int64, referenceID, redirectURL string, notes map[string]interface{}, expireBy time.Time) (*gateway.OrderResult, error) {
	g.lastPaise = amountPaise
	if g.createErr != nil {
		return nil, g.createErr
	}
	id := g.gatewayID
	if id == "" {
		id = "plink_stub"
	}
	return &gateway.OrderResult{GatewayOrderID: id, RedirectURL: "https://rzp.io/i/" + id}, nil
}

func (g *stubGateway) FetchOrderStatus(gatewayOrderID string) (map[string]interface{}, error) {
	g.fetchCalls++
	g.lastQuery = gatewayOrderID
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	return g.response, nil
}

func TestNewMerchantOrderID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewMerchantOrderID()
		assert.True(t, strings.HasPrefix(id, "FEE-"), "id %q should carry the FEE- prefix", id)
		assert.Len(t, id, 36)
		assert.False(t, seen[id], "id %q repeated", id)
		seen[id] = true
	}
}

func TestDecodeOrderState(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
		want OrderState
	}{
		{"completed state", map[string]interface{}{"state": "COMPLETED"}, OrderStateCompleted},
		{"paid state", map[string]interface{}{"state": "PAID"}, OrderStateCompleted},
		{"success status field", map[string]interface{}{"status": "SUCCESS"}, OrderStateCompleted},
		{"lowercase with spaces", map[string]interface{}{"orderState": "  completed "}, OrderStateCompleted},
		{"failed state", map[string]interface{}{"state": "FAILED"}, OrderStateFailed},
		{"numeric success code", map[string]interface{}{"code": float64(0)}, OrderStateCompleted},
		{"numeric failure code", map[string]interface{}{"responseCode": float64(1)}, OrderStateFailed},
		{"success code string", map[string]interface{}{"code": "PAYMENT_SUCCESS"}, OrderStateCompleted},
		{"message fallback", map[string]interface{}{"message": "PAYMENT_SUCCESS"}, OrderStateCompleted},
		{"failure message fallback", map[string]interface{}{"responseMessage": "PAYMENT_FAILED"}, OrderStateFailed},
		{"state outranks code", map[string]interface{}{"state": "FAILED", "code": "SUCCESS"}, OrderStateFailed},
		{"unknown token stays pending", map[string]interface{}{"state": "PROCESSING"}, OrderStatePending},
		{"unlisted error code stays pending", map[string]interface{}{"code": "PAYMENT_ERROR"}, OrderStatePending},
		{"unlisted error code in responseCode stays pending", map[string]interface{}{"responseCode": "PAYMENT_ERROR"}, OrderStatePending},
		{"unrecognized shape stays pending", map[string]interface{}{"foo": "bar"}, OrderStatePending},
		{"empty response stays pending", map[string]interface{}{}, OrderStatePending},
		{"nil response stays pending", nil, OrderStatePending},
		{"nil field skipped", map[string]interface{}{"state": nil, "code": "SUCCESS"}, OrderStateCompleted},
		{"created is not success", map[string]interface{}{"status": "created"}, OrderStatePending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeOrderState(tt.raw))
		})
	}
}

func TestExtractTransactionID(t *testing.T) {
	raw := map[string]interface{}{"transactionId": "T123", "orderId": "OMO456"}
	assert.Equal(t, "T123", extractTransactionID(raw, "fallback"))

	raw = map[string]interface{}{"orderId": "OMO456"}
	assert.Equal(t, "OMO456", extractTransactionID(raw, "fallback"))

	assert.Equal(t, "fallback", extractTransactionID(map[string]interface{}{}, "fallback"))
}

func TestAmountFromResponse(t *testing.T) {
	amount, ok := amountFromResponse(map[string]interface{}{"amount": float64(500000)})
	require.True(t, ok)
	assert.Equal(t, 5000.0, amount)

	_, ok = amountFromResponse(map[string]interface{}{})
	assert.False(t, ok)
}

func TestVerifyCompletedPayment(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Insert(&models.Payment{
		MerchantOrderID: "FEE-ABC",
		GatewayOrderID:  "plink_123",
		Amount:          5000,
		Status:          models.PaymentStatusPending,
	}))

	gw := &stubGateway{response: map[string]interface{}{
		"state":         "COMPLETED",
		"transactionId": "T123",
		"amount":        float64(500000),
	}}
	var notified []*models.Payment
	var wg sync.WaitGroup
	svc := &PaymentService{store: store, gw: gw, notify: func(p *models.Payment) {
		notified = append(notified, p)
		wg.Done()
	}}
	wg.Add(1)

	result, err := svc.Verify("FEE-ABC", "")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", result.State)
	assert.Equal(t, models.PaymentStatusCompleted, result.PaymentStatus)
	assert.Equal(t, "T123", result.TransactionID)
	assert.Equal(t, 5000.0, result.Amount)

	// The gateway must be queried with its own id, not the merchant id
	assert.Equal(t, "plink_123", gw.lastQuery)

	stored, _ := store.FindByMerchantOrderID("FEE-ABC")
	assert.Equal(t, models.PaymentStatusCompleted, stored.Status)
	assert.Equal(t, "T123", stored.TransactionID)

	wg.Wait()
	require.Len(t, notified, 1)
	assert.Equal(t, "FEE-ABC", notified[0].MerchantOrderID)
}

func TestVerifyIsIdempotent(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Insert(&models.Payment{
		MerchantOrderID: "FEE-ABC",
		GatewayOrderID:  "plink_123",
		Amount:          5000,
		Status:          models.PaymentStatusPending,
	}))

	gw := &stubGateway{response: map[string]interface{}{"state": "COMPLETED", "transactionId": "T123"}}
	svc := &PaymentService{store: store, gw: gw}

	_, err := svc.Verify("FEE-ABC", "")
	require.NoError(t, err)
	assert.Equal(t, 1, store.updates)

	// A second observation of the terminal state changes nothing
	result, err := svc.Verify("FEE-ABC", "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, result.PaymentStatus)
	assert.Equal(t, 1, store.updates)
}

func TestVerifyFailedPayment(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Insert(&models.Payment{
		MerchantOrderID: "FEE-ABC",
		GatewayOrderID:  "plink_123",
		Amount:          5000,
		Status:          models.PaymentStatusPending,
	}))

	gw := &stubGateway{response: map[string]interface{}{"state": "FAILED"}}
	svc := &PaymentService{store: store, gw: gw, notify: func(p *models.Payment) {
		t.Error("no receipt should go out for a failed payment")
	}}

	result, err := svc.Verify("FEE-ABC", "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, result.PaymentStatus)
	assert.Empty(t, result.TransactionID)

	stored, _ := store.FindByMerchantOrderID("FEE-ABC")
	assert.Equal(t, models.PaymentStatusFailed, stored.Status)
}

func TestVerifyTransientErrorLeavesRecordUntouched(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Insert(&models.Payment{
		MerchantOrderID: "FEE-ABC",
		GatewayOrderID:  "plink_123",
		Amount:          5000,
		Status:          models.PaymentStatusPending,
	}))

	gw := &stubGateway{fetchErr: fmt.Errorf("connection refused")}
	svc := &PaymentService{store: store, gw: gw}

	_, err := svc.Verify("FEE-ABC", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGatewayUnreachable))

	stored, _ := store.FindByMerchantOrderID("FEE-ABC")
	assert.Equal(t, models.PaymentStatusPending, stored.Status)
	assert.Equal(t, 0, store.updates)
}

func TestVerifyUnknownResponseStaysPending(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Insert(&models.Payment{
		MerchantOrderID: "FEE-ABC",
		GatewayOrderID:  "plink_123",
		Amount:          5000,
		Status:          models.PaymentStatusPending,
	}))

	gw := &stubGateway{response: map[string]interface{}{"status": "processing"}}
	svc := &PaymentService{store: store, gw: gw}

	result, err := svc.Verify("FEE-ABC", "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, result.PaymentStatus)
	assert.Equal(t, 0, store.updates)
}

func TestVerifySkipsManualPayments(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Insert(&models.Payment{
		MerchantOrderID: "FEE-MANUAL",
		Amount:          1200,
		Status:          models.PaymentStatusPendingVerification,
	}))

	gw := &stubGateway{response: map[string]interface{}{"state": "COMPLETED"}}
	svc := &PaymentService{store: store, gw: gw}

	result, err := svc.Verify("FEE-MANUAL", "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPendingVerification, result.PaymentStatus)
	assert.Equal(t, 1200.0, result.Amount)

	// The gateway is never asked about a manually submitted proof
	assert.Equal(t, 0, gw.fetchCalls)
}

func TestVerifyByGatewayOrderID(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Insert(&models.Payment{
		MerchantOrderID: "FEE-ABC",
		GatewayOrderID:  "plink_123",
		Amount:          5000,
		Status:          models.PaymentStatusPending,
	}))

	gw := &stubGateway{response: map[string]interface{}{"state": "COMPLETED", "transactionId": "T9"}}
	svc := &PaymentService{store: store, gw: gw}

	result, err := svc.Verify("", "plink_123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, result.PaymentStatus)

	stored, _ := store.FindByMerchantOrderID("FEE-ABC")
	assert.Equal(t, models.PaymentStatusCompleted, stored.Status)
}

func TestVerifyWithoutLocalRecordStillReports(t *testing.T) {
	store := newFakeStore()
	gw := &stubGateway{response: map[string]interface{}{"state": "COMPLETED", "transactionId": "T77"}}
	svc := &PaymentService{store: store, gw: gw}

	result, err := svc.Verify("FEE-UNKNOWN", "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, result.PaymentStatus)
	assert.Equal(t, "T77", result.TransactionID)
}

func TestVerifyRequiresAnOrderID(t *testing.T) {
	svc := &PaymentService{store: newFakeStore(), gw: &stubGateway{}}
	_, err := svc.Verify("", "")
	require.Error(t, err)
}

func TestCreateOrderRecordsPendingPayment(t *testing.T) {
	store := newFakeStore()
	gw := &stubGateway{gatewayID: "plink_new"}
	svc := NewPaymentService(store, gw)

	result, err := svc.CreateOrder(CreateOrderInput{
		Amount:       5000.50,
		FeeType:      "tuition",
		ClassName:    "5",
		AcademicYear: "2026-27",
		Email:        "parent@example.com",
	})
	require.NoError(t, err)

	// Rupees are converted to paise for the gateway
	assert.Equal(t, int64(500050), gw.lastPaise)
	assert.True(t, strings.HasPrefix(result.MerchantOrderID, "FEE-"))
	assert.Equal(t, "plink_new", result.GatewayOrderID)
	assert.NotEmpty(t, result.RedirectURL)

	stored, _ := store.FindByMerchantOrderID(result.MerchantOrderID)
	require.NotNil(t, stored)
	assert.Equal(t, models.PaymentStatusPending, stored.Status)
	assert.Equal(t, "plink_new", stored.GatewayOrderID)
	assert.Equal(t, 5000.50, stored.Amount)
}

func TestCreateOrderGatewayFailureRecordsNothing(t *testing.T) {
	store := newFakeStore()
	gw := &stubGateway{createErr: errors.New("gateway down")}
	svc := NewPaymentService(store, gw)

	_, err := svc.CreateOrder(CreateOrderInput{Amount: 100, FeeType: "exam", ClassName: "3", AcademicYear: "2026-27"})
	require.Error(t, err)
	assert.Empty(t, store.payments)
}
