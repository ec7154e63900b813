package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nikhil-527/VidyaSetu/gateway"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	payments []*models.Payment
}

func (s *memStore) Insert(p *models.Payment) error {
	p.ID = uint(len(s.payments) + 1)
	s.payments = append(s.payments, p)
	return nil
}

func (s *memStore) FindByMerchantOrderID(id string) (*models.Payment, error) {
	for _, p := range s.payments {
		if p.MerchantOrderID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByGatewayOrderID(id string) (*models.Payment, error) {
	for _, p := range s.payments {
		if p.GatewayOrderID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *memStore) UpdateStatusByOrderID(orderID string, fields map[string]interface{}) (*models.Payment, error) {
	for _, p := range s.payments {
		if p.MerchantOrderID == orderID || p.GatewayOrderID == orderID {
			if v, ok := fields["status"].(string); ok {
				p.Status = v
			}
			return p, nil
		}
	}
	return nil, nil
}

type memGateway struct {
	response   map[string]interface{}
	fetchErr   error
	createErr  error
	createHits int
}

func (g *memGateway) CreateOrder(amountPaise int64, referenceID, redirectURL string, notes map[string]interface{}, expireBy time.Time) (*gateway.OrderResult, error) {
	g.createHits++
	if g.createErr != nil {
		return nil, g.createErr
	}
	return &gateway.OrderResult{GatewayOrderID: "plink_test", RedirectURL: "https://rzp.io/i/test"}, nil
}

func (g *memGateway) FetchOrderStatus(gatewayOrderID string) (map[string]interface{}, error) {
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	return g.response, nil
}

func paymentTestRouter(store *memStore, gw *memGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	services.InitPaymentService(store, gw)
	router := gin.New()
	router.POST("/payments/create-order", CreatePaymentOrder)
	router.POST("/payments/verify", VerifyPayment)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentOrder(t *testing.T) {
	store := &memStore{}
	gw := &memGateway{}
	router := paymentTestRouter(store, gw)

	w := postJSON(router, "/payments/create-order", gin.H{
		"amount":        2500.0,
		"fee_type":      "tuition",
		"class_name":    "7",
		"academic_year": "2026-27",
		"student_name":  "Aarav Sharma",
		"email":         "parent@example.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Data services.CreateOrderResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "plink_test", resp.Data.GatewayOrderID)
	assert.Equal(t, "https://rzp.io/i/test", resp.Data.RedirectURL)
	assert.Contains(t, resp.Data.MerchantOrderID, "FEE-")

	require.Len(t, store.payments, 1)
	assert.Equal(t, models.PaymentStatusPending, store.payments[0].Status)
}

func TestCreatePaymentOrderValidation(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{"negative amount", gin.H{"amount": -10.0, "fee_type": "tuition", "class_name": "7", "academic_year": "2026-27"}},
		{"zero amount", gin.H{"amount": 0.0, "fee_type": "tuition", "class_name": "7", "academic_year": "2026-27"}},
		{"unknown fee type", gin.H{"amount": 100.0, "fee_type": "bribe", "class_name": "7", "academic_year": "2026-27"}},
		{"missing class", gin.H{"amount": 100.0, "fee_type": "tuition", "academic_year": "2026-27"}},
		{"bad academic year", gin.H{"amount": 100.0, "fee_type": "tuition", "class_name": "7", "academic_year": "junk"}},
		{"bad email", gin.H{"amount": 100.0, "fee_type": "tuition", "class_name": "7", "academic_year": "2026-27", "email": "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{}
			gw := &memGateway{}
			router := paymentTestRouter(store, gw)

			w := postJSON(router, "/payments/create-order", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			// Rejected requests never reach the gateway
			assert.Equal(t, 0, gw.createHits)
			assert.Empty(t, store.payments)
		})
	}
}

func TestCreatePaymentOrderGatewayDown(t *testing.T) {
	store := &memStore{}
	gw := &memGateway{createErr: gateway.ErrUnavailable}
	router := paymentTestRouter(store, gw)

	w := postJSON(router, "/payments/create-order", gin.H{
		"amount":        100.0,
		"fee_type":      "exam",
		"class_name":    "3",
		"academic_year": "2026-27",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, store.payments)
}

func TestVerifyPaymentTransientFailure(t *testing.T) {
	store := &memStore{}
	store.Insert(&models.Payment{
		MerchantOrderID: "FEE-ABC",
		GatewayOrderID:  "plink_test",
		Amount:          100,
		Status:          models.PaymentStatusPending,
	})
	gw := &memGateway{fetchErr: errors.New("timeout")}
	router := paymentTestRouter(store, gw)

	w := postJSON(router, "/payments/verify", gin.H{"order_id": "FEE-ABC"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "retry")
	// The record stays pending; a status check failure is not a failed payment
	assert.Equal(t, models.PaymentStatusPending, store.payments[0].Status)
}

func TestVerifyPaymentCompleted(t *testing.T) {
	store := &memStore{}
	store.Insert(&models.Payment{
		MerchantOrderID: "FEE-ABC",
		GatewayOrderID:  "plink_test",
		Amount:          100,
		Status:          models.PaymentStatusPending,
	})
	gw := &memGateway{response: map[string]interface{}{"state": "COMPLETED", "transactionId": "T1"}}
	router := paymentTestRouter(store, gw)

	w := postJSON(router, "/payments/verify", gin.H{"order_id": "FEE-ABC"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PaymentStatusCompleted, store.payments[0].Status)
}

func TestVerifyPaymentRequiresOrderID(t *testing.T) {
	router := paymentTestRouter(&memStore{}, &memGateway{})
	w := postJSON(router, "/payments/verify", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
