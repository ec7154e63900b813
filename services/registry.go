package services

import "github.com/Nikhil-527/VidyaSetu/gateway"

var defaultPaymentService *PaymentService

// InitPaymentService wires the process-wide payment service. Called once
// at startup after the database and gateway client exist.
func InitPaymentService(store PaymentStore, gw gateway.Client) {
	defaultPaymentService = NewPaymentService(store, gw)
}

// Payments returns the process-wide payment service
func Payments() *PaymentService {
	return defaultPaymentService
}
