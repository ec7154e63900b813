package services

import (
	"fmt"
	"strings"
)

// The provider's response shape has drifted across API versions: the
// order state has been seen under several field names and spellings.
// Decoding is permissive on the success side only; anything that is not
// an explicitly recognized success or failure token stays pending. A
// missing or unknown field is never treated as success.
var (
	stateFields   = []string{"state", "orderState", "status", "orderStatus"}
	codeFields    = []string{"code", "responseCode"}
	messageFields = []string{"message", "responseMessage"}

	successStates = tokenSet("COMPLETED", "PAID", "SUCCESS")
	failureStates = tokenSet("FAILED")

	successCodes = tokenSet("SUCCESS", "0", "PAYMENT_SUCCESS")
	failureCodes = tokenSet("FAILED", "1")

	successMessages = tokenSet("SUCCESS", "PAYMENT_SUCCESS")
	failureMessages = tokenSet("FAILED", "PAYMENT_FAILED")
)

func tokenSet(tokens ...string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// DecodeOrderState maps a raw gateway response to the closed order state
// enum. Field lists are walked in priority order; the first recognized
// token wins.
func DecodeOrderState(raw map[string]interface{}) OrderState {
	if raw == nil {
		return OrderStatePending
	}

	if state, ok := matchFields(raw, stateFields, successStates, failureStates); ok {
		return state
	}
	if state, ok := matchFields(raw, codeFields, successCodes, failureCodes); ok {
		return state
	}
	if state, ok := matchFields(raw, messageFields, successMessages, failureMessages); ok {
		return state
	}

	return OrderStatePending
}

func matchFields(raw map[string]interface{}, fields []string, success, failure map[string]bool) (OrderState, bool) {
	for _, field := range fields {
		value, present := raw[field]
		if !present || value == nil {
			continue
		}
		token := strings.ToUpper(strings.TrimSpace(stringify(value)))
		if success[token] {
			return OrderStateCompleted, true
		}
		if failure[token] {
			return OrderStateFailed, true
		}
	}
	return OrderStatePending, false
}

// stringify renders scalar JSON values as comparable tokens. Numeric
// codes arrive as float64 from JSON decoding.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// extractTransactionID picks the transaction reference for a completed
// payment: an explicit transaction id if present, else the gateway's own
// order id from the response, else the id the status request was made
// with.
func extractTransactionID(raw map[string]interface{}, requestedID string) string {
	for _, field := range []string{"transactionId", "transaction_id", "txnId"} {
		if v := firstNonEmpty(raw, field); v != "" {
			return v
		}
	}
	for _, field := range []string{"orderId", "order_id", "id"} {
		if v := firstNonEmpty(raw, field); v != "" {
			return v
		}
	}
	return requestedID
}

// extractPaymentMethod returns the reported payment instrument, tagged
// with the gateway name when the response does not say.
func extractPaymentMethod(raw map[string]interface{}) string {
	for _, field := range []string{"paymentMethod", "payment_method", "method"} {
		if v := firstNonEmpty(raw, field); v != "" {
			return strings.ToUpper(v)
		}
	}
	return "RAZORPAY"
}

func firstNonEmpty(raw map[string]interface{}, field string) string {
	value, present := raw[field]
	if !present || value == nil {
		return ""
	}
	s := strings.TrimSpace(stringify(value))
	if s == "" || s == "<nil>" {
		return ""
	}
	return s
}

// amountFromResponse converts the gateway's minor-unit amount to rupees.
func amountFromResponse(raw map[string]interface{}) (float64, bool) {
	for _, field := range []string{"amount", "amountPaise", "amount_paid"} {
		value, present := raw[field]
		if !present || value == nil {
			continue
		}
		if paise, ok := value.(float64); ok {
			return paise / 100, true
		}
		if paise, ok := value.(int64); ok {
			return float64(paise) / 100, true
		}
		if paise, ok := value.(int); ok {
			return float64(paise) / 100, true
		}
	}
	return 0, false
}
