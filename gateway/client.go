// Package gateway wraps the Razorpay SDK behind a small client interface.
// It creates payment-link orders and fetches raw order status; mapping the
// provider's status vocabulary to local payment states is the caller's job.
package gateway

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

var (
	// ErrUnavailable means the provider could not be reached. Callers
	// treat this as transient and retry.
	ErrUnavailable = errors.New("payment gateway unavailable")
	// ErrRejected means the provider understood and refused the request.
	ErrRejected = errors.New("payment gateway rejected the request")
)

// OrderResult is the outcome of a successful order creation.
type OrderResult struct {
	GatewayOrderID string
	RedirectURL    string
}

// Client is the payment provider surface the rest of the app depends on.
type Client interface {
	// CreateOrder registers a payable order and returns the gateway's id
	// for it plus the hosted page the payer should be redirected to.
	CreateOrder(amountPaise int64, referenceID, redirectURL string, notes map[string]interface{}, expireBy time.Time) (*OrderResult, error)
	// FetchOrderStatus returns the provider's raw response for an order.
	// No normalization happens here; field names and values vary across
	// provider API versions.
	FetchOrderStatus(gatewayOrderID string) (map[string]interface{}, error)
}

type razorpayClient struct {
	rz *razorpay.Client
}

// New builds a Client with the given credentials.
func New(key, secret string) Client {
	return &razorpayClient{rz: razorpay.NewClient(key, secret)}
}

var (
	defaultClient Client
	defaultOnce   sync.Once
)

// Default returns the process-wide client, built once from the
// environment on first use and injected into services at startup.
func Default() Client {
	defaultOnce.Do(func() {
		defaultClient = New(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	})
	return defaultClient
}

func (c *razorpayClient) CreateOrder(amountPaise int64, referenceID, redirectURL string, notes map[string]interface{}, expireBy time.Time) (*OrderResult, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"reference_id":    referenceID,
		"callback_url":    redirectURL,
		"callback_method": "get",
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}
	if !expireBy.IsZero() {
		data["expire_by"] = expireBy.Unix()
	}

	link, err := c.rz.PaymentLink.Create(data, nil)
	if err != nil {
		return nil, classify(err)
	}

	id := fmt.Sprintf("%v", link["id"])
	shortURL := fmt.Sprintf("%v", link["short_url"])
	if id == "" || id == "<nil>" {
		return nil, fmt.Errorf("%w: response missing order id", ErrRejected)
	}

	return &OrderResult{GatewayOrderID: id, RedirectURL: shortURL}, nil
}

func (c *razorpayClient) FetchOrderStatus(gatewayOrderID string) (map[string]interface{}, error) {
	link, err := c.rz.PaymentLink.Fetch(gatewayOrderID, nil, nil)
	if err != nil {
		return nil, classify(err)
	}
	return link, nil
}

// classify separates cannot-reach-the-provider failures from
// provider-said-no failures.
func classify(err error) error {
	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrRejected, err)
}
