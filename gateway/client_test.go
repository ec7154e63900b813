package gateway

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "dial tcp: i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	err := classify(timeoutError{})
	assert.True(t, errors.Is(err, ErrUnavailable))

	err = classify(&url.Error{Op: "Post", URL: "https://api.razorpay.com", Err: fmt.Errorf("connection refused")})
	assert.True(t, errors.Is(err, ErrUnavailable))

	err = classify(fmt.Errorf("BAD_REQUEST_ERROR: amount exceeds maximum"))
	assert.True(t, errors.Is(err, ErrRejected))
	assert.False(t, errors.Is(err, ErrUnavailable))
}
