package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

var smsClient = &http.Client{Timeout: 10 * time.Second}

// SendSMS delivers a text message through the configured HTTP SMS provider.
// Delivery is best-effort; callers log failures and move on.
func SendSMS(phone, message string) error {
	apiKey := os.Getenv("SMS_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("SMS provider not configured")
	}

	endpoint := os.Getenv("SMS_API_URL")
	if endpoint == "" {
		endpoint = "https://www.fast2sms.com/dev/bulkV2"
	}

	form := url.Values{}
	form.Set("route", "q")
	form.Set("numbers", phone)
	form.Set("message", message)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("authorization", apiKey)

	resp, err := smsClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("SMS provider returned status %d", resp.StatusCode)
	}
	return nil
}

// SendOTPSMS texts a verification OTP
func SendOTPSMS(phone, otp string) error {
	return SendSMS(phone, fmt.Sprintf("%s: your verification OTP is %s. Valid for 10 minutes.", AppName, otp))
}
