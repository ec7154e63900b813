package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	valid, _ := ValidateEmail("parent@example.com")
	assert.True(t, valid)

	for _, email := range []string{"", "plainaddress", "a@b", "user@.com", "user @example.com"} {
		valid, msg := ValidateEmail(email)
		assert.False(t, valid, "email %q should be rejected", email)
		assert.NotEmpty(t, msg)
	}
}

func TestValidatePassword(t *testing.T) {
	valid, _ := ValidatePassword("Parent@123")
	assert.True(t, valid)

	tests := []struct {
		password string
		reason   string
	}{
		{"Pa@1", "too short"},
		{"parent@123", "no uppercase"},
		{"PARENT@123", "no lowercase"},
		{"Parentpass@", "no number"},
		{"Parentpass1", "no special character"},
	}
	for _, tt := range tests {
		valid, msg := ValidatePassword(tt.password)
		assert.False(t, valid, "password %q should be rejected (%s)", tt.password, tt.reason)
		assert.NotEmpty(t, msg)
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9876543210", "9876543210"},
		{"09876543210", "9876543210"},
		{"919876543210", "9876543210"},
		{"+91 98765 43210", "9876543210"},
		{"98765-43210", "9876543210"},
	}
	for _, tt := range tests {
		got, err := FormatPhoneNumber(tt.in)
		require.NoError(t, err, "phone %q", tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, phone := range []string{"", "12345", "1234567890", "5876543210", "98765432101234"} {
		_, err := FormatPhoneNumber(phone)
		assert.Error(t, err, "phone %q should be rejected", phone)
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(1))
	assert.NoError(t, ValidateAmount(5000.50))
	assert.Error(t, ValidateAmount(0))
	assert.Error(t, ValidateAmount(-10))
}

func TestValidateFeeType(t *testing.T) {
	for _, feeType := range []string{"admission", "tuition", "transport", "exam", "annual", "other", "TUITION", " exam "} {
		assert.NoError(t, ValidateFeeType(feeType), "fee type %q", feeType)
	}
	for _, feeType := range []string{"", "library", "hostel"} {
		assert.Error(t, ValidateFeeType(feeType), "fee type %q should be rejected", feeType)
	}
}

func TestValidateAcademicYear(t *testing.T) {
	assert.NoError(t, ValidateAcademicYear("2026-27"))
	assert.NoError(t, ValidateAcademicYear("2030-31"))
	for _, year := range []string{"", "2026", "26-27", "2026/27", "1999-00"} {
		assert.Error(t, ValidateAcademicYear(year), "year %q should be rejected", year)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("hello"))
	assert.NotContains(t, SanitizeString(`<script>alert("x")</script>`), "<script>")
}

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	require.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9', "OTP %q should be numeric", otp)
	}
}
