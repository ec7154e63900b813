package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	emailRegex        = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	academicYearRegex = regexp.MustCompile(`^20\d{2}-\d{2}$`)

	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasNumber  = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[@$!%*?&]`)
)

// FeeTypes enumerates the fee categories a payment may be recorded against.
var FeeTypes = map[string]bool{
	"admission": true,
	"tuition":   true,
	"transport": true,
	"exam":      true,
	"annual":    true,
	"other":     true,
}

// SanitizeString escapes HTML and strips tags from free-form input.
func SanitizeString(input string) string {
	sanitized := html.EscapeString(input)
	htmlTagRegex := regexp.MustCompile(`<[^>]*>`)
	return htmlTagRegex.ReplaceAllString(sanitized, "")
}

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength)
	}
	if !hasLower.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasUpper.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	if !hasSpecial.MatchString(password) {
		return false, "Password must contain at least one special character (@$!%*?&)"
	}
	return true, ""
}

// FormatPhoneNumber formats and validates an Indian phone number
func FormatPhoneNumber(phone string) (string, error) {
	phone = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if strings.HasPrefix(phone, "0") {
		phone = phone[1:]
	}
	if strings.HasPrefix(phone, "91") && len(phone) == 12 {
		phone = phone[2:]
	}

	if len(phone) != 10 {
		return "", fmt.Errorf("phone number must be exactly 10 digits")
	}
	if phone[0] < '6' || phone[0] > '9' {
		return "", fmt.Errorf("phone number must start with 6, 7, 8, or 9")
	}
	return phone, nil
}

// ValidatePhone checks if the phone number is valid. Empty is allowed;
// callers that require a phone must check for it separately.
func ValidatePhone(phone string) (bool, string) {
	if phone == "" {
		return true, ""
	}
	formatted, err := FormatPhoneNumber(phone)
	if err != nil {
		return false, err.Error()
	}
	return true, formatted
}

// ValidateName checks a person name
func ValidateName(name string) (bool, string) {
	name = strings.TrimSpace(SanitizeString(name))
	if len(name) < 2 {
		return false, "Name must be at least 2 characters long"
	}
	if matched, _ := regexp.MatchString(`[0-9!@#$%^&*(),?":{}|<>]`, name); matched {
		return false, "Name cannot contain numbers or special characters"
	}
	return true, ""
}

// ValidateAmount checks a fee amount in rupees
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	return nil
}

// ValidateFeeType checks the fee category against the enumerated set
func ValidateFeeType(feeType string) error {
	if !FeeTypes[strings.ToLower(strings.TrimSpace(feeType))] {
		return fmt.Errorf("fee type must be one of: admission, tuition, transport, exam, annual, other")
	}
	return nil
}

// ValidateAcademicYear checks a "2025-26" style academic year string
func ValidateAcademicYear(year string) error {
	if !academicYearRegex.MatchString(strings.TrimSpace(year)) {
		return fmt.Errorf("academic year must look like 2025-26")
	}
	return nil
}

// ValidateStringLength validates trimmed string length
func ValidateStringLength(str string, min, max int) error {
	length := len(strings.TrimSpace(str))
	if length < min {
		return fmt.Errorf("must be at least %d characters long", min)
	}
	if length > max {
		return fmt.Errorf("must not exceed %d characters", max)
	}
	return nil
}
