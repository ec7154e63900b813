package utils

// Application constants
const (
	// Application name
	AppName = "VidyaSetu"

	// School shown on receipts and reports
	SchoolName = "Sunrise Public School"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Currency for all fee payments
	Currency = "INR"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// OTP expiration (10 minutes)
	OTPExpiration = "10m"

	// Maximum file size for uploads (5MB)
	MaxFileSize = 5 * 1024 * 1024

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum password length
	MinPasswordLength = 8
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserBlocked        = "Your account has been blocked"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"

	ErrInvalidEmail    = "Invalid email format"
	ErrInvalidPhone    = "Invalid phone number format"
	ErrInvalidAmount   = "Amount must be greater than 0"
	ErrInvalidFeeType  = "Unknown fee type"
	ErrInvalidFileType = "Invalid file type. Allowed types: jpg, jpeg, png, gif"
	ErrFileTooLarge    = "File size exceeds 5MB limit"

	ErrRecordNotFound = "Record not found"
	ErrInternalServer = "Internal server error"
)

// Success messages
const (
	MsgLoginSuccess    = "Login successful"
	MsgLogoutSuccess   = "Logout successful"
	MsgRegisterSuccess = "Registration successful"
	MsgOTPSent         = "OTP sent successfully"
	MsgOTPVerified     = "OTP verified successfully"

	MsgCreateSuccess = "Created successfully"
	MsgUpdateSuccess = "Updated successfully"
	MsgDeleteSuccess = "Deleted successfully"
	MsgUploadSuccess = "File uploaded successfully"
)
