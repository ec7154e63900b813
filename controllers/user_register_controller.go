package controllers

import (
	"time"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
}

// RegistrationData is the pending registration held in the session until
// the OTP is verified. Registered with gob in main.
type RegistrationData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	OTP        string `json:"otp"`
	OTPExpires int64  `json:"otp_expires"`
}

// RegisterUser validates a registration request, parks it in the session
// and sends an OTP to the email and phone provided.
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Please check your input data and ensure all required fields are provided correctly.")
		return
	}

	utils.LogInfo("Registration attempt for email: %s", req.Email)

	if valid, msg := utils.ValidateName(req.Name); !valid {
		utils.BadRequest(c, "Invalid name", msg)
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if req.Password != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", "Password and confirm password must be the same.")
		return
	}
	formattedPhone, err := utils.FormatPhoneNumber(req.Phone)
	if err != nil {
		utils.BadRequest(c, "Invalid phone", err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.LogError("Registration attempt for already registered email: %s", req.Email)
		utils.Conflict(c, "Email already registered", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password for email %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	otp := utils.GenerateOTP()
	data := RegistrationData{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashedPassword,
		Phone:      formattedPhone,
		OTP:        otp,
		OTPExpires: time.Now().Add(10 * time.Minute).Unix(),
	}

	session := sessions.Default(c)
	session.Set("registration", data)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save registration session for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	// OTP delivery is best-effort on the SMS side; email is the primary
	// channel.
	if err := utils.SendOTP(req.Email, otp); err != nil {
		utils.LogError("Failed to send OTP email to %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send verification OTP", nil)
		return
	}
	go func(phone, otp string) {
		if err := utils.SendOTPSMS(phone, otp); err != nil {
			utils.LogError("Failed to send OTP SMS to %s: %v", phone, err)
		}
	}(formattedPhone, otp)

	utils.LogInfo("Registration OTP sent for email: %s", req.Email)
	utils.Success(c, utils.MsgOTPSent, gin.H{"email": req.Email})
}

// VerifyRegistrationOTP completes a registration once the OTP matches.
func VerifyRegistrationOTP(c *gin.Context) {
	var req struct {
		OTP string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. OTP is required", err.Error())
		return
	}

	session := sessions.Default(c)
	val := session.Get("registration")
	if val == nil {
		utils.LogError("OTP verification without a pending registration")
		utils.BadRequest(c, "No pending registration found. Please register again", nil)
		return
	}
	data, ok := val.(RegistrationData)
	if !ok {
		utils.LogError("Invalid registration data in session")
		utils.BadRequest(c, "No pending registration found. Please register again", nil)
		return
	}

	if time.Now().Unix() > data.OTPExpires {
		utils.LogError("Expired OTP for email: %s", data.Email)
		utils.BadRequest(c, "OTP has expired. Please register again", nil)
		return
	}
	if req.OTP != data.OTP {
		utils.LogError("Wrong OTP for email: %s", data.Email)
		utils.BadRequest(c, "Invalid OTP", nil)
		return
	}

	user := models.User{
		Name:       data.Name,
		Email:      data.Email,
		Password:   data.Password,
		Phone:      data.Phone,
		IsVerified: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user for email %s: %v", data.Email, err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	session.Delete("registration")
	_ = session.Save()

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Account created but login failed. Please login", nil)
		return
	}

	utils.LogInfo("User %d registered successfully", user.ID)
	utils.Created(c, utils.MsgRegisterSuccess, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// ResendRegistrationOTP reissues the OTP for a pending registration.
func ResendRegistrationOTP(c *gin.Context) {
	session := sessions.Default(c)
	val := session.Get("registration")
	if val == nil {
		utils.BadRequest(c, "No pending registration found. Please register again", nil)
		return
	}
	data, ok := val.(RegistrationData)
	if !ok {
		utils.BadRequest(c, "No pending registration found. Please register again", nil)
		return
	}

	data.OTP = utils.GenerateOTP()
	data.OTPExpires = time.Now().Add(10 * time.Minute).Unix()
	session.Set("registration", data)
	if err := session.Save(); err != nil {
		utils.InternalServerError(c, "Failed to resend OTP", nil)
		return
	}

	if err := utils.SendOTP(data.Email, data.OTP); err != nil {
		utils.LogError("Failed to resend OTP email to %s: %v", data.Email, err)
		utils.InternalServerError(c, "Failed to send verification OTP", nil)
		return
	}

	utils.Success(c, utils.MsgOTPSent, gin.H{"email": data.Email})
}
