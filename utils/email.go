package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"

	"github.com/Nikhil-527/VidyaSetu/models"
	"gopkg.in/gomail.v2"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func emailConfigFromEnv() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendEmail sends an HTML email using SMTP
func SendEmail(to, subject, body string) error {
	cfg := emailConfigFromEnv()

	message := fmt.Sprintf("Subject: %s\r\n"+
		"To: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s", subject, to, body)

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	if err := smtp.SendMail(addr, auth, cfg.Username, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendOTP sends a verification OTP via email
func SendOTP(to, otp string) error {
	cfg := emailConfigFromEnv()

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your "+AppName+" Verification OTP")

	body := fmt.Sprintf(`
		<h2>Welcome to %s!</h2>
		<p>Please use the following OTP to verify your email address:</p>
		<h1 style="color: #1a73e8; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This OTP will expire in 10 minutes.</p>
		<p>If you didn't request this OTP, please ignore this email.</p>
	`, AppName, otp)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendReceiptEmail mails a fee payment receipt for a completed payment.
// Callers treat a send failure as non-fatal.
func SendReceiptEmail(payment *models.Payment) error {
	if payment.Email == "" {
		return fmt.Errorf("payment %s has no payer email", payment.MerchantOrderID)
	}

	txnDate := ""
	if payment.TransactionDate != nil {
		txnDate = payment.TransactionDate.Format("02 Jan 2006 15:04")
	}

	subject := fmt.Sprintf("Fee Payment Receipt - %s", payment.MerchantOrderID)
	body := fmt.Sprintf(`
		<h2>%s</h2>
		<p>Dear Parent,</p>
		<p>We have received your payment. Details below:</p>
		<table cellpadding="6" style="border-collapse: collapse;">
			<tr><td><b>Receipt No.</b></td><td>%s</td></tr>
			<tr><td><b>Student</b></td><td>%s</td></tr>
			<tr><td><b>Class</b></td><td>%s (%s)</td></tr>
			<tr><td><b>Fee Type</b></td><td>%s</td></tr>
			<tr><td><b>Amount</b></td><td>%s %.2f</td></tr>
			<tr><td><b>Transaction ID</b></td><td>%s</td></tr>
			<tr><td><b>Date</b></td><td>%s</td></tr>
		</table>
		<p>You can download the receipt anytime from the parent portal.</p>
		<p>Regards,<br>%s</p>
	`, SchoolName, payment.MerchantOrderID, payment.StudentName,
		payment.ClassName, payment.AcademicYear, payment.FeeType,
		payment.Currency, payment.Amount, payment.TransactionID, txnDate,
		SchoolName)

	return SendEmail(payment.Email, subject, body)
}

// SendAdmissionStatusEmail notifies an applicant about an admission decision
func SendAdmissionStatusEmail(to, applicationNo, studentName, status string) error {
	subject := fmt.Sprintf("Admission Application %s - Update", applicationNo)
	body := fmt.Sprintf(`
		<h2>%s</h2>
		<p>Dear Parent,</p>
		<p>The status of admission application <b>%s</b> for <b>%s</b> is now: <b>%s</b>.</p>
		<p>Please log in to the portal for details and next steps.</p>
		<p>Regards,<br>%s Admissions Office</p>
	`, SchoolName, applicationNo, studentName, status, SchoolName)

	return SendEmail(to, subject, body)
}
