package controllers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/repository"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>Fee Receipt - {{.Payment.MerchantOrderID}}</title>
	<style>
		body { font-family: Arial, sans-serif; margin: 40px; color: #222; }
		.receipt { border: 1px solid #ccc; padding: 24px; max-width: 640px; }
		h1 { font-size: 22px; margin-bottom: 0; }
		.muted { color: #666; font-size: 13px; }
		table { border-collapse: collapse; margin-top: 16px; width: 100%; }
		td { padding: 6px 10px; border-bottom: 1px solid #eee; }
		td:first-child { font-weight: bold; width: 40%; }
		.status { text-transform: uppercase; color: #188038; font-weight: bold; }
	</style>
</head>
<body>
	<div class="receipt">
		<h1>{{.SchoolName}}</h1>
		<p class="muted">Fee Payment Receipt</p>
		<table>
			<tr><td>Receipt No.</td><td>{{.Payment.MerchantOrderID}}</td></tr>
			<tr><td>Student</td><td>{{.Payment.StudentName}}</td></tr>
			<tr><td>Class</td><td>{{.Payment.ClassName}} ({{.Payment.AcademicYear}})</td></tr>
			<tr><td>Fee Type</td><td>{{.Payment.FeeType}}</td></tr>
			<tr><td>Amount</td><td>{{.Payment.Currency}} {{printf "%.2f" .Payment.Amount}}</td></tr>
			<tr><td>Payment Method</td><td>{{.Payment.PaymentMethod}}</td></tr>
			<tr><td>Transaction ID</td><td>{{.Payment.TransactionID}}</td></tr>
			<tr><td>Date</td><td>{{.TxnDate}}</td></tr>
			<tr><td>Status</td><td class="status">{{.Payment.Status}}</td></tr>
		</table>
		<p class="muted">This is a computer generated receipt and does not require a signature.</p>
	</div>
</body>
</html>`))

func loadCompletedPayment(c *gin.Context) *models.Payment {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid payment ID", nil)
		return nil
	}

	repo := repository.NewPaymentRepository(config.DB)
	payment, err := repo.FindByID(uint(id))
	if err != nil {
		utils.InternalServerError(c, "Failed to look up payment", nil)
		return nil
	}
	if payment == nil {
		utils.NotFound(c, "Payment not found")
		return nil
	}
	if payment.Status != models.PaymentStatusCompleted {
		utils.BadRequest(c, "Receipt is only available for completed payments", nil)
		return nil
	}
	return payment
}

// RenderReceipt serves the server-rendered HTML receipt page.
func RenderReceipt(c *gin.Context) {
	payment := loadCompletedPayment(c)
	if payment == nil {
		return
	}

	txnDate := ""
	if payment.TransactionDate != nil {
		txnDate = payment.TransactionDate.Format("02 Jan 2006 15:04")
	}

	var buf bytes.Buffer
	err := receiptTemplate.Execute(&buf, gin.H{
		"SchoolName": utils.SchoolName,
		"Payment":    payment,
		"TxnDate":    txnDate,
	})
	if err != nil {
		utils.LogError("Failed to render receipt for payment %d: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to render receipt", nil)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// DownloadReceiptPDF generates and returns a PDF receipt.
func DownloadReceiptPDF(c *gin.Context) {
	payment := loadCompletedPayment(c)
	if payment == nil {
		return
	}
	utils.LogInfo("Generating PDF receipt for payment %d", payment.ID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.SchoolName)
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Sector 14, Gurugram, Haryana")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: office@sunrisepublicschool.in | Phone: +91-124-4567890")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "FEE RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	rows := [][2]string{
		{"Receipt No.", payment.MerchantOrderID},
		{"Student", payment.StudentName},
		{"Class", payment.ClassName + " (" + payment.AcademicYear + ")"},
		{"Fee Type", payment.FeeType},
		{"Amount", fmt.Sprintf("%s %.2f", payment.Currency, payment.Amount)},
		{"Payment Method", payment.PaymentMethod},
		{"Transaction ID", payment.TransactionID},
	}
	if payment.TransactionDate != nil {
		rows = append(rows, [2]string{"Date", payment.TransactionDate.Format("02 Jan 2006 15:04")})
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(120, 8, row[1], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 11)
	pdf.Cell(0, 10, "This is a computer generated receipt and does not require a signature.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate PDF receipt for payment %d: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to generate receipt", nil)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=receipt_"+payment.MerchantOrderID+".pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
