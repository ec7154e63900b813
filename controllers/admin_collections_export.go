package controllers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
)

type collectionsSummary struct {
	TotalPayments  int
	TotalCollected float64
	TotalPending   float64
	TotalFailed    int
	ByFeeType      map[string]float64
	AveragePayment float64
}

func collectionsPeriod(c *gin.Context) (string, time.Time, time.Time, bool) {
	period := c.DefaultQuery("period", "day")
	now := time.Now()
	var startDate, endDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, 0, -6)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	case "month":
		startDate = now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		endDate = now.Add(24 * time.Hour)
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return "", time.Time{}, time.Time{}, false
	}
	return period, startDate, endDate, true
}

func fetchCollections(c *gin.Context, startDate, endDate time.Time) ([]models.Payment, bool) {
	query := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Order("created_at DESC")
	if year := c.Query("academic_year"); year != "" {
		query = query.Where("academic_year = ?", year)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return nil, false
	}
	return payments, true
}

func summarizeCollections(payments []models.Payment) collectionsSummary {
	summary := collectionsSummary{ByFeeType: make(map[string]float64)}
	for _, p := range payments {
		summary.TotalPayments++
		switch p.Status {
		case models.PaymentStatusCompleted:
			summary.TotalCollected += p.Amount
			summary.ByFeeType[p.FeeType] += p.Amount
		case models.PaymentStatusPending, models.PaymentStatusPendingVerification:
			summary.TotalPending += p.Amount
		case models.PaymentStatusFailed:
			summary.TotalFailed++
		}
	}
	if summary.TotalPayments > 0 {
		summary.AveragePayment = math.Round((summary.TotalCollected/float64(summary.TotalPayments))*100) / 100
	}
	summary.TotalCollected = math.Round(summary.TotalCollected*100) / 100
	summary.TotalPending = math.Round(summary.TotalPending*100) / 100
	return summary
}

// Admin: Download fee collections report as Excel
func DownloadCollectionsExcel(c *gin.Context) {
	utils.LogInfo("DownloadCollectionsExcel called")

	period, startDate, endDate, ok := collectionsPeriod(c)
	if !ok {
		return
	}
	payments, ok := fetchCollections(c, startDate, endDate)
	if !ok {
		return
	}
	utils.LogDebug("Retrieved %d payments for Excel report", len(payments))
	summary := summarizeCollections(payments)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Fee Collections")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	headerLines := []string{
		strings.ToUpper(utils.SchoolName) + " - Fee Collections Report",
		"Sector 14, Gurugram, Haryana",
		"Email: office@sunrisepublicschool.in",
		"Phone: +91-124-4567890",
		"Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"),
	}
	for _, line := range headerLines {
		sheet.AddRow().AddCell().SetString(line)
	}
	sheet.AddRow() // spacing

	headers := []string{"Receipt No.", "Student", "Class", "Fee Type", "Amount", "Method", "Transaction ID", "Date", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, p := range payments {
		row := sheet.AddRow()
		row.AddCell().SetString(p.MerchantOrderID)
		row.AddCell().SetString(p.StudentName)
		row.AddCell().SetString(p.ClassName)
		row.AddCell().SetString(p.FeeType)
		row.AddCell().SetFloat(p.Amount)
		row.AddCell().SetString(p.PaymentMethod)
		row.AddCell().SetString(p.TransactionID)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(p.Status)
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Payments", fmt.Sprintf("%d", summary.TotalPayments)},
		{"Total Collected", fmt.Sprintf("%.2f", summary.TotalCollected)},
		{"Pending Amount", fmt.Sprintf("%.2f", summary.TotalPending)},
		{"Failed Payments", fmt.Sprintf("%d", summary.TotalFailed)},
		{"Avg. Payment", fmt.Sprintf("%.2f", summary.AveragePayment)},
	}
	for feeType, amount := range summary.ByFeeType {
		summaryData = append(summaryData, []string{"Collected (" + feeType + ")", fmt.Sprintf("%.2f", amount)})
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=fee_collections_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel report for period %s", period)
}

// Admin: Download fee collections report as PDF
func DownloadCollectionsPDF(c *gin.Context) {
	utils.LogInfo("DownloadCollectionsPDF called")

	period, startDate, endDate, ok := collectionsPeriod(c)
	if !ok {
		return
	}
	payments, ok := fetchCollections(c, startDate, endDate)
	if !ok {
		return
	}
	utils.LogDebug("Retrieved %d payments for PDF report", len(payments))
	summary := summarizeCollections(payments)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, strings.ToUpper(utils.SchoolName)+" - Fee Collections Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Sector 14, Gurugram, Haryana")
	pdf.Ln(6)
	pdf.Cell(0, 8, "Email: office@sunrisepublicschool.in | Phone: +91-124-4567890")
	pdf.Ln(6)
	pdf.Cell(0, 8, "Period: "+strings.ToUpper(period)+" | "+startDate.Format("2006-01-02")+" to "+endDate.Format("2006-01-02"))
	pdf.Ln(10)

	headers := []string{"Receipt No.", "Student", "Class", "Fee Type", "Amount", "Method", "Transaction ID", "Date", "Status"}
	colWidths := []float64{42, 40, 20, 25, 25, 25, 40, 32, 28}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, p := range payments {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, p.MerchantOrderID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, p.StudentName, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, p.ClassName, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, p.FeeType, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, fmt.Sprintf("%.2f", p.Amount), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, p.PaymentMethod, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, p.TransactionID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[7], 8, p.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[8], 8, p.Status, "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(70, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	pdf.SetFillColor(255, 255, 255)

	summaryRows := [][2]string{
		{"Total Payments", fmt.Sprintf("%d", summary.TotalPayments)},
		{"Total Collected", fmt.Sprintf("%.2f", summary.TotalCollected)},
		{"Pending Amount", fmt.Sprintf("%.2f", summary.TotalPending)},
		{"Failed Payments", fmt.Sprintf("%d", summary.TotalFailed)},
		{"Avg. Payment", fmt.Sprintf("%.2f", summary.AveragePayment)},
	}
	for _, row := range summaryRows {
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, row[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=fee_collections_%s.pdf", period))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated PDF report for period %s", period)
}
