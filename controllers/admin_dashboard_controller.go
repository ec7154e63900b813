package controllers

import (
	"time"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// GetAdminDashboard returns the headline numbers for the admin panel.
func GetAdminDashboard(c *gin.Context) {
	utils.LogInfo("GetAdminDashboard called")

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var totalUsers int64
	config.DB.Model(&models.User{}).Count(&totalUsers)

	var paymentCounts []struct {
		Status string
		Count  int64
	}
	if err := config.DB.Model(&models.Payment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&paymentCounts).Error; err != nil {
		utils.LogError("Failed to aggregate payment counts: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}
	paymentsByStatus := map[string]int64{}
	for _, row := range paymentCounts {
		paymentsByStatus[row.Status] = row.Count
	}

	var collectedToday, collectedMonth float64
	config.DB.Model(&models.Payment{}).
		Where("status = ? AND updated_at >= ?", models.PaymentStatusCompleted, todayStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&collectedToday)
	config.DB.Model(&models.Payment{}).
		Where("status = ? AND updated_at >= ?", models.PaymentStatusCompleted, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&collectedMonth)

	var collectionsByFeeType []struct {
		FeeType string  `json:"fee_type"`
		Total   float64 `json:"total"`
	}
	config.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusCompleted).
		Select("fee_type, COALESCE(SUM(amount), 0) as total").
		Group("fee_type").
		Scan(&collectionsByFeeType)

	var admissionCounts []struct {
		Status string
		Count  int64
	}
	config.DB.Model(&models.Admission{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&admissionCounts)
	admissionsByStatus := map[string]int64{}
	for _, row := range admissionCounts {
		admissionsByStatus[row.Status] = row.Count
	}

	var unresolvedMessages int64
	config.DB.Model(&models.ContactMessage{}).Where("resolved = ?", false).Count(&unresolvedMessages)

	var recentPayments []models.Payment
	config.DB.Order("created_at DESC").Limit(10).Find(&recentPayments)

	utils.Success(c, "Dashboard data retrieved", gin.H{
		"total_users":             totalUsers,
		"payments_by_status":      paymentsByStatus,
		"pending_verifications":   paymentsByStatus[models.PaymentStatusPendingVerification],
		"collected_today":         collectedToday,
		"collected_this_month":    collectedMonth,
		"collections_by_fee_type": collectionsByFeeType,
		"admissions_by_status":    admissionsByStatus,
		"unresolved_messages":     unresolvedMessages,
		"recent_payments":         recentPayments,
	})
}
