package routes

import (
	"github.com/Nikhil-527/VidyaSetu/controllers"
	"github.com/Nikhil-527/VidyaSetu/middleware"
	"github.com/gin-gonic/gin"
)

// initPaymentRoutes initializes the fee payment flow. The flow works
// without an account; a logged-in parent gets payments linked to it.
func initPaymentRoutes(router *gin.RouterGroup) {
	payments := router.Group("/payments")
	payments.Use(middleware.OptionalAuthMiddleware())
	{
		payments.POST("/create-order", controllers.CreatePaymentOrder)
		payments.POST("/verify", controllers.VerifyPayment)
		payments.POST("/manual-submit", controllers.SubmitManualPayment)

		payments.GET("/status/:id", controllers.GetPaymentStatus)
		payments.GET("/status-by-order", controllers.GetPaymentStatusByOrder)

		payments.GET("/receipt/:id", controllers.RenderReceipt)
		payments.GET("/receipt/:id/pdf", controllers.DownloadReceiptPDF)

		// Account-holder history needs a login; the lookup variant serves
		// parents who paid without one and must supply both contact fields.
		payments.GET("/history", middleware.AuthMiddleware(), controllers.GetPaymentHistory)
		payments.GET("/history/lookup", controllers.LookupPaymentHistory)

		payments.GET("/all", middleware.AdminAuthMiddleware(), controllers.GetAllPayments)
	}
}
