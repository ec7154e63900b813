package routes

import (
	"github.com/Nikhil-527/VidyaSetu/controllers"
	"github.com/Nikhil-527/VidyaSetu/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.GET("/dashboard", controllers.GetAdminDashboard)

			// Payment management. The full listing lives at
			// /payments/all with the rest of the payment surface.
			admin.GET("/payments/pending-verification", controllers.GetPendingVerifications)
			admin.PATCH("/payments/:id/review", controllers.ReviewManualPayment)
			admin.GET("/payments/export/excel", controllers.DownloadCollectionsExcel)
			admin.GET("/payments/export/pdf", controllers.DownloadCollectionsPDF)

			// Admission management
			admin.GET("/admissions", controllers.GetAllAdmissions)
			admin.GET("/admissions/:id", controllers.GetAdmissionDetails)
			admin.PATCH("/admissions/:id/status", controllers.UpdateAdmissionStatus)

			// Notice management
			admin.POST("/notices", controllers.CreateNotice)
			admin.PUT("/notices/:id", controllers.UpdateNotice)
			admin.DELETE("/notices/:id", controllers.DeleteNotice)

			// Gallery management
			admin.POST("/gallery", controllers.UploadGalleryImage)
			admin.DELETE("/gallery/:id", controllers.DeleteGalleryImage)

			// Fee structure management
			admin.POST("/fee-structures", controllers.CreateFeeStructure)
			admin.PUT("/fee-structures/:id", controllers.UpdateFeeStructure)
			admin.DELETE("/fee-structures/:id", controllers.DeleteFeeStructure)

			// Contact messages
			admin.GET("/contacts", controllers.GetContactMessages)
			admin.PATCH("/contacts/:id/resolve", controllers.ResolveContactMessage)
		}
	}
}
