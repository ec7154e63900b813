package routes

import (
	"github.com/Nikhil-527/VidyaSetu/controllers"
	"github.com/Nikhil-527/VidyaSetu/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes public-site and account routes
func initUserRoutes(router *gin.RouterGroup) {
	// Account routes
	router.POST("/register", controllers.RegisterUser)
	router.POST("/verify-otp", controllers.VerifyRegistrationOTP)
	router.POST("/resend-otp", controllers.ResendRegistrationOTP)
	router.POST("/login", controllers.LoginUser)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/reset-password", controllers.ResetPassword)

	// Public school info
	router.GET("/notices", controllers.GetNotices)
	router.GET("/notices/:id", controllers.GetNotice)
	router.GET("/gallery", controllers.GetGallery)
	router.GET("/fee-structures", controllers.GetFeeStructures)
	router.POST("/contact", controllers.SubmitContactMessage)

	// Admissions
	router.POST("/admissions", controllers.SubmitAdmission)
	router.GET("/admissions/status", controllers.GetAdmissionStatus)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", controllers.LogoutUser)
	}
}
