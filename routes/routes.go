package routes

import (
	"os"

	"github.com/Nikhil-527/VidyaSetu/controllers"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	// Session middleware carries registration data between the signup
	// and OTP verification steps
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "vidyasetu-dev-secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("vidyasetu", store))

	// Ambient middleware must be attached before any route is
	// registered or Gin will not run it for those routes
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Uploaded files (gallery, notice attachments) are served directly
	router.Static("/uploads", "./uploads")

	router.GET("/health", func(c *gin.Context) {
		if err := utils.CheckSessionStore(c); err != nil {
			utils.InternalServerError(c, "Session store unavailable", err.Error())
			return
		}
		utils.Success(c, "OK", nil)
	})

	// Auth routes (for OAuth)
	auth := router.Group("/auth")
	{
		auth.GET("/google/login", controllers.GoogleLogin)
		auth.GET("/google/callback", controllers.GoogleCallback)
	}

	// API version group
	api := router.Group("/v1")
	{
		initUserRoutes(api)
		initPaymentRoutes(api)
		initAdminRoutes(api)
	}

	return router
}
