package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
	if tokenString == authHeader {
		return "", false
	}
	return tokenString, true
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token validation failed")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// AuthMiddleware authenticates a parent/student account from a Bearer
// JWT, rejecting blacklisted tokens and blocked accounts.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.LogError("Missing or malformed Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		var blacklisted int64
		config.DB.Model(&models.BlacklistedToken{}).Where("token = ?", tokenString).Count(&blacklisted)
		if blacklisted > 0 {
			utils.LogError("Blacklisted token used")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		userIDClaim, ok := claims["user_id"].(float64)
		if !ok {
			utils.LogError("User ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		userID := uint(userIDClaim)
		utils.LogDebug("Authenticating user ID: %d", userID)

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			utils.LogError("User not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		if user.IsBlocked {
			utils.LogError("Blocked user attempted access: %d", userID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is blocked"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("token", tokenString)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is
// present but never rejects the request. Fee payments work without an
// account; a logged-in parent just gets the payment linked to theirs.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		var blacklisted int64
		config.DB.Model(&models.BlacklistedToken{}).Where("token = ?", tokenString).Count(&blacklisted)
		if blacklisted > 0 {
			c.Next()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			c.Next()
			return
		}
		userIDClaim, ok := claims["user_id"].(float64)
		if !ok {
			c.Next()
			return
		}

		var user models.User
		if err := config.DB.First(&user, uint(userIDClaim)).Error; err == nil && !user.IsBlocked {
			c.Set("user", user)
			c.Set("token", tokenString)
		}
		c.Next()
	}
}

// AdminAuthMiddleware authenticates a back-office administrator.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.LogError("Missing or malformed Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			utils.LogError("Invalid admin token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		adminIDClaim, ok := claims["admin_id"].(float64)
		if !ok {
			utils.LogError("Admin ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		var admin models.Admin
		if err := config.DB.First(&admin, uint(adminIDClaim)).Error; err != nil {
			utils.LogError("Admin not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
			c.Abort()
			return
		}

		if !admin.IsActive {
			utils.LogError("Inactive admin attempted access: %d", admin.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin account is inactive"})
			c.Abort()
			return
		}

		c.Set("admin", admin)
		c.Next()
	}
}
