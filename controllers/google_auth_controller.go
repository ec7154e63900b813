package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// GoogleUserInfo is the profile returned by the Google userinfo endpoint
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleLogin redirects to Google's consent screen
func GoogleLogin(c *gin.Context) {
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the OAuth code, provisions the account if
// needed and redirects back to the frontend with a JWT.
func GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.InternalServerError(c, "Failed to exchange token", err.Error())
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.InternalServerError(c, "Failed to get user info", err.Error())
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", err.Error())
		return
	}

	var googleUser GoogleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", googleUser.Email).First(&user).Error; err != nil {
		user = models.User{
			Email:      googleUser.Email,
			Name:       googleUser.Name,
			IsVerified: true,
			GoogleID:   googleUser.ID,
		}

		// Google accounts get a random local password; password login
		// stays possible only after a reset.
		hashed, err := utils.HashPassword(utils.GenerateOTP() + googleUser.ID)
		if err != nil {
			utils.InternalServerError(c, "Failed to create user", err.Error())
			return
		}
		user.Password = hashed

		if err := config.DB.Create(&user).Error; err != nil {
			utils.InternalServerError(c, "Failed to create user", err.Error())
			return
		}
		utils.LogInfo("Provisioned Google account for %s", googleUser.Email)
	}

	jwtToken, err := utils.GenerateToken(&user)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	redirectURL := fmt.Sprintf("%s?token=%s&user=%s",
		os.Getenv("FRONTEND_URL"),
		url.QueryEscape(jwtToken),
		url.QueryEscape(fmt.Sprintf(`{"id":%d,"email":"%s","name":"%s"}`,
			user.ID, user.Email, user.Name)))

	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
