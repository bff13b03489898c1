package handlers

import (
	"MediHome/services"
	"MediHome/utils"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	AuthService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		AuthService: authService,
	}
}

// Helper function to extract token from URL query parameters
func extractAccessToken(c *gin.Context) (string, error) {
	token := c.DefaultQuery("accessToken", "")
	if token == "" {
		return "", fmt.Errorf("access token is required")
	}
	return token, nil
}

// Login authenticates the user and returns tokens along with user info
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if ok := h.AuthService.Login(ctx, credentials.Email, credentials.Password); !ok {
		session := h.AuthService.Session()
		msg := session.Error
		if msg == "" {
			msg = "Invalid email or password"
		}
		c.JSON(401, gin.H{"error": msg})
		return
	}

	session := h.AuthService.Session()
	user := session.User

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to generate tokens: %v", err)})
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)
	c.JSON(200, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// Session returns the current session snapshot
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(200, h.AuthService.Session())
}

// RefreshToken refreshes the user's access token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to generate access token: %v", err)})
		return
	}

	c.JSON(200, gin.H{
		"accessToken": accessToken,
	})
}

// Logoff logs the user out, clearing the persisted session and cookies
func (h *AuthHandler) Logoff(c *gin.Context) {
	h.AuthService.Logout(c.Request.Context())
	utils.ClearAuthCookies(c)
	c.Status(200)
}

// ForgotPassword starts account recovery for the given email
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := utils.ValidateRecoveryEmail(data.Email); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	success := h.AuthService.ForgotPassword(c.Request.Context(), data.Email)
	c.JSON(200, gin.H{"success": success})
}

// ClearError clears the session error message
func (h *AuthHandler) ClearError(c *gin.Context) {
	h.AuthService.ClearError()
	c.Status(http.StatusOK)
}
