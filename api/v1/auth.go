package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/services"
	"github.com/codexx-academy/utils"
)

// Login handles dashboard authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	authResponse, err := services.Login(req)
	if err != nil {
		utils.RecordAudit(req.Username, "login_failed", err.Error(), utils.ClientIP(c))
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication failed",
			"error":   err.Error(),
		})
		return
	}

	utils.RecordAudit(req.Username, "login", "", utils.ClientIP(c))

	// Set token as HttpOnly cookie (expires in 24 hours)
	c.SetCookie(
		"access_token",
		authResponse.Token,
		86400,
		"/",
		"",
		true,
		true,
	)

	// Also return token in response body for clients that prefer Bearer auth
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   authResponse,
	})
}

// Logout clears the auth cookie
func Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out",
	})
}

// Register is intentionally disabled: accounts are provisioned by the
// administrator.
func Register(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"status":  "error",
		"message": "Public registration is disabled. Contact the administrator for an account.",
	})
}

// GetCurrentUser returns the currently authenticated user's profile
func GetCurrentUser(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   services.UserToResponse(user),
	})
}

// ChangePassword updates the caller's password and clears the forced-change
// flag.
func ChangePassword(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	if err := services.ChangePassword(user.ID, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Password change failed",
			"error":   err.Error(),
		})
		return
	}

	utils.RecordAudit(user.Username, "password_changed", "", utils.ClientIP(c))
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password updated",
	})
}

// currentUser pulls the authenticated account out of the context.
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
