// File: handlers/user.go
package handlers

import (
	"net/http"

	"roomdesk/services/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account and sign-in endpoints.
type UserHandler struct {
	Service identity.Service
}

// NewUserHandler returns a UserHandler backed by the given service.
func NewUserHandler(svc identity.Service) *UserHandler {
	return &UserHandler{Service: svc}
}

// Register creates a new email/password account.
func (h *UserHandler) Register(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		logger.Warn("Registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login authenticates email/password credentials.
func (h *UserHandler) Login(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		logger.Warn("Login failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LoginGoogle authenticates a Google ID token.
func (h *UserHandler) LoginGoogle(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateGoogle(c.Request.Context(), input.IDToken)
	if err != nil {
		logger.Warn("Google login failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout revokes the caller's token.
func (h *UserHandler) Logout(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	if err := h.Service.Revoke(c.Request.Context(), userID); err != nil {
		logger.Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// Profile returns the authenticated user's account.
func (h *UserHandler) Profile(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	user, err := h.Service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}
