package handlers

import (
	"net/http"

	"triptix/internal/middleware"
	"triptix/internal/models"

	"github.com/gin-gonic/gin"
)

// Register - POST /api/auth/register
// Validate the registration form and store the account
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to register account")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login - POST /api/auth/login
// Check credentials, enforcing the per-email lockout policy
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout - POST /api/auth/logout
// Clear the logged-in session marker
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.services.Auth.Logout(c.Request.Context()); err != nil {
		h.handleServiceError(c, err, "Failed to log out")
		return
	}

	c.Status(http.StatusOK)
}

// Me - GET /api/auth/me
// Resolve the session token back to the stored account
func (h *Handlers) Me(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	account, err := h.services.Auth.CurrentUser(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	c.JSON(http.StatusOK, models.RegisterResponse{
		Name:  account.Name,
		Email: account.Email,
		Phone: account.Phone,
	})
}
