package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/auth"
)

// AuthController exchanges the shared admin passphrase for a session token.
type AuthController struct {
	adminAuth *auth.AdminAuth
}

// NewAuthController creates an auth controller.
func NewAuthController(adminAuth *auth.AdminAuth) *AuthController {
	return &AuthController{adminAuth: adminAuth}
}

type loginRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

// Login verifies the passphrase and returns a Bearer token.
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	token, err := a.adminAuth.Login(req.Passphrase)
	if errors.Is(err, auth.ErrInvalidPassphrase) {
		Error(c, http.StatusUnauthorized, "invalid passphrase", "")
		return
	}
	if errors.Is(err, auth.ErrNotConfigured) {
		Error(c, http.StatusServiceUnavailable, "admin access is not configured", "")
		return
	}
	if err != nil {
		Error(c, http.StatusInternalServerError, "failed to start session", err.Error())
		return
	}

	Success(c, gin.H{"token": token})
}
