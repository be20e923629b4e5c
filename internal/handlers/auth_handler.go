package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/auth"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "login and password are required",
		})
		return
	}

	token, err := h.gate.Authenticate(req.Login, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.log.WithField("login", req.Login).Info("principal authenticated")
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Me handles GET /api/users/me
func (h *Handler) Me(c *gin.Context) {
	user, err := h.users.Get(auth.AdminUserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
