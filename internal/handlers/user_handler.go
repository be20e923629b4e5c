package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/models"
)

// ListUsers handles GET /api/users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /api/users
func (h *Handler) CreateUser(c *gin.Context) {
	var draft models.UserDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.users.Create(draft)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// DeleteUser handles DELETE /api/users/:id
// Tasks assigned to the user keep existing with their assignee cleared.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
