package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/apperr"
	"project-tracker-api/internal/realtime"
)

// UpdateNotificationRequest carries the only mutable notification
// field. Read can only transition from false to true.
type UpdateNotificationRequest struct {
	Read *bool `json:"read"`
}

// ListNotifications handles GET /api/notifications
func (h *Handler) ListNotifications(c *gin.Context) {
	notifications, err := h.notifications.List()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// UnreadNotificationCount handles GET /api/notifications/unread-count
func (h *Handler) UnreadNotificationCount(c *gin.Context) {
	unread, err := h.notifications.UnreadCount()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": unread})
}

// UpdateNotification handles PATCH /api/notifications/:id
func (h *Handler) UpdateNotification(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Read == nil || !*req.Read {
		h.respondError(c, apperr.Validation("read can only be set to true", "read"))
		return
	}

	notification, err := h.notifications.MarkRead(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.Event{Type: "notification_read", Entity: "notification", ID: id})
	c.JSON(http.StatusOK, notification)
}

// MarkAllNotificationsRead handles POST /api/notifications/read-all
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(); err != nil {
		h.respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.Event{Type: "notifications_read_all", Entity: "notification"})
	c.Status(http.StatusNoContent)
}

// DeleteNotification handles DELETE /api/notifications/:id
func (h *Handler) DeleteNotification(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.notifications.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.Event{Type: "notification_deleted", Entity: "notification", ID: id})
	c.Status(http.StatusNoContent)
}
