package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"project-tracker-api/internal/models"
)

func notificationRouter(env testEnv) *gin.Engine {
	r := gin.New()
	r.GET("/api/notifications", env.handler.ListNotifications)
	r.GET("/api/notifications/unread-count", env.handler.UnreadNotificationCount)
	r.PATCH("/api/notifications/:id", env.handler.UpdateNotification)
	r.POST("/api/notifications/read-all", env.handler.MarkAllNotificationsRead)
	r.DELETE("/api/notifications/:id", env.handler.DeleteNotification)
	return r
}

func seedNotifications(t *testing.T, env testEnv, count int) {
	t.Helper()
	for range count {
		_, err := env.handler.notifications.Create(models.NotificationDraft{
			Title: "Deadline approaching",
			Type:  models.NotificationDeadlineApproaching,
		})
		require.NoError(t, err)
	}
}

func TestUpdateNotification_MarkRead(t *testing.T) {
	env := newTestEnv(t)
	r := notificationRouter(env)
	seedNotifications(t, env, 1)

	w := env.do(r, http.MethodPatch, "/api/notifications/1", map[string]any{"read": true})
	require.Equal(t, http.StatusOK, w.Code)

	var notification models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notification))
	require.True(t, notification.Read)
}

func TestUpdateNotification_ReadIsOneWay(t *testing.T) {
	env := newTestEnv(t)
	r := notificationRouter(env)
	seedNotifications(t, env, 1)

	w := env.do(r, http.MethodPatch, "/api/notifications/1", map[string]any{"read": false})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(r, http.MethodPatch, "/api/notifications/1", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	env := newTestEnv(t)
	r := notificationRouter(env)
	seedNotifications(t, env, 3)

	w := env.do(r, http.MethodPost, "/api/notifications/read-all", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(r, http.MethodGet, "/api/notifications/unread-count", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Zero(t, resp.Count)
}

func TestDeleteNotification(t *testing.T) {
	env := newTestEnv(t)
	r := notificationRouter(env)
	seedNotifications(t, env, 1)

	w := env.do(r, http.MethodDelete, "/api/notifications/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(r, http.MethodDelete, "/api/notifications/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
