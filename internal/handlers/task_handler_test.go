package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"project-tracker-api/internal/models"
)

func taskRouter(env testEnv) *gin.Engine {
	r := gin.New()
	r.GET("/api/tasks", env.handler.ListTasks)
	r.POST("/api/tasks", env.handler.CreateTask)
	r.PATCH("/api/tasks/:id", env.handler.UpdateTask)
	r.DELETE("/api/tasks/:id", env.handler.DeleteTask)
	return r
}

func TestCreateTask_UnassignedIsNotAnError(t *testing.T) {
	env := newTestEnv(t)
	r := taskRouter(env)

	w := env.do(r, http.MethodPost, "/api/tasks", map[string]any{"title": "Write docs"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "Write docs", created.Title)
	require.Equal(t, models.StatusNew, created.Status)
	require.Equal(t, models.PriorityMedium, created.Priority)
	require.Nil(t, created.AssigneeID)
}

func TestCreateTask_MissingTitle(t *testing.T) {
	env := newTestEnv(t)
	r := taskRouter(env)

	w := env.do(r, http.MethodPost, "/api/tasks", map[string]any{"description": "no title"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Fields, "title")
}

func TestUpdateTask_BogusStatusRejected(t *testing.T) {
	env := newTestEnv(t)
	r := taskRouter(env)

	w := env.do(r, http.MethodPost, "/api/tasks", map[string]any{"title": "Stable"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.do(r, http.MethodPatch, "/api/tasks/1", map[string]any{"status": "bogus"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Fields, "status")

	// Task is unchanged.
	w = env.do(r, http.MethodGet, "/api/tasks", nil)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	require.Equal(t, models.StatusNew, tasks[0].Status)
}

func TestListTasks_FilterQueryParams(t *testing.T) {
	env := newTestEnv(t)
	r := taskRouter(env)

	for _, payload := range []map[string]any{
		{"title": "A", "status": "new", "priority": "high"},
		{"title": "B", "status": "in_progress", "priority": "high"},
		{"title": "C", "status": "new", "priority": "low"},
	} {
		w := env.do(r, http.MethodPost, "/api/tasks", payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(r, http.MethodGet, "/api/tasks?status=new&priority=high&unknown=ignored", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	require.Equal(t, "A", tasks[0].Title)
}

func TestCreateTask_AssignmentEmitsNotification(t *testing.T) {
	env := newTestEnv(t)
	r := taskRouter(env)

	user, err := env.handler.users.Create(models.UserDraft{Name: "bob", Role: models.RoleExecutor})
	require.NoError(t, err)

	w := env.do(r, http.MethodPost, "/api/tasks", map[string]any{
		"title":       "Handover",
		"assignee_id": user.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.Assignee)
	require.Equal(t, "bob", created.Assignee.Name)

	notifications, err := env.handler.notifications.List()
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, models.NotificationTaskAssigned, notifications[0].Type)
	require.False(t, notifications[0].Read)
}

func TestDeleteTask(t *testing.T) {
	env := newTestEnv(t)
	r := taskRouter(env)

	w := env.do(r, http.MethodPost, "/api/tasks", map[string]any{"title": "Short-lived"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(r, http.MethodDelete, "/api/tasks/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(r, http.MethodDelete, "/api/tasks/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Non-numeric ids cannot name a resource.
	w = env.do(r, http.MethodDelete, "/api/tasks/abc", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
