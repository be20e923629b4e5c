package handlers

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/models"
	"project-tracker-api/internal/query"
	"project-tracker-api/internal/realtime"
)

// filterSpec builds a query.Spec from the recognized query parameters.
// Unknown parameters are ignored; an unparsable id constrains nothing.
func filterSpec(c *gin.Context) query.Spec {
	spec := query.Spec{
		Status:   models.TaskStatus(c.Query("status")),
		Priority: models.TaskPriority(c.Query("priority")),
	}
	if raw := c.Query("assigneeId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			v := uint(id)
			spec.AssigneeID = &v
		}
	}
	if raw := c.Query("projectId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			v := uint(id)
			spec.ProjectID = &v
		}
	}
	return spec
}

// attachAssignees enriches tasks with the assignee display payload.
func (h *Handler) attachAssignees(tasks []models.Task) []models.Task {
	users, err := h.users.List()
	if err != nil {
		return tasks
	}
	nameByID := make(map[uint]string, len(users))
	for _, u := range users {
		nameByID[u.ID] = u.Name
	}

	for i := range tasks {
		if tasks[i].AssigneeID == nil {
			continue
		}
		if name, ok := nameByID[*tasks[i].AssigneeID]; ok {
			tasks[i].Assignee = &models.Assignee{ID: *tasks[i].AssigneeID, Name: name}
		}
	}
	return tasks
}

// ListTasks handles GET /api/tasks
// Recognized filter params: status, priority, assigneeId, projectId.
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.tasks.List()
	if err != nil {
		h.respondError(c, err)
		return
	}

	filtered := slices.Collect(query.Filter(tasks, filterSpec(c)))
	if filtered == nil {
		filtered = []models.Task{}
	}
	c.JSON(http.StatusOK, h.attachAssignees(filtered))
}

// CreateTask handles POST /api/tasks
func (h *Handler) CreateTask(c *gin.Context) {
	var draft models.TaskDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.tasks.Create(draft)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if task.AssigneeID != nil {
		h.notifyAssigned(task)
	}
	h.hub.Broadcast(realtime.Event{Type: "task_created", Entity: "task", ID: task.ID})

	c.JSON(http.StatusCreated, h.attachAssignees([]models.Task{task})[0])
}

// UpdateTask handles PATCH /api/tasks/:id
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	before, err := h.tasks.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	task, err := h.tasks.Update(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if task.AssigneeID != nil && (before.AssigneeID == nil || *before.AssigneeID != *task.AssigneeID) {
		h.notifyAssigned(task)
	}
	if task.Status == models.StatusCompleted && before.Status != models.StatusCompleted {
		h.notifyCompleted(task)
	}
	h.hub.Broadcast(realtime.Event{Type: "task_updated", Entity: "task", ID: task.ID})

	c.JSON(http.StatusOK, h.attachAssignees([]models.Task{task})[0])
}

// DeleteTask handles DELETE /api/tasks/:id
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.Event{Type: "task_deleted", Entity: "task", ID: id})
	c.Status(http.StatusNoContent)
}

func (h *Handler) notifyAssigned(task models.Task) {
	notification, err := h.notifications.Create(models.NotificationDraft{
		Title:   "New task",
		Message: fmt.Sprintf("You have been assigned the task %q", task.Title),
		Type:    models.NotificationTaskAssigned,
	})
	if err != nil {
		h.log.WithError(err).Warn("failed to record assignment notification")
		return
	}
	h.hub.Broadcast(realtime.Event{Type: "notification_created", Entity: "notification", ID: notification.ID})
}

func (h *Handler) notifyCompleted(task models.Task) {
	notification, err := h.notifications.Create(models.NotificationDraft{
		Title:   "Task completed",
		Message: fmt.Sprintf("The task %q has been completed", task.Title),
		Type:    models.NotificationTaskCompleted,
	})
	if err != nil {
		h.log.WithError(err).Warn("failed to record completion notification")
		return
	}
	h.hub.Broadcast(realtime.Event{Type: "notification_created", Entity: "notification", ID: notification.ID})
}
