package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/stats"
)

// GlobalStats handles GET /api/stats
// Everything is recomputed from the current snapshots on each call.
func (h *Handler) GlobalStats(c *gin.Context) {
	tasks, err := h.tasks.List()
	if err != nil {
		h.respondError(c, err)
		return
	}
	projects, err := h.projects.List()
	if err != nil {
		h.respondError(c, err)
		return
	}
	users, err := h.users.List()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"global":     stats.GlobalStats(tasks, projects),
		"byPriority": stats.TasksByPriority(tasks),
		"byAssignee": stats.TasksByAssignee(tasks, users),
	})
}
