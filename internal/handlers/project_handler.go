package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/models"
	"project-tracker-api/internal/realtime"
	"project-tracker-api/internal/stats"
)

// projectView is a project enriched with its recomputed progress.
// Progress is never stored.
type projectView struct {
	models.Project
	Progress int `json:"progress"`
}

func (h *Handler) projectViews(projects []models.Project) ([]projectView, error) {
	tasks, err := h.tasks.List()
	if err != nil {
		return nil, err
	}

	views := make([]projectView, 0, len(projects))
	for _, project := range projects {
		views = append(views, projectView{
			Project:  project,
			Progress: stats.ProjectProgress(project, tasks),
		})
	}
	return views, nil
}

// ListProjects handles GET /api/projects
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.projects.List()
	if err != nil {
		h.respondError(c, err)
		return
	}

	views, err := h.projectViews(projects)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// CreateProject handles POST /api/projects
func (h *Handler) CreateProject(c *gin.Context) {
	var draft models.ProjectDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.projects.Create(draft)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.Event{Type: "project_created", Entity: "project", ID: project.ID})
	c.JSON(http.StatusCreated, projectView{Project: project, Progress: 0})
}

// UpdateProject handles PATCH /api/projects/:id
func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.projects.Update(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	views, err := h.projectViews([]models.Project{project})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.Event{Type: "project_updated", Entity: "project", ID: project.ID})
	c.JSON(http.StatusOK, views[0])
}

// DeleteProject handles DELETE /api/projects/:id
// Tasks of the project keep existing with their project reference cleared.
func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.projects.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.Event{Type: "project_deleted", Entity: "project", ID: id})
	c.Status(http.StatusNoContent)
}

// ProjectStats handles GET /api/projects/:id/stats
func (h *Handler) ProjectStats(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := h.projects.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	tasks, err := h.tasks.List()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":   stats.ProjectStats(project, tasks),
		"progress": stats.ProjectProgress(project, tasks),
	})
}
