package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"project-tracker-api/internal/apperr"
	"project-tracker-api/internal/auth"
	"project-tracker-api/internal/realtime"
	"project-tracker-api/internal/repository"
)

// Handler carries every dependency the HTTP layer needs. All state is
// injected; there are no package-level stores.
type Handler struct {
	log           *logrus.Logger
	users         *repository.UserRepository
	tasks         *repository.TaskRepository
	projects      *repository.ProjectRepository
	notifications *repository.NotificationRepository
	gate          *auth.Gate
	hub           *realtime.Hub
}

func New(
	log *logrus.Logger,
	users *repository.UserRepository,
	tasks *repository.TaskRepository,
	projects *repository.ProjectRepository,
	notifications *repository.NotificationRepository,
	gate *auth.Gate,
	hub *realtime.Hub,
) *Handler {
	return &Handler{
		log:           log,
		users:         users,
		tasks:         tasks,
		projects:      projects,
		notifications: notifications,
		gate:          gate,
		hub:           hub,
	}
}

// respondError maps a typed error to its HTTP status. Unknown errors
// become 500 without leaking details.
func (h *Handler) respondError(c *gin.Context, err error) {
	if appErr, ok := apperr.As(err); ok {
		switch appErr.Kind {
		case apperr.KindValidation:
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  appErr.Message,
				"fields": appErr.Fields,
			})
		case apperr.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message})
		case apperr.KindAuth:
			c.JSON(http.StatusUnauthorized, gin.H{"error": appErr.Message})
		default:
			h.log.WithError(err).Error("unclassified application error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	h.log.WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// pathID parses the {id} path parameter. Identifiers are integers
// everywhere; a non-numeric id names a resource that cannot exist.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}
