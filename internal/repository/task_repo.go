package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"project-tracker-api/internal/apperr"
	"project-tracker-api/internal/models"
)

// TaskRepository is the authoritative store for tasks. The assignee and
// project references are validated against the other stores on create
// and update.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create validates the draft, applies the status/priority defaults,
// assigns a fresh id and creation timestamp and stores the task.
func (r *TaskRepository) Create(draft models.TaskDraft) (models.Task, error) {
	status := draft.Status
	if status == "" {
		status = models.StatusNew
	}
	priority := draft.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	var fields []string
	if draft.Title == "" {
		fields = append(fields, "title")
	}
	if !models.ValidStatus(status) {
		fields = append(fields, "status")
	}
	if !models.ValidPriority(priority) {
		fields = append(fields, "priority")
	}
	if len(fields) > 0 {
		return models.Task{}, apperr.Validation("invalid task draft", fields...)
	}

	if err := r.checkReferences(draft.AssigneeID, draft.ProjectID); err != nil {
		return models.Task{}, err
	}

	now := time.Now().UTC()
	task := models.Task{
		Title:       draft.Title,
		Description: draft.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     draft.DueDate,
		AssigneeID:  draft.AssigneeID,
		ProjectID:   draft.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.Create(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Get returns the task with the given id.
func (r *TaskRepository) Get(id uint) (models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, apperr.NotFound("task not found")
		}
		return models.Task{}, err
	}
	return task, nil
}

// List returns a snapshot of all tasks in insertion order. The slice
// does not reflect later mutations.
func (r *TaskRepository) List() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Order("id asc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update merges the present patch fields into the stored task and
// refreshes updated_at. Validation follows the same rules as Create for
// every field present in the patch; nothing is written on error.
func (r *TaskRepository) Update(id uint, patch models.TaskPatch) (models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, apperr.NotFound("task not found")
		}
		return models.Task{}, err
	}

	var fields []string
	if patch.Title != nil && *patch.Title == "" {
		fields = append(fields, "title")
	}
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		fields = append(fields, "status")
	}
	if patch.Priority != nil && !models.ValidPriority(*patch.Priority) {
		fields = append(fields, "priority")
	}
	if len(fields) > 0 {
		return models.Task{}, apperr.Validation("invalid task patch", fields...)
	}

	var assigneeID, projectID *uint
	if patch.AssigneeID.Set {
		assigneeID = patch.AssigneeID.ID
	}
	if patch.ProjectID.Set {
		projectID = patch.ProjectID.ID
	}
	if err := r.checkReferences(assigneeID, projectID); err != nil {
		return models.Task{}, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.AssigneeID.Set {
		task.AssigneeID = patch.AssigneeID.ID
	}
	if patch.ProjectID.Set {
		task.ProjectID = patch.ProjectID.ID
	}
	task.UpdatedAt = time.Now().UTC()

	if err := r.db.Save(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Delete removes the task.
func (r *TaskRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("task not found")
	}
	return nil
}

// checkReferences verifies that non-nil weak references resolve to an
// existing user/project.
func (r *TaskRepository) checkReferences(assigneeID, projectID *uint) error {
	if assigneeID != nil {
		var count int64
		if err := r.db.Model(&models.User{}).Where("id = ?", *assigneeID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperr.Validation("unknown reference", "assignee_id")
		}
	}
	if projectID != nil {
		var count int64
		if err := r.db.Model(&models.Project{}).Where("id = ?", *projectID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperr.Validation("unknown reference", "project_id")
		}
	}
	return nil
}
