package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"project-tracker-api/internal/apperr"
	"project-tracker-api/internal/models"
)

// ProjectRepository is the authoritative store for projects.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create validates the draft, assigns a fresh id and stores the project.
func (r *ProjectRepository) Create(draft models.ProjectDraft) (models.Project, error) {
	if draft.Name == "" {
		return models.Project{}, apperr.Validation("invalid project draft", "name")
	}

	now := time.Now().UTC()
	project := models.Project{
		Name:        draft.Name,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.Create(&project).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Get returns the project with the given id.
func (r *ProjectRepository) Get(id uint) (models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperr.NotFound("project not found")
		}
		return models.Project{}, err
	}
	return project, nil
}

// List returns a snapshot of all projects in insertion order.
func (r *ProjectRepository) List() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("id asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update merges the present patch fields into the stored project and
// refreshes updated_at. created_at is never touched.
func (r *ProjectRepository) Update(id uint, patch models.ProjectPatch) (models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperr.NotFound("project not found")
		}
		return models.Project{}, err
	}

	if patch.Name != nil && *patch.Name == "" {
		return models.Project{}, apperr.Validation("invalid project patch", "name")
	}

	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.DueDate != nil {
		project.DueDate = *patch.DueDate
	}
	project.UpdatedAt = time.Now().UTC()

	if err := r.db.Save(&project).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Delete removes the project and clears project_id on every task that
// referenced it, in one transaction so no reader observes a dangling
// reference.
func (r *ProjectRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("project not found")
			}
			return err
		}

		if err := tx.Model(&models.Task{}).
			Where("project_id = ?", id).
			Updates(map[string]interface{}{
				"project_id": nil,
				"updated_at": time.Now().UTC(),
			}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}
