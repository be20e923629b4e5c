package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"project-tracker-api/internal/apperr"
	"project-tracker-api/internal/models"
)

// UserRepository is the authoritative store for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create validates the draft, assigns a fresh id and stores the user.
func (r *UserRepository) Create(draft models.UserDraft) (models.User, error) {
	var fields []string
	if draft.Name == "" {
		fields = append(fields, "name")
	}
	if !models.ValidRole(draft.Role) {
		fields = append(fields, "role")
	}
	if len(fields) > 0 {
		return models.User{}, apperr.Validation("invalid user draft", fields...)
	}

	user := models.User{
		Name: draft.Name,
		Role: draft.Role,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Get returns the user with the given id.
func (r *UserRepository) Get(id uint) (models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperr.NotFound("user not found")
		}
		return models.User{}, err
	}
	return user, nil
}

// List returns a snapshot of all users in insertion order.
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user and clears assignee_id on every task that
// referenced it, in one transaction so no reader observes a dangling
// reference.
func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("user not found")
			}
			return err
		}

		if err := tx.Model(&models.Task{}).
			Where("assignee_id = ?", id).
			Updates(map[string]interface{}{
				"assignee_id": nil,
				"updated_at":  time.Now().UTC(),
			}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
}
