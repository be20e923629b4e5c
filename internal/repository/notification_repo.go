package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"project-tracker-api/internal/apperr"
	"project-tracker-api/internal/models"
)

// NotificationRepository is the authoritative store for notifications
// and owns the read/unread state machine: Unread -> Read, with no way
// back.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create validates the draft, assigns a fresh id and stores the
// notification in the unread state.
func (r *NotificationRepository) Create(draft models.NotificationDraft) (models.Notification, error) {
	var fields []string
	if draft.Title == "" {
		fields = append(fields, "title")
	}
	if !models.ValidNotificationType(draft.Type) {
		fields = append(fields, "type")
	}
	if len(fields) > 0 {
		return models.Notification{}, apperr.Validation("invalid notification draft", fields...)
	}

	now := time.Now().UTC()
	notification := models.Notification{
		Title:     draft.Title,
		Message:   draft.Message,
		Type:      draft.Type,
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.Create(&notification).Error; err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

// Get returns the notification with the given id.
func (r *NotificationRepository) Get(id uint) (models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Notification{}, apperr.NotFound("notification not found")
		}
		return models.Notification{}, err
	}
	return notification, nil
}

// List returns a snapshot of all notifications in insertion order.
func (r *NotificationRepository) List() ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.Order("id asc").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead transitions the notification to read. It is idempotent: on
// an already-read notification nothing is written, so updated_at keeps
// its previous value and the record comes back unchanged.
func (r *NotificationRepository) MarkRead(id uint) (models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Notification{}, apperr.NotFound("notification not found")
		}
		return models.Notification{}, err
	}

	if notification.Read {
		return notification, nil
	}

	notification.Read = true
	notification.UpdatedAt = time.Now().UTC()
	if err := r.db.Save(&notification).Error; err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

// MarkAllRead marks every unread notification as read in a single
// transaction, so readers observe either the pre-batch or post-batch
// state.
func (r *NotificationRepository) MarkAllRead() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Notification{}).
			Where("read = ?", false).
			Updates(map[string]interface{}{
				"read":       true,
				"updated_at": time.Now().UTC(),
			}).Error
	})
}

// Delete removes the notification.
func (r *NotificationRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("notification not found")
	}
	return nil
}

// UnreadCount is derived, never stored.
func (r *NotificationRepository) UnreadCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("read = ?", false).Count(&count).Error
	return count, err
}
