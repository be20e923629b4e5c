package models

import "time"

// NotificationType represents the kind of event a notification reports
type NotificationType string

const (
	NotificationTaskAssigned        NotificationType = "task_assigned"
	NotificationDeadlineApproaching NotificationType = "deadline_approaching"
	NotificationTaskCompleted       NotificationType = "task_completed"
)

// ValidNotificationType reports whether t is one of the recognized types.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationTaskAssigned, NotificationDeadlineApproaching, NotificationTaskCompleted:
		return true
	}
	return false
}

// Notification represents a notification. Read is the only mutable field
// and only ever transitions from false to true.
type Notification struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	Title     string           `json:"title" gorm:"not null"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type" gorm:"not null"`
	Read      bool             `json:"read" gorm:"not null;default:false"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TableName specifies the table name for Notification Model
func (Notification) TableName() string {
	return "notifications"
}

// NotificationDraft is the payload for creating a notification.
type NotificationDraft struct {
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}
