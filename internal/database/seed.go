package database

import (
	"time"

	"gorm.io/gorm"

	"project-tracker-api/internal/models"
)

func ptr(id uint) *uint { return &id }

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// Seed populates the store with the demo dataset the tracker boots with.
func Seed(db *gorm.DB) error {
	users := []models.User{
		{ID: 1, Name: "admin", Role: models.RoleAdmin},
		{ID: 2, Name: "Ivan Petrov", Role: models.RoleManager},
		{ID: 3, Name: "Maria Sidorova", Role: models.RoleExecutor},
		{ID: 4, Name: "Petr Ivanov", Role: models.RoleExecutor},
	}

	projects := []models.Project{
		{
			ID:          1,
			Name:        "Web application",
			Description: "Web application for task management",
			DueDate:     "2024-12-31",
			CreatedAt:   ts("2024-06-01T10:00:00Z"),
			UpdatedAt:   ts("2024-06-01T10:00:00Z"),
		},
		{
			ID:          2,
			Name:        "Mobile application",
			Description: "Mobile version of the tracker",
			DueDate:     "2025-02-28",
			CreatedAt:   ts("2024-07-01T10:00:00Z"),
			UpdatedAt:   ts("2024-07-01T10:00:00Z"),
		},
	}

	tasks := []models.Task{
		{
			ID:          1,
			Title:       "Polish the interface",
			Description: "Fix the button bug",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			DueDate:     "2024-12-31",
			AssigneeID:  ptr(2),
			ProjectID:   ptr(1),
			CreatedAt:   ts("2024-06-20T10:00:00Z"),
			UpdatedAt:   ts("2024-06-20T10:00:00Z"),
		},
		{
			ID:          2,
			Title:       "Write documentation",
			Description: "Produce the technical documentation",
			Status:      models.StatusNew,
			Priority:    models.PriorityMedium,
			DueDate:     "2024-11-15",
			ProjectID:   ptr(1),
			CreatedAt:   ts("2024-06-21T22:00:00Z"),
			UpdatedAt:   ts("2024-06-21T22:00:00Z"),
		},
		{
			ID:          3,
			Title:       "System testing",
			Description: "Run the full test pass",
			Status:      models.StatusCompleted,
			Priority:    models.PriorityHigh,
			DueDate:     "2024-10-30",
			AssigneeID:  ptr(3),
			ProjectID:   ptr(2),
			CreatedAt:   ts("2024-06-15T14:00:00Z"),
			UpdatedAt:   ts("2024-06-18T09:15:00Z"),
		},
	}

	notifications := []models.Notification{
		{
			ID:        1,
			Title:     "New task",
			Message:   `You have been assigned the task "Polish the interface"`,
			Type:      models.NotificationTaskAssigned,
			Read:      false,
			CreatedAt: ts("2024-06-20T10:00:00Z"),
			UpdatedAt: ts("2024-06-20T10:00:00Z"),
		},
		{
			ID:        2,
			Title:     "Deadline approaching",
			Message:   `The task "Write documentation" is due in 3 days`,
			Type:      models.NotificationDeadlineApproaching,
			Read:      false,
			CreatedAt: ts("2024-06-19T15:30:00Z"),
			UpdatedAt: ts("2024-06-19T15:30:00Z"),
		},
		{
			ID:        3,
			Title:     "Task completed",
			Message:   `The task "System testing" has been completed`,
			Type:      models.NotificationTaskCompleted,
			Read:      true,
			CreatedAt: ts("2024-06-18T09:15:00Z"),
			UpdatedAt: ts("2024-06-18T09:15:00Z"),
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		if err := tx.Create(&projects).Error; err != nil {
			return err
		}
		if err := tx.Create(&tasks).Error; err != nil {
			return err
		}
		return tx.Create(&notifications).Error
	})
}
