package models

import "time"

// Project represents a project in the system. Progress is never stored;
// it is recomputed from the project's tasks on demand.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	DueDate     string    `json:"due_date,omitempty" gorm:"column:due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Project Model
func (Project) TableName() string {
	return "projects"
}

// ProjectDraft is the payload for creating a project.
type ProjectDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// ProjectPatch is the partial-update payload for a project.
type ProjectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
}
