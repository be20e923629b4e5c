package models

import (
	"encoding/json"
	"time"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusNew        TaskStatus = "new"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// ValidStatus reports whether s is one of the recognized statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ValidPriority reports whether p is one of the recognized priorities.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Assignee is the enriched assignee payload attached to task responses.
type Assignee struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Task represents a task in the system.
// AssigneeID and ProjectID are weak references: deleting the referenced
// entity clears the field rather than leaving it dangling.
type Task struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status" gorm:"not null;default:'new'"`
	Priority    TaskPriority `json:"priority" gorm:"not null;default:'medium'"`
	DueDate     string       `json:"due_date,omitempty" gorm:"column:due_date"`
	AssigneeID  *uint        `json:"assignee_id,omitempty" gorm:"column:assignee_id"`
	Assignee    *Assignee    `json:"assignee" gorm:"-"`
	ProjectID   *uint        `json:"project_id,omitempty" gorm:"column:project_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

// TaskDraft is the payload for creating a task. Status and priority
// default to "new" and "medium" when omitted.
type TaskDraft struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     string       `json:"due_date"`
	AssigneeID  *uint        `json:"assignee_id"`
	ProjectID   *uint        `json:"project_id"`
}

// OptionalID distinguishes an absent JSON field from an explicit null,
// so a patch can clear a weak reference ("assignee_id": null) without
// every patch that omits the field doing the same.
type OptionalID struct {
	Set bool
	ID  *uint
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.ID = nil
		return nil
	}
	return json.Unmarshal(data, &o.ID)
}

// TaskPatch is the partial-update payload for a task. Nil (or unset)
// fields are left untouched.
type TaskPatch struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	DueDate     *string       `json:"due_date"`
	AssigneeID  OptionalID    `json:"assignee_id"`
	ProjectID   OptionalID    `json:"project_id"`
}
