// Package query evaluates filter specifications over task snapshots.
// Evaluation is pure: the snapshot is never mutated and its order is
// preserved in the result.
package query

import (
	"iter"

	"project-tracker-api/internal/models"
)

// Spec is a filter configuration. A zero-valued dimension places no
// constraint; supplied dimensions are combined with logical AND.
type Spec struct {
	Status     models.TaskStatus
	Priority   models.TaskPriority
	AssigneeID *uint
	ProjectID  *uint
}

// Matches reports whether the task satisfies every supplied dimension.
// A task with no assignee never matches a non-nil assignee filter.
func (s Spec) Matches(task models.Task) bool {
	if s.Status != "" && task.Status != s.Status {
		return false
	}
	if s.Priority != "" && task.Priority != s.Priority {
		return false
	}
	if s.AssigneeID != nil {
		if task.AssigneeID == nil || *task.AssigneeID != *s.AssigneeID {
			return false
		}
	}
	if s.ProjectID != nil {
		if task.ProjectID == nil || *task.ProjectID != *s.ProjectID {
			return false
		}
	}
	return true
}

// Filter returns a lazy, restartable sequence over the tasks that match
// the spec, in the snapshot's order.
func Filter(tasks []models.Task, spec Spec) iter.Seq[models.Task] {
	return func(yield func(models.Task) bool) {
		for _, task := range tasks {
			if !spec.Matches(task) {
				continue
			}
			if !yield(task) {
				return
			}
		}
	}
}
