// Package stats derives aggregate metrics from repository snapshots.
// Every function is pure and recomputes from scratch; the store is
// small enough that caching would buy nothing.
package stats

import (
	"math"
	"sort"

	"project-tracker-api/internal/models"
)

// UnassignedLabel is the sentinel display name for tasks without an
// assignee.
const UnassignedLabel = "unassigned"

// ProjectCounts holds the per-status task counts of one project.
// Completed + InProgress + New always equals Total.
type ProjectCounts struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	New        int `json:"new"`
}

// Global holds tracker-wide metrics.
type Global struct {
	TotalTasks            int `json:"totalTasks"`
	CompletedTasks        int `json:"completedTasks"`
	InProgressTasks       int `json:"inProgressTasks"`
	NewTasks              int `json:"newTasks"`
	TotalProjects         int `json:"totalProjects"`
	ActiveProjects        int `json:"activeProjects"`
	AverageCompletionTime int `json:"averageCompletionTime"`
}

// AssigneeCount pairs an assignee display name with a task count.
type AssigneeCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func projectTasks(project models.Project, tasks []models.Task) []models.Task {
	var out []models.Task
	for _, task := range tasks {
		if task.ProjectID != nil && *task.ProjectID == project.ID {
			out = append(out, task)
		}
	}
	return out
}

// ProjectProgress returns the completion percentage of a project as an
// integer in [0,100]. A project with no tasks has progress 0.
func ProjectProgress(project models.Project, tasks []models.Task) int {
	scoped := projectTasks(project, tasks)
	if len(scoped) == 0 {
		return 0
	}
	completed := 0
	for _, task := range scoped {
		if task.Status == models.StatusCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(scoped)) * 100))
}

// ProjectStats returns the per-status task counts of a project.
func ProjectStats(project models.Project, tasks []models.Task) ProjectCounts {
	var counts ProjectCounts
	for _, task := range projectTasks(project, tasks) {
		counts.Total++
		switch task.Status {
		case models.StatusCompleted:
			counts.Completed++
		case models.StatusInProgress:
			counts.InProgress++
		case models.StatusNew:
			counts.New++
		}
	}
	return counts
}

// GlobalStats computes tracker-wide metrics. A project counts as active
// when at least one of its tasks is not completed; a project with no
// tasks is not active. The average completion time is the mean, in
// whole days, of updated_at - created_at over completed tasks, with
// negative contributions from malformed records clamped to zero.
func GlobalStats(tasks []models.Task, projects []models.Project) Global {
	g := Global{
		TotalTasks:    len(tasks),
		TotalProjects: len(projects),
	}

	for _, task := range tasks {
		switch task.Status {
		case models.StatusCompleted:
			g.CompletedTasks++
		case models.StatusInProgress:
			g.InProgressTasks++
		case models.StatusNew:
			g.NewTasks++
		}
	}

	for _, project := range projects {
		for _, task := range tasks {
			if task.ProjectID == nil || *task.ProjectID != project.ID {
				continue
			}
			if task.Status != models.StatusCompleted {
				g.ActiveProjects++
				break
			}
		}
	}

	totalDays := 0
	completed := 0
	for _, task := range tasks {
		if task.Status != models.StatusCompleted || task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
			continue
		}
		days := int(task.UpdatedAt.Sub(task.CreatedAt).Hours() / 24)
		if days < 0 {
			days = 0
		}
		totalDays += days
		completed++
	}
	if completed > 0 {
		g.AverageCompletionTime = int(math.Round(float64(totalDays) / float64(completed)))
	}

	return g
}

// TasksByPriority counts tasks per priority. All three priorities are
// present in the result even when zero.
func TasksByPriority(tasks []models.Task) map[models.TaskPriority]int {
	counts := map[models.TaskPriority]int{
		models.PriorityLow:    0,
		models.PriorityMedium: 0,
		models.PriorityHigh:   0,
	}
	for _, task := range tasks {
		if _, ok := counts[task.Priority]; ok {
			counts[task.Priority]++
		}
	}
	return counts
}

// TasksByAssignee counts tasks per assignee display name, sorted by
// count descending with ties kept in first-encountered order. Tasks
// without an assignee are grouped under UnassignedLabel.
func TasksByAssignee(tasks []models.Task, users []models.User) []AssigneeCount {
	nameByID := make(map[uint]string, len(users))
	for _, user := range users {
		nameByID[user.ID] = user.Name
	}

	index := make(map[string]int)
	var out []AssigneeCount
	for _, task := range tasks {
		name := UnassignedLabel
		if task.AssigneeID != nil {
			if n, ok := nameByID[*task.AssigneeID]; ok {
				name = n
			}
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, AssigneeCount{Name: name})
		}
		out[i].Count++
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
