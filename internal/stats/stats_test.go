package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"project-tracker-api/internal/models"
)

func ptr(id uint) *uint { return &id }

func day(offset int) time.Time {
	return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestProjectProgress_QuarterDone(t *testing.T) {
	project := models.Project{ID: 1}
	tasks := []models.Task{
		{ID: 1, ProjectID: ptr(1), Status: models.StatusCompleted},
		{ID: 2, ProjectID: ptr(1), Status: models.StatusNew},
		{ID: 3, ProjectID: ptr(1), Status: models.StatusNew},
		{ID: 4, ProjectID: ptr(1), Status: models.StatusInProgress},
		{ID: 5, ProjectID: ptr(2), Status: models.StatusCompleted}, // other project
		{ID: 6, Status: models.StatusCompleted},                   // no project
	}
	require.Equal(t, 25, ProjectProgress(project, tasks))
}

func TestProjectProgress_NoTasksIsZero(t *testing.T) {
	require.Equal(t, 0, ProjectProgress(models.Project{ID: 9}, nil))
}

func TestProjectProgress_Bounds(t *testing.T) {
	project := models.Project{ID: 1}
	allDone := []models.Task{
		{ID: 1, ProjectID: ptr(1), Status: models.StatusCompleted},
		{ID: 2, ProjectID: ptr(1), Status: models.StatusCompleted},
	}
	require.Equal(t, 100, ProjectProgress(project, allDone))

	noneDone := []models.Task{
		{ID: 1, ProjectID: ptr(1), Status: models.StatusNew},
	}
	require.Equal(t, 0, ProjectProgress(project, noneDone))
}

func TestProjectStats_CountsSumToTotal(t *testing.T) {
	project := models.Project{ID: 1}
	tasks := []models.Task{
		{ID: 1, ProjectID: ptr(1), Status: models.StatusCompleted},
		{ID: 2, ProjectID: ptr(1), Status: models.StatusInProgress},
		{ID: 3, ProjectID: ptr(1), Status: models.StatusInProgress},
		{ID: 4, ProjectID: ptr(1), Status: models.StatusNew},
	}
	counts := ProjectStats(project, tasks)
	require.Equal(t, 4, counts.Total)
	require.Equal(t, counts.Total, counts.Completed+counts.InProgress+counts.New)
	require.Equal(t, 1, counts.Completed)
	require.Equal(t, 2, counts.InProgress)
	require.Equal(t, 1, counts.New)
}

func TestGlobalStats_ActiveProjects(t *testing.T) {
	projects := []models.Project{{ID: 1}, {ID: 2}, {ID: 3}}
	tasks := []models.Task{
		{ID: 1, ProjectID: ptr(1), Status: models.StatusNew},       // project 1 active
		{ID: 2, ProjectID: ptr(2), Status: models.StatusCompleted}, // project 2 fully done
		// project 3 has no tasks and is not active
	}
	g := GlobalStats(tasks, projects)
	require.Equal(t, 1, g.ActiveProjects)
	require.Equal(t, 3, g.TotalProjects)
	require.Equal(t, 2, g.TotalTasks)
}

func TestGlobalStats_AverageCompletionTime(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Status: models.StatusCompleted, CreatedAt: day(0), UpdatedAt: day(3)},
		{ID: 2, Status: models.StatusCompleted, CreatedAt: day(0), UpdatedAt: day(1)},
		{ID: 3, Status: models.StatusInProgress, CreatedAt: day(0), UpdatedAt: day(10)}, // not completed
	}
	g := GlobalStats(tasks, nil)
	require.Equal(t, 2, g.AverageCompletionTime) // mean of 3 and 1
}

func TestGlobalStats_AverageClampsMalformedRecords(t *testing.T) {
	tasks := []models.Task{
		// updated_at precedes created_at; contributes 0, not a negative day count
		{ID: 1, Status: models.StatusCompleted, CreatedAt: day(5), UpdatedAt: day(0)},
	}
	g := GlobalStats(tasks, nil)
	require.Equal(t, 0, g.AverageCompletionTime)
	require.GreaterOrEqual(t, g.AverageCompletionTime, 0)
}

func TestGlobalStats_NoCompletedTasks(t *testing.T) {
	g := GlobalStats([]models.Task{{ID: 1, Status: models.StatusNew}}, nil)
	require.Equal(t, 0, g.AverageCompletionTime)
}

func TestTasksByPriority_AllKeysPresent(t *testing.T) {
	counts := TasksByPriority([]models.Task{
		{ID: 1, Priority: models.PriorityHigh},
		{ID: 2, Priority: models.PriorityHigh},
	})
	require.Len(t, counts, 3)
	require.Equal(t, 2, counts[models.PriorityHigh])
	require.Equal(t, 0, counts[models.PriorityMedium])
	require.Equal(t, 0, counts[models.PriorityLow])
}

func TestTasksByAssignee_SortedWithStableTies(t *testing.T) {
	users := []models.User{
		{ID: 2, Name: "Ivan Petrov"},
		{ID: 3, Name: "Maria Sidorova"},
	}
	tasks := []models.Task{
		{ID: 1, AssigneeID: ptr(2)},
		{ID: 2}, // unassigned
		{ID: 3, AssigneeID: ptr(3)},
		{ID: 4, AssigneeID: ptr(2)},
	}

	got := TasksByAssignee(tasks, users)
	require.Len(t, got, 3)
	require.Equal(t, AssigneeCount{Name: "Ivan Petrov", Count: 2}, got[0])
	// Unassigned and Maria tie at 1; unassigned was encountered first.
	require.Equal(t, AssigneeCount{Name: UnassignedLabel, Count: 1}, got[1])
	require.Equal(t, AssigneeCount{Name: "Maria Sidorova", Count: 1}, got[2])
}
