package query

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"project-tracker-api/internal/models"
)

func ptr(id uint) *uint { return &id }

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "Polish the interface", Status: models.StatusInProgress, Priority: models.PriorityHigh, AssigneeID: ptr(2), ProjectID: ptr(1)},
		{ID: 2, Title: "Write documentation", Status: models.StatusNew, Priority: models.PriorityMedium, ProjectID: ptr(1)},
		{ID: 3, Title: "System testing", Status: models.StatusCompleted, Priority: models.PriorityHigh, AssigneeID: ptr(3), ProjectID: ptr(2)},
		{ID: 4, Title: "Triage backlog", Status: models.StatusNew, Priority: models.PriorityHigh, AssigneeID: ptr(2)},
	}
}

func TestFilter_EmptySpecReturnsEverythingInOrder(t *testing.T) {
	tasks := sampleTasks()
	got := slices.Collect(Filter(tasks, Spec{}))
	require.Len(t, got, len(tasks))
	for i := range tasks {
		require.Equal(t, tasks[i].ID, got[i].ID)
	}
}

func TestFilter_AndSemantics(t *testing.T) {
	got := slices.Collect(Filter(sampleTasks(), Spec{
		Status:   models.StatusNew,
		Priority: models.PriorityHigh,
	}))
	require.Len(t, got, 1)
	require.Equal(t, uint(4), got[0].ID)
}

func TestFilter_UnassignedNeverMatchesAssigneeFilter(t *testing.T) {
	got := slices.Collect(Filter(sampleTasks(), Spec{AssigneeID: ptr(2)}))
	for _, task := range got {
		require.NotNil(t, task.AssigneeID)
		require.Equal(t, uint(2), *task.AssigneeID)
	}
	require.Len(t, got, 2)
}

func TestFilter_IsRefinement(t *testing.T) {
	tasks := sampleTasks()
	ids := make(map[uint]bool, len(tasks))
	for _, task := range tasks {
		ids[task.ID] = true
	}

	for _, spec := range []Spec{
		{},
		{Status: models.StatusCompleted},
		{Priority: models.PriorityHigh, ProjectID: ptr(1)},
		{AssigneeID: ptr(99)},
	} {
		for task := range Filter(tasks, spec) {
			require.True(t, ids[task.ID])
		}
	}
}

func TestFilter_SequenceIsRestartable(t *testing.T) {
	seq := Filter(sampleTasks(), Spec{Priority: models.PriorityHigh})
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Equal(t, first, second)
	require.Len(t, first, 3)
}

func TestFilter_EarlyBreakStopsIteration(t *testing.T) {
	count := 0
	for range Filter(sampleTasks(), Spec{}) {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}
