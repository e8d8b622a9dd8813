package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskPriorityRank(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: TaskPriorityHigh, want: 3},
		{in: TaskPriorityMedium, want: 2},
		{in: TaskPriorityLow, want: 1},
		{in: "Urgent", want: 0},
		{in: "", want: 0},
	}

	for _, tt := range tests {
		if got := TaskPriorityRank(tt.in); got != tt.want {
			t.Fatalf("TaskPriorityRank(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSortTasksByDueDateThenPriority(t *testing.T) {
	tasks := []Task{
		{ID: 1, DueDate: "2024-01-02", Priority: TaskPriorityHigh},
		{ID: 2, DueDate: "2024-01-01", Priority: TaskPriorityLow},
		{ID: 3, DueDate: "2024-01-01", Priority: TaskPriorityHigh},
	}

	SortTasks(tasks)

	got := []uint{tasks[0].ID, tasks[1].ID, tasks[2].ID}
	assert.Equal(t, []uint{3, 2, 1}, got)
}

func TestSortTasksIsStable(t *testing.T) {
	tasks := []Task{
		{ID: 1, DueDate: "2024-03-01", Priority: TaskPriorityMedium},
		{ID: 2, DueDate: "2024-03-01", Priority: TaskPriorityMedium},
	}

	SortTasks(tasks)

	assert.Equal(t, uint(1), tasks[0].ID)
	assert.Equal(t, uint(2), tasks[1].ID)
}
