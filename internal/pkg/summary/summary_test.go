package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elaralabs/elara/app/models"
)

const today = "2024-06-01"

func TestComputeTasksDueToday(t *testing.T) {
	tasks := []models.Task{
		{DueDate: today, Status: models.TaskStatusNotStarted},
		{DueDate: today, Status: models.TaskStatusInProgress},
		{DueDate: today, Status: models.TaskStatusCompleted},
		{DueDate: "2024-06-02", Status: models.TaskStatusNotStarted},
	}

	m := Compute(tasks, nil, nil, nil, today)
	assert.Equal(t, 2, m.TasksDueToday)
}

func TestComputeHabitsCompleted(t *testing.T) {
	habits := []models.Habit{
		{Mon: 1, Tue: 1, Sun: 1},
		{Wed: 1},
	}

	m := Compute(nil, habits, nil, nil, today)
	assert.Equal(t, 4, m.HabitsCompleted)
}

func TestComputeGoalsInProgress(t *testing.T) {
	goals := []models.Goal{
		{Progress: 0},
		{Progress: 1},
		{Progress: 60},
		{Progress: 100},
	}

	m := Compute(nil, nil, goals, nil, today)
	assert.Equal(t, 2, m.GoalsInProgress)
}

func TestComputeAvgStress(t *testing.T) {
	m := Compute(nil, nil, nil, nil, today)
	assert.Equal(t, 0.0, m.AvgStress)

	entries := []models.JournalEntry{
		{Stress: 2},
		{Stress: 4},
		{Stress: 6},
	}
	m = Compute(nil, nil, nil, entries, today)
	assert.Equal(t, 4.0, m.AvgStress)
}

func TestComputeAvgStressRounding(t *testing.T) {
	entries := []models.JournalEntry{
		{Stress: 1},
		{Stress: 2},
		{Stress: 2},
	}

	m := Compute(nil, nil, nil, entries, today)
	assert.Equal(t, 1.7, m.AvgStress)
}

func TestMetricsMapShape(t *testing.T) {
	m := Metrics{TasksDueToday: 1, HabitsCompleted: 2, GoalsInProgress: 3, AvgStress: 4.5}

	got := m.Map()
	assert.Len(t, got, 4)
	assert.Equal(t, 1, got[KeyTasksDueToday])
	assert.Equal(t, 2, got[KeyHabitsCompleted])
	assert.Equal(t, 3, got[KeyGoalsInProgress])
	assert.Equal(t, 4.5, got[KeyAvgStress])
}
