// Package summary computes the dashboard metrics derived from a user's
// collections. Computation is pure over loaded rows so it can be exercised
// without a database.
package summary

import (
	"math"

	"github.com/elaralabs/elara/app/models"
)

// Metric keys as exposed by the summary endpoint and the export sheet.
const (
	KeyTasksDueToday   = "Tasks Due Today"
	KeyHabitsCompleted = "Habits Completed This Week"
	KeyGoalsInProgress = "Goals In Progress"
	KeyAvgStress       = "Avg. Stress Level"
)

// Metrics is the fixed-shape dashboard summary for one user.
type Metrics struct {
	TasksDueToday   int
	HabitsCompleted int
	GoalsInProgress int
	AvgStress       float64
}

// Compute derives the four dashboard metrics. today is a YYYY-MM-DD date
// string matching the task due-date format.
func Compute(tasks []models.Task, habits []models.Habit, goals []models.Goal, entries []models.JournalEntry, today string) Metrics {
	var m Metrics

	for _, task := range tasks {
		if task.DueDate == today && task.Status != models.TaskStatusCompleted {
			m.TasksDueToday++
		}
	}

	// Running total of day flags across all habits, not normalized per week.
	for _, habit := range habits {
		m.HabitsCompleted += habit.DayTotal()
	}

	for _, goal := range goals {
		if goal.InProgress() {
			m.GoalsInProgress++
		}
	}

	if len(entries) > 0 {
		total := 0
		for _, entry := range entries {
			total += entry.Stress
		}
		avg := float64(total) / float64(len(entries))
		m.AvgStress = math.Round(avg*10) / 10
	}

	return m
}

// Map returns the metrics as the fixed-shape mapping served by the API.
func (m Metrics) Map() map[string]interface{} {
	return map[string]interface{}{
		KeyTasksDueToday:   m.TasksDueToday,
		KeyHabitsCompleted: m.HabitsCompleted,
		KeyGoalsInProgress: m.GoalsInProgress,
		KeyAvgStress:       m.AvgStress,
	}
}

// Rows returns the metrics as ordered (metric, value) pairs for tabular
// export.
func (m Metrics) Rows() [][2]interface{} {
	return [][2]interface{}{
		{KeyTasksDueToday, m.TasksDueToday},
		{KeyHabitsCompleted, m.HabitsCompleted},
		{KeyGoalsInProgress, m.GoalsInProgress},
		{KeyAvgStress, m.AvgStress},
	}
}
