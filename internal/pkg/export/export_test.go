package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/elaralabs/elara/app/models"
	"github.com/elaralabs/elara/internal/pkg/summary"
)

func TestBuildWorkbookSheets(t *testing.T) {
	f, err := BuildWorkbook(nil, nil, nil, nil, summary.Metrics{})
	require.NoError(t, err)

	assert.Equal(t, []string{SheetTasks, SheetHabits, SheetGoals, SheetJournal, SheetSummary}, f.GetSheetList())
}

func TestBuildWorkbookContent(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Task: "Define weekly goals", Project: "Elara", Priority: models.TaskPriorityHigh, DueDate: "2024-06-01", Status: models.TaskStatusNotStarted},
	}
	habits := []models.Habit{
		{Habit: "Meditate", Mon: 1, Sun: 1},
	}
	goals := []models.Goal{
		{Goal: "Read 12 Books", ActionSteps: "Read 1 book/month", Progress: 25},
	}
	entries := []models.JournalEntry{
		{JDate: "2024-06-01", Mood: "Calm", Stress: 3, Gratitude: "Good sleep", Highlight: "Walk", Notes: "Fine"},
	}
	metrics := summary.Metrics{TasksDueToday: 1, HabitsCompleted: 2, GoalsInProgress: 1, AvgStress: 3.0}

	f, err := BuildWorkbook(tasks, habits, goals, entries, metrics)
	require.NoError(t, err)

	buf, err := WorkbookBytes(f)
	require.NoError(t, err)

	// Read the serialized workbook back to verify what a consumer sees.
	reopened, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	header, err := reopened.GetCellValue(SheetTasks, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Task", header)

	got, err := reopened.GetCellValue(SheetTasks, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Define weekly goals", got)

	got, err = reopened.GetCellValue(SheetHabits, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Meditate", got)

	got, err = reopened.GetCellValue(SheetGoals, "C2")
	require.NoError(t, err)
	assert.Equal(t, "25", got)

	got, err = reopened.GetCellValue(SheetJournal, "C2")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	got, err = reopened.GetCellValue(SheetSummary, "A2")
	require.NoError(t, err)
	assert.Equal(t, summary.KeyTasksDueToday, got)
}
