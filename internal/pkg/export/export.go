// Package export assembles a user's collections and dashboard summary into
// a multi-sheet spreadsheet.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/elaralabs/elara/app/models"
	"github.com/elaralabs/elara/internal/pkg/summary"
)

// Filename is the attachment name of the generated workbook.
const Filename = "ElaraGo_Dashboard.xlsx"

const (
	SheetTasks   = "Tasks"
	SheetHabits  = "Habits"
	SheetGoals   = "Goals"
	SheetJournal = "Daily Journal"
	SheetSummary = "Dashboard Summary"
)

// BuildWorkbook renders the five export sheets from a snapshot of one
// user's data. Rows are written in the order given, so tasks should arrive
// pre-sorted.
func BuildWorkbook(tasks []models.Task, habits []models.Habit, goals []models.Goal, entries []models.JournalEntry, metrics summary.Metrics) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SheetTasks)
	for _, name := range []string{SheetHabits, SheetGoals, SheetJournal, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	taskRows := [][]interface{}{
		{"ID", "Task", "Project", "Priority", "Due Date", "Status"},
	}
	for _, t := range tasks {
		taskRows = append(taskRows, []interface{}{t.ID, t.Task, t.Project, t.Priority, t.DueDate, t.Status})
	}
	if err := writeRows(f, SheetTasks, taskRows); err != nil {
		return nil, err
	}

	habitRows := [][]interface{}{
		{"Habit", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	}
	for _, h := range habits {
		habitRows = append(habitRows, []interface{}{h.Habit, h.Mon, h.Tue, h.Wed, h.Thu, h.Fri, h.Sat, h.Sun})
	}
	if err := writeRows(f, SheetHabits, habitRows); err != nil {
		return nil, err
	}

	goalRows := [][]interface{}{
		{"Goal", "Action Steps", "Progress %"},
	}
	for _, g := range goals {
		goalRows = append(goalRows, []interface{}{g.Goal, g.ActionSteps, g.Progress})
	}
	if err := writeRows(f, SheetGoals, goalRows); err != nil {
		return nil, err
	}

	journalRows := [][]interface{}{
		{"Date", "Mood", "Stress Level (1-10)", "Gratitude", "Today's Highlight", "Reflection/Notes"},
	}
	for _, e := range entries {
		journalRows = append(journalRows, []interface{}{e.JDate, e.Mood, e.Stress, e.Gratitude, e.Highlight, e.Notes})
	}
	if err := writeRows(f, SheetJournal, journalRows); err != nil {
		return nil, err
	}

	summaryRows := [][]interface{}{
		{"Metric", "Value"},
	}
	for _, row := range metrics.Rows() {
		summaryRows = append(summaryRows, []interface{}{row[0], row[1]})
	}
	if err := writeRows(f, SheetSummary, summaryRows); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WorkbookBytes serializes the workbook for download.
func WorkbookBytes(f *excelize.File) (*bytes.Buffer, error) {
	return f.WriteToBuffer()
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
