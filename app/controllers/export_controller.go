package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/elaralabs/elara/app/repository"
	"github.com/elaralabs/elara/internal/pkg/export"
	"github.com/elaralabs/elara/internal/pkg/summary"
	"github.com/elaralabs/elara/internal/pkg/usercontext"
)

// HandleExport streams the caller's data as an XLSX workbook download.
func HandleExport(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)
	factory := repository.GetGlobalFactory()

	tasks, err := factory.GetTaskRepository().ListByUserID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load tasks")
	}
	habits, err := factory.GetHabitRepository().ListByUserID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load habits")
	}
	goals, err := factory.GetGoalRepository().ListByUserID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load goals")
	}
	entries, err := factory.GetJournalRepository().ListByUserID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load journal entries")
	}

	today := time.Now().Format("2006-01-02")
	metrics := summary.Compute(tasks, habits, goals, entries, today)

	workbook, err := export.BuildWorkbook(tasks, habits, goals, entries, metrics)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to build workbook")
	}
	buf, err := export.WorkbookBytes(workbook)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to encode workbook")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	return c.Send(buf.Bytes())
}
