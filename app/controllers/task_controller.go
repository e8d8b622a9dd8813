package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elaralabs/elara/app/models"
	"github.com/elaralabs/elara/app/repository"
	"github.com/elaralabs/elara/internal/pkg/usercontext"
)

type taskRequest struct {
	Task     string `json:"task" form:"task"`
	Project  string `json:"project" form:"project"`
	Priority string `json:"priority" form:"priority"`
	DueDate  string `json:"due_date" form:"due_date"`
	Status   string `json:"status" form:"status"`
}

// HandleTaskList returns the caller's tasks, due date ascending then
// priority descending.
func HandleTaskList(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	tasks, err := repository.GetGlobalFactory().GetTaskRepository().ListByUserID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load tasks")
	}
	return c.JSON(tasks)
}

// HandleTaskCreate creates a task for the caller.
func HandleTaskCreate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Could not parse request body")
	}
	if req.Task == "" {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "Task text required")
	}

	task := &models.Task{
		UserID:   userID,
		Task:     req.Task,
		Project:  req.Project,
		Priority: req.Priority,
		DueDate:  req.DueDate,
		Status:   req.Status, // repository defaults empty status to Not Started
	}
	if err := repository.GetGlobalFactory().GetTaskRepository().Create(task); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create task")
	}

	invalidateSummary(userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": task.ID})
}

// HandleTaskUpdate overwrites a task's fields. An id owned by another user
// matches zero rows and still reports success.
func HandleTaskUpdate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid task id")
	}

	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Could not parse request body")
	}

	task := &models.Task{
		Task:     req.Task,
		Project:  req.Project,
		Priority: req.Priority,
		DueDate:  req.DueDate,
		Status:   req.Status,
	}
	if err := repository.GetGlobalFactory().GetTaskRepository().Update(userID, id, task); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update task")
	}

	invalidateSummary(userID)
	return c.JSON(fiber.Map{"ok": true})
}

// HandleTaskDelete removes a task with the same owner-scoped semantics.
func HandleTaskDelete(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid task id")
	}

	if err := repository.GetGlobalFactory().GetTaskRepository().Delete(userID, id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete task")
	}

	invalidateSummary(userID)
	return c.JSON(fiber.Map{"ok": true})
}
