package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elaralabs/elara/app/models"
	"github.com/elaralabs/elara/app/repository"
	"github.com/elaralabs/elara/internal/pkg/usercontext"
)

type goalRequest struct {
	Goal        string `json:"goal" form:"goal"`
	ActionSteps string `json:"action_steps" form:"action_steps"`
	Progress    int    `json:"progress" form:"progress"`
}

func (r goalRequest) toModel(userID uint) *models.Goal {
	return &models.Goal{
		UserID:      userID,
		Goal:        r.Goal,
		ActionSteps: r.ActionSteps,
		Progress:    models.ClampProgress(r.Progress),
	}
}

// HandleGoalList returns the caller's goals.
func HandleGoalList(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	goals, err := repository.GetGlobalFactory().GetGoalRepository().ListByUserID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load goals")
	}
	return c.JSON(goals)
}

// HandleGoalCreate creates a goal; progress is clamped to [0,100].
func HandleGoalCreate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var req goalRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Could not parse request body")
	}
	if req.Goal == "" {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "Goal text required")
	}

	goal := req.toModel(userID)
	if err := repository.GetGlobalFactory().GetGoalRepository().Create(goal); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create goal")
	}

	invalidateSummary(userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": goal.ID})
}

// HandleGoalUpdate overwrites a goal's fields, owner-scoped.
func HandleGoalUpdate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid goal id")
	}

	var req goalRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Could not parse request body")
	}

	if err := repository.GetGlobalFactory().GetGoalRepository().Update(userID, id, req.toModel(userID)); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update goal")
	}

	invalidateSummary(userID)
	return c.JSON(fiber.Map{"ok": true})
}

// HandleGoalDelete removes a goal, owner-scoped.
func HandleGoalDelete(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid goal id")
	}

	if err := repository.GetGlobalFactory().GetGoalRepository().Delete(userID, id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete goal")
	}

	invalidateSummary(userID)
	return c.JSON(fiber.Map{"ok": true})
}
