package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elaralabs/elara/app/models"
	"github.com/elaralabs/elara/app/repository"
	"github.com/elaralabs/elara/internal/pkg/usercontext"
)

type habitRequest struct {
	Habit string `json:"habit" form:"habit"`
	Mon   int    `json:"mon" form:"mon"`
	Tue   int    `json:"tue" form:"tue"`
	Wed   int    `json:"wed" form:"wed"`
	Thu   int    `json:"thu" form:"thu"`
	Fri   int    `json:"fri" form:"fri"`
	Sat   int    `json:"sat" form:"sat"`
	Sun   int    `json:"sun" form:"sun"`
}

func (r habitRequest) toModel(userID uint) *models.Habit {
	return &models.Habit{
		UserID: userID,
		Habit:  r.Habit,
		Mon:    r.Mon,
		Tue:    r.Tue,
		Wed:    r.Wed,
		Thu:    r.Thu,
		Fri:    r.Fri,
		Sat:    r.Sat,
		Sun:    r.Sun,
	}
}

// HandleHabitList returns the caller's habits.
func HandleHabitList(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	habits, err := repository.GetGlobalFactory().GetHabitRepository().ListByUserID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load habits")
	}
	return c.JSON(habits)
}

// HandleHabitCreate creates a habit for the caller; day flags default to 0.
func HandleHabitCreate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var req habitRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Could not parse request body")
	}
	if req.Habit == "" {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "Habit label required")
	}

	habit := req.toModel(userID)
	if err := repository.GetGlobalFactory().GetHabitRepository().Create(habit); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create habit")
	}

	invalidateSummary(userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": habit.ID})
}

// HandleHabitUpdate overwrites a habit's fields, owner-scoped.
func HandleHabitUpdate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid habit id")
	}

	var req habitRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Could not parse request body")
	}

	if err := repository.GetGlobalFactory().GetHabitRepository().Update(userID, id, req.toModel(userID)); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update habit")
	}

	invalidateSummary(userID)
	return c.JSON(fiber.Map{"ok": true})
}

// HandleHabitDelete removes a habit, owner-scoped.
func HandleHabitDelete(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid habit id")
	}

	if err := repository.GetGlobalFactory().GetHabitRepository().Delete(userID, id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete habit")
	}

	invalidateSummary(userID)
	return c.JSON(fiber.Map{"ok": true})
}
