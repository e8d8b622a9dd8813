package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/elaralabs/elara/app/models"
	"github.com/elaralabs/elara/app/repository"
	"github.com/elaralabs/elara/internal/pkg/usercontext"
)

type journalRequest struct {
	Date      string `json:"date" form:"date"`
	Mood      string `json:"mood" form:"mood"`
	Stress    int    `json:"stress" form:"stress"`
	Gratitude string `json:"gratitude" form:"gratitude"`
	Highlight string `json:"highlight" form:"highlight"`
	Notes     string `json:"notes" form:"notes"`
}

func (r journalRequest) toModel(userID uint) *models.JournalEntry {
	date := r.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return &models.JournalEntry{
		UserID:    userID,
		JDate:     date,
		Mood:      r.Mood,
		Stress:    r.Stress,
		Gratitude: r.Gratitude,
		Highlight: r.Highlight,
		Notes:     r.Notes,
	}
}

// HandleJournalList returns the caller's journal entries, newest date first.
func HandleJournalList(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	entries, err := repository.GetGlobalFactory().GetJournalRepository().ListByUserID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load journal entries")
	}
	return c.JSON(entries)
}

// HandleJournalCreate creates an entry; a missing date defaults to today.
func HandleJournalCreate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var req journalRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Could not parse request body")
	}

	entry := req.toModel(userID)
	if err := repository.GetGlobalFactory().GetJournalRepository().Create(entry); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create journal entry")
	}

	invalidateSummary(userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": entry.ID})
}

// HandleJournalUpdate overwrites an entry's fields, owner-scoped.
func HandleJournalUpdate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid journal entry id")
	}

	var req journalRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Could not parse request body")
	}

	if err := repository.GetGlobalFactory().GetJournalRepository().Update(userID, id, req.toModel(userID)); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update journal entry")
	}

	invalidateSummary(userID)
	return c.JSON(fiber.Map{"ok": true})
}

// HandleJournalDelete removes an entry, owner-scoped.
func HandleJournalDelete(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid journal entry id")
	}

	if err := repository.GetGlobalFactory().GetJournalRepository().Delete(userID, id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete journal entry")
	}

	invalidateSummary(userID)
	return c.JSON(fiber.Map{"ok": true})
}
