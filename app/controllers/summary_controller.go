package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/elaralabs/elara/app/repository"
	"github.com/elaralabs/elara/internal/pkg/cache"
	"github.com/elaralabs/elara/internal/pkg/summary"
	"github.com/elaralabs/elara/internal/pkg/usercontext"
)

const summaryCacheTTL = 60 * time.Second

// HandleSummary returns the dashboard metrics for the caller. Metrics are
// cached in Redis briefly; any write through the CRUD endpoints invalidates
// the cached entry.
func HandleSummary(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)
	factory := repository.GetGlobalFactory()

	if cached, err := cache.Get(summaryCacheKey(userID)); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

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

	if encoded, err := json.Marshal(metrics.Map()); err == nil {
		_ = cache.Set(summaryCacheKey(userID), string(encoded), summaryCacheTTL)
	}

	return c.JSON(metrics.Map())
}
