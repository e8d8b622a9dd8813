package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/elaralabs/elara/internal/pkg/cache"
)

func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// parseIDParam reads the :id route parameter as an unsigned integer.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func summaryCacheKey(userID uint) string {
	return fmt.Sprintf("summary:user:%d", userID)
}

// invalidateSummary drops the cached dashboard metrics after a write.
// Cache errors are ignored, the entry expires on its own.
func invalidateSummary(userID uint) {
	_ = cache.Delete(summaryCacheKey(userID))
}

// formatRenewal renders a renewal epoch for display, nil stays nil.
func formatRenewal(epoch *int64) interface{} {
	if epoch == nil {
		return nil
	}
	return time.Unix(*epoch, 0).Local().Format("Jan 02, 2006 03:04 PM")
}
