package controllers

import "github.com/gofiber/fiber/v2"

// HandleCalendarConnect is a placeholder until calendar sync ships.
func HandleCalendarConnect(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "stub",
		"message": "Calendar sync is not available yet.",
	})
}

// HandleHealthConnect is a placeholder until health tracking sync ships.
func HandleHealthConnect(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "stub",
		"message": "Health tracker sync is not available yet.",
	})
}
