package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/elaralabs/elara/app/controllers"
	"github.com/elaralabs/elara/internal/pkg/constants"
	"github.com/elaralabs/elara/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, limiter.New(), middleware.RequireAuth)

	api.Get("/tasks", controllers.HandleTaskList)
	api.Post("/tasks", controllers.HandleTaskCreate)
	api.Put("/tasks/:id", controllers.HandleTaskUpdate)
	api.Delete("/tasks/:id", controllers.HandleTaskDelete)

	api.Get("/habits", controllers.HandleHabitList)
	api.Post("/habits", controllers.HandleHabitCreate)
	api.Put("/habits/:id", controllers.HandleHabitUpdate)
	api.Delete("/habits/:id", controllers.HandleHabitDelete)

	api.Get("/goals", controllers.HandleGoalList)
	api.Post("/goals", controllers.HandleGoalCreate)
	api.Put("/goals/:id", controllers.HandleGoalUpdate)
	api.Delete("/goals/:id", controllers.HandleGoalDelete)

	api.Get("/journal", controllers.HandleJournalList)
	api.Post("/journal", controllers.HandleJournalCreate)
	api.Put("/journal/:id", controllers.HandleJournalUpdate)
	api.Delete("/journal/:id", controllers.HandleJournalDelete)

	api.Get("/summary", controllers.HandleSummary)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
