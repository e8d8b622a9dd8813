package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elaralabs/elara/app/controllers"
	"github.com/elaralabs/elara/internal/pkg/constants"
	"github.com/elaralabs/elara/internal/pkg/middleware"
	"github.com/elaralabs/elara/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Auth
	app.Post("/signup", controllers.HandleSignup)
	app.Post("/login", controllers.HandleLogin)
	app.Post("/logout", middleware.RequireAuth, controllers.HandleLogout)

	// Workbook download
	app.Get(constants.ExportRoute, middleware.RequireAuth, controllers.HandleExport)

	// Billing
	app.Get("/billing", middleware.RequireAuth, controllers.HandleBillingStatus)
	app.Post("/billing/portal", middleware.RequireAuth, controllers.HandleBillingPortal)
	app.Post("/checkout/6month", middleware.RequireAuth, controllers.HandleCheckout6Month)
	app.Get("/checkout/success", middleware.RequireAuth, controllers.HandleCheckoutSuccess)
	app.Get("/checkout/cancel", middleware.RequireAuth, controllers.HandleCheckoutCancel)

	// Integrations (stubs)
	app.Get("/integrations/calendar/connect", middleware.RequireAuth, controllers.HandleCalendarConnect)
	app.Get("/integrations/health/connect", middleware.RequireAuth, controllers.HandleHealthConnect)

	// Billing provider webhook (no session, signature-verified in controller)
	app.Post(constants.WebhookRoute, controllers.HandleStripeWebhook)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
