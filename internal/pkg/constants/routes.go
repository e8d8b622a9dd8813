package constants

// Static route constants
const (
	APIRoute = "/api"
	// WebhookRoute is shared between the router and the user context
	// middleware, which must not touch sessions on webhook deliveries.
	WebhookRoute = "/webhook"
	ExportRoute  = "/export"
)
