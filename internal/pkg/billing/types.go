package billing

// Stripe event types the reconciler reacts to. Anything else is ignored.
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// Event is the provider-agnostic shape of a subscription lifecycle event.
// Fields are populated depending on the event type; absent references are
// empty strings and an absent period end is a nil pointer.
type Event struct {
	ID              string
	Type            string
	UserRef         string // checkout client_reference_id, our user id
	CustomerRef     string
	SubscriptionRef string
	Status          string
	PeriodEnd       *int64 // epoch seconds
}

// WebhookEventInput is the normalized input for webhook event persistence.
type WebhookEventInput struct {
	Provider        string
	ProviderEventID string
	EventType       string
	PayloadJSON     string
	SignatureValid  bool
}

// PlanState is the absolute plan assignment applied per event. All fields
// are written as-is; nil pointers clear their columns. CustomerRef is only
// assigned when non-nil so subscription events cannot unlink a customer.
type PlanState struct {
	Plan            string
	CustomerRef     *string
	SubscriptionRef *string
	Renewal         *int64
}
