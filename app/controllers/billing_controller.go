package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/elaralabs/elara/app/models"
	"github.com/elaralabs/elara/app/repository"
	"github.com/elaralabs/elara/internal/pkg/billing"
	"github.com/elaralabs/elara/internal/pkg/database"
	"github.com/elaralabs/elara/internal/pkg/env"
	"github.com/elaralabs/elara/internal/pkg/usercontext"
)

const stripeCallTimeout = 15 * time.Second

// HandleBillingStatus returns the caller's current plan and renewal date.
func HandleBillingStatus(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load account")
	}

	return c.JSON(fiber.Map{
		"plan":         user.Plan,
		"is_pro":       user.IsPro(),
		"renewal":      formatRenewal(user.PlanRenewal),
		"has_customer": user.StripeCustomerID != "",
		"subscription": user.StripeSubscriptionID,
	})
}

// HandleCheckout6Month starts a 6-month subscription checkout and returns
// the provider-hosted payment page URL.
func HandleCheckout6Month(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	client := billing.NewStripeClientFromEnv()
	if !client.IsCheckoutConfigured() {
		return jsonError(c, fiber.StatusServiceUnavailable, "stripe_not_configured", "Payments are not configured")
	}

	users := repository.GetGlobalFactory().GetUserRepository()
	user, err := users.GetByID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load account")
	}

	ctx, cancel := context.WithTimeout(c.Context(), stripeCallTimeout)
	defer cancel()

	customerID, err := ensureStripeCustomer(ctx, client, users, user)
	if err != nil {
		log.Printf("billing: create customer failed for user %d: %v", user.ID, err)
		return jsonError(c, fiber.StatusBadGateway, "stripe_error", "Payment provider request failed")
	}

	checkoutURL, err := client.CreateCheckoutSession(ctx, customerID, user.ID)
	if err != nil {
		log.Printf("billing: create checkout session failed for user %d: %v", user.ID, err)
		return jsonError(c, fiber.StatusBadGateway, "stripe_error", "Payment provider request failed")
	}

	return c.JSON(fiber.Map{"url": checkoutURL})
}

// HandleBillingPortal hands the caller the provider-hosted billing portal
// URL. The customer record is provisioned lazily, same as checkout.
func HandleBillingPortal(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	client := billing.NewStripeClientFromEnv()
	if !client.IsConfigured() {
		return jsonError(c, fiber.StatusServiceUnavailable, "stripe_not_configured", "Payments are not configured")
	}

	users := repository.GetGlobalFactory().GetUserRepository()
	user, err := users.GetByID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load account")
	}

	ctx, cancel := context.WithTimeout(c.Context(), stripeCallTimeout)
	defer cancel()

	customerID, err := ensureStripeCustomer(ctx, client, users, user)
	if err != nil {
		log.Printf("billing: create customer failed for user %d: %v", user.ID, err)
		return jsonError(c, fiber.StatusBadGateway, "stripe_error", "Payment provider request failed")
	}

	portalURL, err := client.CreatePortalSession(ctx, customerID)
	if err != nil {
		log.Printf("billing: create portal session failed for user %d: %v", user.ID, err)
		return jsonError(c, fiber.StatusBadGateway, "stripe_error", "Payment provider request failed")
	}

	return c.JSON(fiber.Map{"url": portalURL})
}

// HandleCheckoutSuccess acknowledges a completed checkout. Plan state is
// driven by the webhook, not this redirect.
func HandleCheckoutSuccess(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Payment received. Your plan will update shortly.",
	})
}

// HandleCheckoutCancel acknowledges an abandoned checkout.
func HandleCheckoutCancel(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Checkout canceled.",
	})
}

// HandleStripeWebhook receives Stripe webhook deliveries. The raw body is
// verified against STRIPE_WEBHOOK_SECRET when one is configured, recorded
// for dedup, then applied through the reconciler.
func HandleStripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()

	secret := env.GetEnv("STRIPE_WEBHOOK_SECRET", "")
	signatureValid := false
	if secret != "" {
		signatureValid = billing.VerifyStripeWebhookSignature(
			payload, c.Get("Stripe-Signature"), secret, billing.DefaultSignatureTolerance)
		if !signatureValid {
			return jsonError(c, fiber.StatusBadRequest, "invalid_signature", "Webhook signature verification failed")
		}
	}

	client := billing.NewStripeClientFromEnv()
	service := billing.NewServiceFromDB(database.GetDB(), client)

	ev, parseErr := billing.ParseEvent(payload)
	eventType := ""
	eventID := ""
	if ev != nil {
		eventType = ev.Type
		eventID = ev.ID
	}

	ctx, cancel := context.WithTimeout(c.Context(), stripeCallTimeout)
	defer cancel()

	process, record, err := service.RecordWebhookEvent(ctx, billing.WebhookEventInput{
		Provider:        models.BillingProviderStripe,
		ProviderEventID: eventID,
		EventType:       eventType,
		PayloadJSON:     string(payload),
		SignatureValid:  signatureValid,
	})
	if err != nil {
		log.Printf("billing: webhook event store failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to record webhook event")
	}
	// Only successfully applied events short-circuit. A redelivery of an
	// event that failed last time runs through the reconciler again.
	if !process {
		return c.JSON(fiber.Map{"ok": true, "duplicate": true})
	}

	if parseErr != nil {
		_ = service.MarkWebhookProcessed(ctx, record.ID, parseErr)
		return jsonError(c, fiber.StatusBadRequest, "invalid_payload", "Could not parse webhook payload")
	}

	if err := service.ProcessEvent(ctx, *ev); err != nil {
		log.Printf("billing: webhook processing failed for event %s: %v", ev.ID, err)
		_ = service.MarkWebhookProcessed(ctx, record.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Webhook processing failed")
	}

	if err := service.MarkWebhookProcessed(ctx, record.ID, nil); err != nil {
		log.Printf("billing: mark webhook processed failed for event %s: %v", ev.ID, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ensureStripeCustomer returns the user's Stripe customer id, creating a
// customer lazily on the first checkout or portal request.
func ensureStripeCustomer(ctx context.Context, client *billing.StripeClient, users repository.UserRepository, user *models.User) (string, error) {
	if user.StripeCustomerID != "" {
		return user.StripeCustomerID, nil
	}

	customerID, err := client.CreateCustomer(ctx, user.Email)
	if err != nil {
		return "", err
	}
	if err := users.SetStripeCustomerID(user.ID, customerID); err != nil {
		return "", err
	}
	user.StripeCustomerID = customerID
	return customerID, nil
}
