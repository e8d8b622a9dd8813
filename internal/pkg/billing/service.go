package billing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/elaralabs/elara/app/models"
)

// SubscriptionLookup fetches the current period end for a subscription from
// the billing provider. Implemented by StripeClient.
type SubscriptionLookup interface {
	SubscriptionPeriodEnd(ctx context.Context, subscriptionID string) (*int64, error)
}

// Service reconciles local plan state with the billing provider's event
// stream. Events may arrive out of order and more than once; every branch
// converges on the latest-known state via absolute assignments.
type Service struct {
	repo   Repository
	lookup SubscriptionLookup
}

// NewService creates a reconciler from an injected repository and lookup.
func NewService(repo Repository, lookup SubscriptionLookup) *Service {
	return &Service{repo: repo, lookup: lookup}
}

// NewServiceFromDB creates a reconciler from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB, lookup SubscriptionLookup) *Service {
	return NewService(NewRepository(db), lookup)
}

// ProcessEvent applies a single provider event. Events referencing unknown
// users or customers are no-ops, not errors: the provider may deliver
// events for unrelated test activity. A store mutation failure is returned
// so the provider's at-least-once redelivery can retry the event.
func (s *Service) ProcessEvent(ctx context.Context, ev Event) error {
	switch ev.Type {
	case EventCheckoutCompleted:
		return s.applyCheckoutCompleted(ctx, ev)
	case EventSubscriptionCreated, EventSubscriptionUpdated:
		return s.applySubscriptionUpserted(ev)
	case EventSubscriptionDeleted:
		return s.applySubscriptionDeleted(ev)
	default:
		return nil
	}
}

func (s *Service) applyCheckoutCompleted(ctx context.Context, ev Event) error {
	userID, err := strconv.ParseUint(strings.TrimSpace(ev.UserRef), 10, 64)
	if err != nil || userID == 0 {
		return nil
	}

	user, err := s.repo.GetUserByID(uint(userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	// Period end comes from a separate provider lookup. A failed lookup
	// degrades to a null renewal; the checkout itself still counts.
	var renewal *int64
	if ev.SubscriptionRef != "" && s.lookup != nil {
		renewal, err = s.lookup.SubscriptionPeriodEnd(ctx, ev.SubscriptionRef)
		if err != nil {
			log.Printf("billing: period-end lookup for %s failed: %v", ev.SubscriptionRef, err)
			renewal = nil
		}
	}

	return s.repo.ApplyPlanState(user.ID, PlanState{
		Plan:            models.PlanPro6Mo,
		CustomerRef:     nilIfEmpty(ev.CustomerRef),
		SubscriptionRef: nilIfEmpty(ev.SubscriptionRef),
		Renewal:         renewal,
	})
}

func (s *Service) applySubscriptionUpserted(ev Event) error {
	// An absent customer ref is unresolvable, not an error. Guarded here
	// because an empty string must never reach the store lookup and match
	// a user that has no customer assigned.
	if strings.TrimSpace(ev.CustomerRef) == "" {
		return nil
	}

	user, err := s.repo.GetUserByCustomerRef(ev.CustomerRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	// Last-write-wins: the provider gives no ordering, so an out-of-order
	// delivery can transiently regress the renewal date. Accepted.
	return s.repo.ApplyPlanState(user.ID, PlanState{
		Plan:            PlanForStatus(ev.Status),
		SubscriptionRef: nilIfEmpty(ev.SubscriptionRef),
		Renewal:         ev.PeriodEnd,
	})
}

func (s *Service) applySubscriptionDeleted(ev Event) error {
	if strings.TrimSpace(ev.CustomerRef) == "" {
		return nil
	}

	user, err := s.repo.GetUserByCustomerRef(ev.CustomerRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.repo.ApplyPlanState(user.ID, PlanState{
		Plan: models.PlanFree,
	})
}

// RecordWebhookEvent persists webhook payloads idempotently. Payloads
// without a provider event id are deduplicated by content hash. The first
// return value says whether the event still needs processing: true for a
// first delivery and for redeliveries of an event that never completed
// (failed or interrupted before MarkWebhookProcessed), false only once the
// event has been applied successfully.
func (s *Service) RecordWebhookEvent(ctx context.Context, in WebhookEventInput) (bool, *models.BillingWebhookEvent, error) {
	_ = ctx
	provider := strings.ToLower(strings.TrimSpace(in.Provider))
	if provider == "" {
		return false, nil, errors.New("provider is required")
	}
	eventID := strings.TrimSpace(in.ProviderEventID)
	if eventID == "" {
		sum := sha256.Sum256([]byte(in.PayloadJSON))
		eventID = "hash:" + hex.EncodeToString(sum[:])
	}

	event := &models.BillingWebhookEvent{
		Provider:        provider,
		ProviderEventID: eventID,
		EventType:       strings.TrimSpace(in.EventType),
		PayloadJSON:     in.PayloadJSON,
		SignatureValid:  in.SignatureValid,
	}
	created, stored, err := s.repo.CreateWebhookEventIfNotExists(event)
	if err != nil {
		return false, nil, err
	}
	process := created || !stored.Processed()
	return process, stored, nil
}

// MarkWebhookProcessed marks an event as processed and stores an optional error.
func (s *Service) MarkWebhookProcessed(ctx context.Context, webhookEventID uint, processingErr error) error {
	_ = ctx
	if webhookEventID == 0 {
		return errors.New("webhook_event_id is required")
	}
	errMsg := ""
	if processingErr != nil {
		errMsg = processingErr.Error()
	}
	return s.repo.MarkWebhookProcessed(webhookEventID, errMsg)
}

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
