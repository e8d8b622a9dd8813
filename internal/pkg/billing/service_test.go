package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/elaralabs/elara/app/models"
)

type fakeRepo struct {
	users    map[uint]*models.User
	applyErr error
	applied  int
	events   map[string]*models.BillingWebhookEvent
	nextID   uint
}

func newFakeRepo(users ...*models.User) *fakeRepo {
	r := &fakeRepo{
		users:  make(map[uint]*models.User),
		events: make(map[string]*models.BillingWebhookEvent),
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeRepo) GetUserByID(id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// GetUserByCustomerRef deliberately matches on raw equality, including the
// empty string against users whose customer column is unset, the same way
// an unguarded WHERE clause would. The service must never let an empty ref
// reach it.
func (r *fakeRepo) GetUserByCustomerRef(customerID string) (*models.User, error) {
	for _, u := range r.users {
		if u.StripeCustomerID == customerID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) ApplyPlanState(userID uint, state PlanState) error {
	if r.applyErr != nil {
		return r.applyErr
	}
	u := r.users[userID]
	u.Plan = state.Plan
	if state.SubscriptionRef != nil {
		u.StripeSubscriptionID = *state.SubscriptionRef
	} else {
		u.StripeSubscriptionID = ""
	}
	u.PlanRenewal = state.Renewal
	if state.CustomerRef != nil {
		u.StripeCustomerID = *state.CustomerRef
	}
	r.applied++
	return nil
}

func (r *fakeRepo) CreateWebhookEventIfNotExists(event *models.BillingWebhookEvent) (bool, *models.BillingWebhookEvent, error) {
	key := event.Provider + "/" + event.ProviderEventID
	if stored, ok := r.events[key]; ok {
		return false, stored, nil
	}
	r.nextID++
	event.ID = r.nextID
	r.events[key] = event
	return true, event, nil
}

func (r *fakeRepo) MarkWebhookProcessed(id uint, processingError string) error {
	for _, ev := range r.events {
		if ev.ID == id {
			now := time.Now()
			ev.ProcessedAt = &now
			ev.ProcessingError = processingError
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeLookup struct {
	periodEnd *int64
	err       error
	calls     int
}

func (l *fakeLookup) SubscriptionPeriodEnd(ctx context.Context, subscriptionID string) (*int64, error) {
	l.calls++
	return l.periodEnd, l.err
}

func int64Ptr(v int64) *int64 { return &v }

func TestProcessEventCheckoutCompleted(t *testing.T) {
	repo := newFakeRepo(&models.User{ID: 1, Plan: models.PlanFree})
	lookup := &fakeLookup{periodEnd: int64Ptr(1735689600)}
	svc := NewService(repo, lookup)

	err := svc.ProcessEvent(context.Background(), Event{
		Type:            EventCheckoutCompleted,
		UserRef:         "1",
		CustomerRef:     "cus_abc",
		SubscriptionRef: "sub_xyz",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u := repo.users[1]
	if u.Plan != models.PlanPro6Mo {
		t.Fatalf("expected plan %q, got %q", models.PlanPro6Mo, u.Plan)
	}
	if u.StripeCustomerID != "cus_abc" || u.StripeSubscriptionID != "sub_xyz" {
		t.Fatalf("unexpected refs: customer=%q subscription=%q", u.StripeCustomerID, u.StripeSubscriptionID)
	}
	if u.PlanRenewal == nil || *u.PlanRenewal != 1735689600 {
		t.Fatalf("unexpected renewal %v", u.PlanRenewal)
	}
	if lookup.calls != 1 {
		t.Fatalf("expected exactly one period-end lookup, got %d", lookup.calls)
	}
}

func TestProcessEventCheckoutLookupFailureDegrades(t *testing.T) {
	repo := newFakeRepo(&models.User{ID: 1, Plan: models.PlanFree})
	lookup := &fakeLookup{err: errors.New("stripe unavailable")}
	svc := NewService(repo, lookup)

	err := svc.ProcessEvent(context.Background(), Event{
		Type:            EventCheckoutCompleted,
		UserRef:         "1",
		CustomerRef:     "cus_abc",
		SubscriptionRef: "sub_xyz",
	})
	if err != nil {
		t.Fatalf("expected lookup failure to degrade, got error: %v", err)
	}

	u := repo.users[1]
	if u.Plan != models.PlanPro6Mo {
		t.Fatalf("expected plan upgrade despite lookup failure, got %q", u.Plan)
	}
	if u.PlanRenewal != nil {
		t.Fatalf("expected nil renewal after failed lookup, got %v", *u.PlanRenewal)
	}
}

func TestProcessEventCheckoutUnknownUserIsNoop(t *testing.T) {
	repo := newFakeRepo(&models.User{ID: 1, Plan: models.PlanFree})
	svc := NewService(repo, &fakeLookup{})

	for _, ref := range []string{"99", "", "abc"} {
		err := svc.ProcessEvent(context.Background(), Event{
			Type:        EventCheckoutCompleted,
			UserRef:     ref,
			CustomerRef: "cus_abc",
		})
		if err != nil {
			t.Fatalf("expected no-op for user ref %q, got error: %v", ref, err)
		}
	}
	if repo.applied != 0 {
		t.Fatalf("expected no mutations, got %d", repo.applied)
	}
}

func TestProcessEventSubscriptionUpserted(t *testing.T) {
	repo := newFakeRepo(&models.User{ID: 1, StripeCustomerID: "cus_abc", Plan: models.PlanFree})
	svc := NewService(repo, &fakeLookup{})

	err := svc.ProcessEvent(context.Background(), Event{
		Type:            EventSubscriptionUpdated,
		CustomerRef:     "cus_abc",
		SubscriptionRef: "sub_xyz",
		Status:          "active",
		PeriodEnd:       int64Ptr(1735689600),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := repo.users[1]
	if u.Plan != models.PlanPro6Mo || u.StripeSubscriptionID != "sub_xyz" {
		t.Fatalf("unexpected state: plan=%q subscription=%q", u.Plan, u.StripeSubscriptionID)
	}

	// A later canceled event reverts the plan, last write wins.
	err = svc.ProcessEvent(context.Background(), Event{
		Type:            EventSubscriptionUpdated,
		CustomerRef:     "cus_abc",
		SubscriptionRef: "sub_xyz",
		Status:          "canceled",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Plan != models.PlanFree {
		t.Fatalf("expected canceled status to revert plan, got %q", u.Plan)
	}
	if u.PlanRenewal != nil {
		t.Fatalf("expected renewal overwritten with event value (nil), got %v", *u.PlanRenewal)
	}
}

func TestProcessEventSubscriptionDeletedIsIdempotent(t *testing.T) {
	renewal := int64Ptr(1735689600)
	repo := newFakeRepo(&models.User{
		ID: 1, StripeCustomerID: "cus_abc", StripeSubscriptionID: "sub_xyz",
		Plan: models.PlanPro6Mo, PlanRenewal: renewal,
	})
	svc := NewService(repo, &fakeLookup{})

	ev := Event{Type: EventSubscriptionDeleted, CustomerRef: "cus_abc"}
	for i := 0; i < 2; i++ {
		if err := svc.ProcessEvent(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error on apply %d: %v", i+1, err)
		}
		u := repo.users[1]
		if u.Plan != models.PlanFree || u.StripeSubscriptionID != "" || u.PlanRenewal != nil {
			t.Fatalf("apply %d: expected reset state, got plan=%q sub=%q renewal=%v", i+1, u.Plan, u.StripeSubscriptionID, u.PlanRenewal)
		}
		if u.StripeCustomerID != "cus_abc" {
			t.Fatalf("expected customer ref preserved on delete, got %q", u.StripeCustomerID)
		}
	}
}

func TestProcessEventUnknownCustomerIsNoop(t *testing.T) {
	repo := newFakeRepo(&models.User{ID: 1, StripeCustomerID: "cus_abc"})
	svc := NewService(repo, &fakeLookup{})

	events := []Event{
		{Type: EventSubscriptionUpdated, CustomerRef: "cus_other", Status: "active"},
		{Type: EventSubscriptionDeleted, CustomerRef: "cus_other"},
	}
	for _, ev := range events {
		if err := svc.ProcessEvent(context.Background(), ev); err != nil {
			t.Fatalf("expected no-op for %s, got error: %v", ev.Type, err)
		}
	}
	if repo.applied != 0 {
		t.Fatalf("expected no mutations, got %d", repo.applied)
	}
}

func TestProcessEventIgnoresUnrecognizedTypes(t *testing.T) {
	repo := newFakeRepo(&models.User{ID: 1, StripeCustomerID: "cus_abc"})
	svc := NewService(repo, &fakeLookup{})

	err := svc.ProcessEvent(context.Background(), Event{
		Type:        "invoice.payment_succeeded",
		CustomerRef: "cus_abc",
	})
	if err != nil {
		t.Fatalf("expected unrecognized type to be ignored, got error: %v", err)
	}
	if repo.applied != 0 {
		t.Fatalf("expected no mutations, got %d", repo.applied)
	}
}

func TestProcessEventStoreFailureIsReturned(t *testing.T) {
	repo := newFakeRepo(&models.User{ID: 1, StripeCustomerID: "cus_abc"})
	repo.applyErr = errors.New("mysql gone away")
	svc := NewService(repo, &fakeLookup{})

	err := svc.ProcessEvent(context.Background(), Event{
		Type:        EventSubscriptionDeleted,
		CustomerRef: "cus_abc",
	})
	if err == nil {
		t.Fatalf("expected store failure to propagate for provider retry")
	}
}

func TestRecordWebhookEventDeduplicates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	in := WebhookEventInput{
		Provider:        models.BillingProviderStripe,
		ProviderEventID: "evt_1",
		EventType:       EventSubscriptionUpdated,
		PayloadJSON:     `{}`,
		SignatureValid:  true,
	}

	process, first, err := svc.RecordWebhookEvent(context.Background(), in)
	if err != nil || !process {
		t.Fatalf("expected first record to need processing, process=%v err=%v", process, err)
	}
	if err := svc.MarkWebhookProcessed(context.Background(), first.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	process, second, err := svc.RecordWebhookEvent(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if process {
		t.Fatalf("expected applied duplicate to short-circuit")
	}
	if first.ID != second.ID {
		t.Fatalf("expected stored row to be returned for duplicates")
	}
}

func TestRecordWebhookEventRedeliveryAfterFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	in := WebhookEventInput{
		Provider:        models.BillingProviderStripe,
		ProviderEventID: "evt_retry",
		EventType:       EventSubscriptionUpdated,
		PayloadJSON:     `{}`,
	}

	process, first, err := svc.RecordWebhookEvent(context.Background(), in)
	if err != nil || !process {
		t.Fatalf("expected first delivery to need processing, process=%v err=%v", process, err)
	}

	// Interrupted before MarkWebhookProcessed: redelivery must reprocess.
	process, _, err = svc.RecordWebhookEvent(context.Background(), in)
	if err != nil || !process {
		t.Fatalf("expected unmarked redelivery to reprocess, process=%v err=%v", process, err)
	}

	// Failed processing leaves an error on the row: still reprocess.
	if err := svc.MarkWebhookProcessed(context.Background(), first.ID, errors.New("mysql gone away")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	process, _, err = svc.RecordWebhookEvent(context.Background(), in)
	if err != nil || !process {
		t.Fatalf("expected failed redelivery to reprocess, process=%v err=%v", process, err)
	}

	// Only a clean completion turns further deliveries into duplicates.
	if err := svc.MarkWebhookProcessed(context.Background(), first.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	process, _, err = svc.RecordWebhookEvent(context.Background(), in)
	if err != nil || process {
		t.Fatalf("expected applied event to short-circuit, process=%v err=%v", process, err)
	}
}

func TestProcessEventEmptyCustomerRefIsNoop(t *testing.T) {
	// A user who never subscribed has no customer ref; an event payload
	// missing its customer field must not resolve to such a user.
	repo := newFakeRepo(&models.User{ID: 1, Plan: models.PlanPro6Mo, StripeCustomerID: ""})
	svc := NewService(repo, &fakeLookup{})

	events := []Event{
		{Type: EventSubscriptionUpdated, CustomerRef: "", Status: "canceled"},
		{Type: EventSubscriptionDeleted, CustomerRef: "  "},
	}
	for _, ev := range events {
		if err := svc.ProcessEvent(context.Background(), ev); err != nil {
			t.Fatalf("expected no-op for %s with empty customer ref, got error: %v", ev.Type, err)
		}
	}
	if repo.applied != 0 {
		t.Fatalf("expected no mutations, got %d", repo.applied)
	}
	if repo.users[1].Plan != models.PlanPro6Mo {
		t.Fatalf("expected unrelated user's plan untouched, got %q", repo.users[1].Plan)
	}
}

func TestRecordWebhookEventHashesMissingID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	created, stored, err := svc.RecordWebhookEvent(context.Background(), WebhookEventInput{
		Provider:    models.BillingProviderStripe,
		PayloadJSON: `{"id":"evt_x"}`,
	})
	if err != nil || !created {
		t.Fatalf("expected record to be created, created=%v err=%v", created, err)
	}
	if stored.ProviderEventID == "" {
		t.Fatalf("expected a content-hash event id")
	}
}
