package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elaralabs/elara/internal/pkg/env"
)

const defaultStripeAPIBaseURL = "https://api.stripe.com"

// StripeClient is a thin client for the Stripe endpoints this app needs:
// customer creation, hosted checkout/portal sessions and subscription
// lookups. All calls are bounded by the HTTP client timeout.
type StripeClient struct {
	SecretKey  string
	Price6Mo   string
	AppBaseURL string

	APIBaseURL string
	HTTPClient *http.Client
}

func NewStripeClientFromEnv() *StripeClient {
	return &StripeClient{
		SecretKey:  strings.TrimSpace(env.GetEnv("STRIPE_SECRET_KEY", "")),
		Price6Mo:   strings.TrimSpace(env.GetEnv("STRIPE_PRICE_6MO", "")),
		AppBaseURL: strings.TrimRight(env.GetEnv("APP_BASE_URL", "http://localhost:5000"), "/"),
		APIBaseURL: strings.TrimSpace(env.GetEnv("STRIPE_API_BASE_URL", defaultStripeAPIBaseURL)),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// IsConfigured reports whether API credentials are present.
func (c *StripeClient) IsConfigured() bool {
	return c.SecretKey != ""
}

// IsCheckoutConfigured additionally requires the subscription price.
func (c *StripeClient) IsCheckoutConfigured() bool {
	return c.IsConfigured() && c.Price6Mo != ""
}

// CreateCustomer provisions a Stripe customer for the given email and
// returns its id.
func (c *StripeClient) CreateCustomer(ctx context.Context, email string) (string, error) {
	form := url.Values{}
	form.Set("email", strings.TrimSpace(email))

	var out struct {
		ID string `json:"id"`
	}
	if err := c.postForm(ctx, "/v1/customers", form, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("stripe customer create returned empty id")
	}
	return out.ID, nil
}

// CreateCheckoutSession requests a hosted subscription checkout session and
// returns its redirect URL. The user id travels as client_reference_id so
// the webhook can resolve the buyer.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, customerID string, userID uint) (string, error) {
	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("customer", customerID)
	form.Set("line_items[0][price]", c.Price6Mo)
	form.Set("line_items[0][quantity]", "1")
	form.Set("allow_promotion_codes", "true")
	form.Set("client_reference_id", strconv.FormatUint(uint64(userID), 10))
	form.Set("success_url", c.AppBaseURL+"/checkout/success?session_id={CHECKOUT_SESSION_ID}")
	form.Set("cancel_url", c.AppBaseURL+"/checkout/cancel")

	var out struct {
		URL string `json:"url"`
	}
	if err := c.postForm(ctx, "/v1/checkout/sessions", form, &out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", errors.New("stripe checkout session returned empty url")
	}
	return out.URL, nil
}

// CreatePortalSession requests a self-service billing portal session and
// returns its redirect URL.
func (c *StripeClient) CreatePortalSession(ctx context.Context, customerID string) (string, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("return_url", c.AppBaseURL+"/billing")

	var out struct {
		URL string `json:"url"`
	}
	if err := c.postForm(ctx, "/v1/billing_portal/sessions", form, &out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", errors.New("stripe portal session returned empty url")
	}
	return out.URL, nil
}

// SubscriptionPeriodEnd fetches the current period end of a subscription as
// epoch seconds. Returns nil when the provider reports none.
func (c *StripeClient) SubscriptionPeriodEnd(ctx context.Context, subscriptionID string) (*int64, error) {
	subID := strings.TrimSpace(subscriptionID)
	if subID == "" {
		return nil, errors.New("subscription id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(c.APIBaseURL, "/")+"/v1/subscriptions/"+url.PathEscape(subID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("stripe subscription lookup failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var out struct {
		CurrentPeriodEnd *int64 `json:"current_period_end"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out.CurrentPeriodEnd, nil
}

func (c *StripeClient) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	if !c.IsConfigured() {
		return errors.New("STRIPE_SECRET_KEY is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.APIBaseURL, "/")+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	// Stripe dedupes retried mutations by idempotency key.
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("stripe request %s failed: status=%d body=%s", path, resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

// ParseEvent extracts the subscription-relevant fields from a raw Stripe
// webhook payload. The envelope is {"id","type","data":{"object":{...}}};
// which object fields are present depends on the event type.
func ParseEvent(payload []byte) (*Event, error) {
	var raw struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID                string `json:"id"`
				Customer          string `json:"customer"`
				Subscription      string `json:"subscription"`
				ClientReferenceID string `json:"client_reference_id"`
				Status            string `json:"status"`
				CurrentPeriodEnd  *int64 `json:"current_period_end"`
			} `json:"object"`
		} `json:"data"`
	}

	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw.Type) == "" {
		return nil, errors.New("stripe event payload missing type")
	}

	ev := &Event{
		ID:          strings.TrimSpace(raw.ID),
		Type:        strings.TrimSpace(raw.Type),
		CustomerRef: strings.TrimSpace(raw.Data.Object.Customer),
		Status:      strings.TrimSpace(raw.Data.Object.Status),
		PeriodEnd:   raw.Data.Object.CurrentPeriodEnd,
	}

	// Checkout sessions reference their subscription by field; subscription
	// events carry it as the object id.
	if ev.Type == EventCheckoutCompleted {
		ev.UserRef = strings.TrimSpace(raw.Data.Object.ClientReferenceID)
		ev.SubscriptionRef = strings.TrimSpace(raw.Data.Object.Subscription)
	} else {
		ev.SubscriptionRef = strings.TrimSpace(raw.Data.Object.ID)
	}

	return ev, nil
}
