package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillingWebhookEventProcessed(t *testing.T) {
	now := time.Now()

	assert.False(t, (&BillingWebhookEvent{}).Processed(), "unmarked event")
	assert.False(t, (&BillingWebhookEvent{ProcessedAt: &now, ProcessingError: "boom"}).Processed(), "failed event")
	assert.True(t, (&BillingWebhookEvent{ProcessedAt: &now}).Processed(), "applied event")
}
