package controllers

import (
	"testing"
	"time"
)

func TestFormatRenewalNil(t *testing.T) {
	if got := formatRenewal(nil); got != nil {
		t.Fatalf("expected nil for nil epoch, got %v", got)
	}
}

func TestFormatRenewal(t *testing.T) {
	epoch := time.Date(2026, 3, 15, 9, 30, 0, 0, time.Local).Unix()
	got := formatRenewal(&epoch)
	s, ok := got.(string)
	if !ok {
		t.Fatalf("expected string, got %T", got)
	}
	if s != "Mar 15, 2026 09:30 AM" {
		t.Fatalf("unexpected renewal format: %q", s)
	}
}
