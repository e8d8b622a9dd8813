package billing

import (
	"testing"

	"github.com/elaralabs/elara/app/models"
)

func TestPlanForStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "active", want: models.PlanPro6Mo},
		{in: "trialing", want: models.PlanPro6Mo},
		{in: "past_due", want: models.PlanPro6Mo},
		{in: "ACTIVE", want: models.PlanPro6Mo},
		{in: "canceled", want: models.PlanFree},
		{in: "incomplete", want: models.PlanFree},
		{in: "unpaid", want: models.PlanFree},
		{in: "", want: models.PlanFree},
	}

	for _, tt := range tests {
		if got := PlanForStatus(tt.in); got != tt.want {
			t.Fatalf("PlanForStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsEntitlingStatus(t *testing.T) {
	for _, status := range []string{"active", "trialing", "past_due"} {
		if !isEntitlingStatus(status) {
			t.Fatalf("expected status %q to be entitling", status)
		}
	}
	for _, status := range []string{"canceled", "incomplete", "incomplete_expired", "unpaid", "paused"} {
		if isEntitlingStatus(status) {
			t.Fatalf("expected status %q to be non-entitling", status)
		}
	}
}
