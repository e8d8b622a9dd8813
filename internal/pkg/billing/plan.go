package billing

import (
	"strings"

	"github.com/elaralabs/elara/app/models"
)

// isEntitlingStatus reports whether a provider subscription status grants
// the paid plan. past_due keeps access while the provider retries payment.
func isEntitlingStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active", "trialing", "past_due":
		return true
	default:
		return false
	}
}

// PlanForStatus maps a provider subscription status to an internal plan.
func PlanForStatus(status string) string {
	if isEntitlingStatus(status) {
		return models.PlanPro6Mo
	}
	return models.PlanFree
}
