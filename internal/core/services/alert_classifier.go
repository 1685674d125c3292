package services

import (
	"fmt"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
)

// SeverityForTier maps a tier to the severity label carried by alerts.
func SeverityForTier(tier domain.Tier) string {
	switch tier {
	case domain.TierRed:
		return "CRITICAL"
	case domain.TierOrange:
		return "HIGH"
	case domain.TierYellow:
		return "MEDIUM"
	default:
		return "INFO"
	}
}

// BuildAlertMessage renders the human-readable alert text for a computed
// availability view. Green views produce no message; the aggregator never
// emits them.
func BuildAlertMessage(view domain.AvailabilityView) string {
	switch view.Tier {
	case domain.TierRed:
		overrun := view.Executed.Sub(view.Allocated)
		return fmt.Sprintf("Partida %s has exceeded budget, overrun amount %s", view.Name, overrun.StringFixed(2))
	case domain.TierOrange:
		return fmt.Sprintf("URGENT: partida %s is %s%% executed, available %s", view.Name, view.PercentExecuted.StringFixed(2), view.Available.StringFixed(2))
	case domain.TierYellow:
		return fmt.Sprintf("Attention: partida %s is %s%% executed, available %s", view.Name, view.PercentExecuted.StringFixed(2), view.Available.StringFixed(2))
	default:
		return ""
	}
}
