package ranking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

// ExplainChoice renders a deterministic justification for the chosen
// candidate. Sentence order is fixed: mode rationale, time alignment,
// budget fit, seat comfort, hub routing.
func (s *Scorer) ExplainChoice(mode transport.Mode, best transport.Candidate, prefs transport.Preferences) string {
	var reasons []string

	switch mode {
	case transport.ModeTrain:
		reasons = append(reasons, "Train chosen for reliability and comfort.")
	case transport.ModeBus:
		reasons = append(reasons, "Bus chosen for cost-effectiveness and schedule alignment.")
	case transport.ModeFlight:
		reasons = append(reasons, "Flight chosen for speed and convenience.")
	}

	if prefs.IsReturn {
		slot := prefs.PreferredReturnTime
		if slot == "" {
			slot = "evening"
		}
		reasons = append(reasons, fmt.Sprintf("Arrival aligns with preferred return time (%s).", slot))
	} else {
		slot := prefs.PreferredStartTime
		if slot == "" {
			slot = "morning"
		}
		reasons = append(reasons, fmt.Sprintf("Departure aligns with preferred start time (%s).", slot))
	}

	if best.Option.Fare > 0 && prefs.Budget > 0 {
		reasons = append(reasons, fmt.Sprintf("Fare ₹%s fits your budget ₹%s.",
			formatAmount(best.Option.Fare), formatAmount(prefs.Budget)))
	}

	if len(best.Option.AvlClasses) > 0 {
		reasons = append(reasons, fmt.Sprintf("Comfortable seats: %s.", strings.Join(best.Option.AvlClasses, ", ")))
	}

	if best.ViaHub && best.Hubs != nil {
		if name := hubName(best.Hubs); name != "" {
			reasons = append(reasons, fmt.Sprintf("Routed via %s.", name))
		}
	}

	return strings.Join(reasons, " ")
}

func hubName(hubs *transport.HubPair) string {
	if hubs.To != nil && hubs.To.Name != "" {
		return hubs.To.Name
	}
	if hubs.From != nil {
		return hubs.From.Name
	}
	return ""
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
