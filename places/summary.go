package places

import (
	"fmt"
	"strings"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

// TripSummary renders the one-paragraph trip narrative: departure, hub
// stopover, destination highlights and the return leg when planned.
func TripSummary(best *transport.Candidate, prefs transport.Preferences, hubPlan *HubPlan, destPlan *DestinationPlan) string {
	if best == nil {
		return "No transport found for trip summary."
	}

	var b strings.Builder

	startTime := ""
	if best.Option.DepartureTime != "" {
		startTime = " at " + best.Option.DepartureTime
	}
	arriveTime := ""
	if best.Option.ArrivalTime != "" {
		arriveTime = " around " + best.Option.ArrivalTime
	}
	viaText := ""
	if best.ViaHub && best.Hubs != nil {
		if name := summaryHubName(best.Hubs); name != "" {
			viaText = " via " + name
		}
	}

	fmt.Fprintf(&b, "Start from %s on %s%s%s to reach %s%s.",
		prefs.FromLocation, prefs.StartDate, startTime, viaText, prefs.ToLocation, arriveTime)

	if best.ViaHub && hubPlan != nil && hubPlan.OvernightRequired {
		fmt.Fprintf(&b, " Stay overnight at %s, then continue the next morning.", hubPlan.HubName)
	}

	if destPlan != nil && len(destPlan.Attractions) > 0 {
		names := make([]string, 0, 2)
		for _, a := range destPlan.Attractions {
			names = append(names, a.Name)
			if len(names) == 2 {
				break
			}
		}
		fmt.Fprintf(&b, " Explore %s.", strings.Join(names, ", "))
	}

	if destPlan != nil && len(destPlan.Reasoning) > 0 {
		fmt.Fprintf(&b, " (Some preferences were adjusted: %s).", strings.Join(destPlan.Reasoning, " "))
	}

	if prefs.ReturnDate != "" {
		slot := prefs.PreferredReturnTime
		if slot == "" {
			slot = "evening"
		}
		fmt.Fprintf(&b, " Return on %s (%s).", prefs.ReturnDate, slot)
	}

	return b.String()
}

func summaryHubName(hubs *transport.HubPair) string {
	if hubs.From != nil && hubs.From.Name != "" {
		return hubs.From.Name
	}
	if hubs.To != nil {
		return hubs.To.Name
	}
	return ""
}
