package planner

import (
	"context"
	"log"

	"github.com/TSRCHARAN/TripPlanner/places"
	"github.com/TSRCHARAN/TripPlanner/transport"
)

// ReturnLeg is the outcome of the return-journey search. A failed search is
// a finding, not an error.
type ReturnLeg struct {
	Found             bool                 `json:"found"`
	Reason            string               `json:"reason,omitempty"`
	SelectedTransport *transport.Candidate `json:"selectedTransport,omitempty"`
	Reasoning         string               `json:"reasoning,omitempty"`
}

// OnwardLeg is the chosen outbound transport plus its hub stopover plan.
type OnwardLeg struct {
	SelectedTransport transport.Candidate `json:"selectedTransport"`
	Reasoning         string              `json:"reasoning"`
	HubPlan           *places.HubPlan     `json:"hubPlan,omitempty"`
}

// TripPlan is the full automatic plan: transport both ways, stopover and
// destination recommendations, and a narrative summary.
type TripPlan struct {
	TripType        string                  `json:"tripType"`
	Onward          OnwardLeg               `json:"onward"`
	DestinationPlan *places.DestinationPlan `json:"destinationPlan,omitempty"`
	Return          *ReturnLeg              `json:"return,omitempty"`
	TripSummary     string                  `json:"tripSummary"`
}

// FindReturnTransport searches the return journey with endpoints swapped
// and timing preferences shifted to the return slot. Never returns an
// error: a failed search yields Found=false.
func (p *Planner) FindReturnTransport(ctx context.Context, prefs transport.Preferences) *ReturnLeg {
	returnPrefs := prefs
	returnPrefs.StartDate = prefs.ReturnDate
	returnPrefs.IsReturn = true
	returnPrefs.PreferredStartTime = prefs.PreferredReturnTime
	if returnPrefs.PreferredStartTime == "" {
		returnPrefs.PreferredStartTime = "evening"
	}
	// Explicit endpoint coordinates are swapped along with the names.
	returnPrefs.StartCoords, returnPrefs.DestCoords = prefs.DestCoords, prefs.StartCoords

	res, err := p.FindBestTransport(ctx, prefs.ToLocation, prefs.FromLocation, returnPrefs)
	if err != nil {
		log.Printf("return search failed: %v", err)
		return &ReturnLeg{Found: false, Reason: "no return transport found"}
	}
	return &ReturnLeg{Found: true, SelectedTransport: &res.Best, Reasoning: res.Reasoning}
}

// PlanTrip builds the automatic trip plan: best transport, hub stopover
// plan when routed via a hub, destination recommendations, the return leg
// when a return date is set, and the trip summary.
func (p *Planner) PlanTrip(ctx context.Context, prefs transport.Preferences) (*TripPlan, error) {
	onward, err := p.FindBestTransport(ctx, prefs.FromLocation, prefs.ToLocation, prefs)
	if err != nil {
		return nil, err
	}

	var hubPlan *places.HubPlan
	if onward.Best.ViaHub && p.places != nil {
		if hub := p.stopoverHub(ctx, onward.Best.Hubs); hub != nil {
			hubPlan, err = p.places.PlanHub(ctx, *hub, onward.Best.Option.ArrivalTime, prefs)
			if err != nil {
				log.Printf("hub plan failed for %q: %v", hub.Name, err)
				hubPlan = nil
			}
		}
	}

	var destPlan *places.DestinationPlan
	if p.places != nil {
		destPlan, err = p.places.PlanDestination(ctx, prefs.ToLocation, prefs)
		if err != nil {
			log.Printf("destination plan failed for %q: %v", prefs.ToLocation, err)
			destPlan = nil
		}
	}

	tripType := "one-way"
	var returnLeg *ReturnLeg
	if prefs.ReturnDate != "" {
		tripType = "round-trip"
		returnLeg = p.FindReturnTransport(ctx, prefs)
	}

	return &TripPlan{
		TripType: tripType,
		Onward: OnwardLeg{
			SelectedTransport: onward.Best,
			Reasoning:         onward.Reasoning,
			HubPlan:           hubPlan,
		},
		DestinationPlan: destPlan,
		Return:          returnLeg,
		TripSummary:     places.TripSummary(&onward.Best, prefs, hubPlan, destPlan),
	}, nil
}

// ManualPlan wraps the plans built around a transport the user picked
// themselves.
type ManualPlan struct {
	SelectedTransport transport.Candidate     `json:"selectedTransport"`
	HubPlan           *places.HubPlan         `json:"hubPlan,omitempty"`
	DestinationPlan   *places.DestinationPlan `json:"destinationPlan,omitempty"`
}

// PlanWithTransport builds the hub stopover and destination plans around a
// transport choice supplied by the caller instead of discovering one.
func (p *Planner) PlanWithTransport(ctx context.Context, choice transport.Candidate, prefs transport.Preferences) (*ManualPlan, error) {
	plan := &ManualPlan{SelectedTransport: choice}
	if p.places == nil {
		return plan, nil
	}

	if choice.ViaHub {
		if hub := p.stopoverHub(ctx, choice.Hubs); hub != nil {
			hubPlan, err := p.places.PlanHub(ctx, *hub, choice.Option.ArrivalTime, prefs)
			if err != nil {
				log.Printf("hub plan failed for %q: %v", hub.Name, err)
			} else {
				plan.HubPlan = hubPlan
			}
		}
	}

	destPlan, err := p.places.PlanDestination(ctx, prefs.ToLocation, prefs)
	if err != nil {
		log.Printf("destination plan failed for %q: %v", prefs.ToLocation, err)
	} else {
		plan.DestinationPlan = destPlan
	}
	return plan, nil
}

// stopoverHub picks the hub to plan a stopover around, preferring the
// destination-side hub, and geocodes it when the static index had no
// coordinates for it.
func (p *Planner) stopoverHub(ctx context.Context, pair *transport.HubPair) *transport.StopReference {
	if pair == nil {
		return nil
	}
	hub := pair.To
	if hub == nil {
		hub = pair.From
	}
	if hub == nil {
		return nil
	}
	if hub.Lat == 0 && hub.Lon == 0 && hub.Name != "" {
		geo, err := p.geo.Resolve(ctx, hub.Name)
		if err != nil {
			log.Printf("hub geocode failed for %q: %v", hub.Name, err)
		} else if geo != nil {
			located := *hub
			located.Lat = geo.Location.Lat
			located.Lon = geo.Location.Lon
			return &located
		}
	}
	return hub
}
