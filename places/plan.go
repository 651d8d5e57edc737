package places

import (
	"context"

	"github.com/TSRCHARAN/TripPlanner/transport"
	"github.com/TSRCHARAN/TripPlanner/utils"
)

// HubPlan is the stopover recommendation for an intermediate hub. When the
// arrival is late at night an overnight stay is planned; otherwise only a
// note is returned.
type HubPlan struct {
	HubName           string   `json:"hubName"`
	OvernightRequired bool     `json:"overnightRequired"`
	Note              string   `json:"note,omitempty"`
	Stay              []Place  `json:"stay,omitempty"`
	Food              []Place  `json:"food,omitempty"`
	Reasoning         []string `json:"reasoning,omitempty"`
}

// DestinationPlan recommends attractions, lodging and food at the trip
// destination.
type DestinationPlan struct {
	Attractions []Place  `json:"attractions"`
	Hotels      []Place  `json:"hotels"`
	Food        []Place  `json:"food"`
	Reasoning   []string `json:"reasoning,omitempty"`
}

// PlanHub builds the stopover plan for a hub. Lookup failures degrade to an
// empty list for that slot rather than failing the plan.
func (c *Client) PlanHub(ctx context.Context, hub transport.StopReference, arrivalTime string, prefs transport.Preferences) (*HubPlan, error) {
	if arrivalTime == "" || !utils.IsLateNight(arrivalTime) {
		return &HubPlan{
			HubName:           hub.Name,
			OvernightRequired: false,
			Note:              "No overnight stay needed: direct or same-day connection available.",
		}, nil
	}

	stayResults, err := c.SearchNearby(ctx, hub.Lat, hub.Lon, KindLodging, prefs)
	if err != nil {
		stayResults = nil
	}
	foodResults, err := c.SearchNearby(ctx, hub.Lat, hub.Lon, KindRestaurant, prefs)
	if err != nil {
		foodResults = nil
	}

	stay := LightFilter(stayResults, prefs, CategoryAccommodation)
	food := LightFilter(foodResults, prefs, CategoryFood)

	return &HubPlan{
		HubName:           hub.Name,
		OvernightRequired: true,
		Stay:              stay.Results,
		Food:              food.Results,
		Reasoning:         collectReasons(stay.Reason, food.Reason),
	}, nil
}

// PlanDestination builds the destination recommendation set.
func (c *Client) PlanDestination(ctx context.Context, city string, prefs transport.Preferences) (*DestinationPlan, error) {
	attractionResults, err := c.SearchDestination(ctx, city, KindAttractions, prefs)
	if err != nil {
		attractionResults = nil
	}
	hotelResults, err := c.SearchDestination(ctx, city, KindHotels, prefs)
	if err != nil {
		hotelResults = nil
	}
	foodResults, err := c.SearchDestination(ctx, city, KindRestaurants, prefs)
	if err != nil {
		foodResults = nil
	}

	attractions := LightFilter(attractionResults, prefs, CategorySightseeing)
	hotels := LightFilter(hotelResults, prefs, CategoryAccommodation)
	food := LightFilter(foodResults, prefs, CategoryFood)

	return &DestinationPlan{
		Attractions: attractions.Results,
		Hotels:      hotels.Results,
		Food:        food.Results,
		Reasoning:   collectReasons(attractions.Reason, hotels.Reason, food.Reason),
	}, nil
}

func collectReasons(reasons ...string) []string {
	var out []string
	for _, r := range reasons {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
