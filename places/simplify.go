package places

import (
	"fmt"
	"net/url"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

// Place is the simplified, provider-agnostic shape served to clients.
type Place struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	CategoryKey      string              `json:"categoryKey"`
	Category         string              `json:"category"`
	Types            []string            `json:"types"`
	Rating           float64             `json:"rating,omitempty"`
	UserRatingsTotal int                 `json:"userRatingsTotal"`
	Address          string              `json:"address"`
	Location         *transport.Location `json:"location,omitempty"`
	MapLink          string              `json:"mapLink"`
	PriceLevel       int                 `json:"priceLevel,omitempty"`
	Thumbnail        string              `json:"thumbnail,omitempty"`
	PhotosAvailable  bool                `json:"photosAvailable"`
	PhotoCount       int                 `json:"photoCount"`
	OpenNow          *bool               `json:"openNow,omitempty"`
	Website          string              `json:"website,omitempty"`
	Source           string              `json:"source"`
}

type googlePlace struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Rating   float64  `json:"rating"`
	Ratings  int      `json:"user_ratings_total"`
	Address  string   `json:"formatted_address"`
	Vicinity string   `json:"vicinity"`
	Website  string   `json:"website"`
	Price    int      `json:"price_level"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	OpeningHours *struct {
		OpenNow bool `json:"open_now"`
	} `json:"opening_hours"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

type googlePlacesResponse struct {
	Results []googlePlace `json:"results"`
}

type category struct {
	key   string
	label string
}

// categoryRules map Google place types onto our coarser categories, most
// specific first.
var categoryRules = []struct {
	typ string
	cat category
}{
	{"museum", category{"museum", "Museum"}},
	{"art_gallery", category{"art_gallery", "Art gallery"}},
	{"zoo", category{"zoo", "Zoo"}},
	{"aquarium", category{"aquarium", "Aquarium"}},
	{"park", category{"park", "Park"}},
	{"tourist_attraction", category{"tourist_attraction", "Attraction"}},
	{"restaurant", category{"restaurant", "Restaurant"}},
	{"cafe", category{"cafe", "Cafe"}},
	{"bar", category{"bar", "Bar"}},
	{"bakery", category{"bakery", "Bakery"}},
	{"lodging", category{"hotel", "Hotel"}},
	{"hotel", category{"hotel", "Hotel"}},
	{"hostel", category{"hostel", "Hostel"}},
	{"shopping_mall", category{"shopping_mall", "Shopping mall"}},
	{"store", category{"store", "Store"}},
	{"clothing_store", category{"store", "Store"}},
	{"department_store", category{"store", "Store"}},
	{"airport", category{"airport", "Airport"}},
	{"train_station", category{"train_station", "Train station"}},
	{"bus_station", category{"bus_station", "Bus station"}},
	{"transit_station", category{"transit_station", "Transit station"}},
}

func mapCategory(types []string) category {
	if len(types) == 0 {
		return category{"other", "Other"}
	}
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	for _, rule := range categoryRules {
		if set[rule.typ] {
			return rule.cat
		}
	}
	for _, t := range types {
		if t == "food" || t == "meal_takeaway" || t == "meal_delivery" {
			return category{"food", "Food"}
		}
	}
	return category{"other", "Other"}
}

func simplifyPlaces(results []googlePlace) []Place {
	out := make([]Place, 0, len(results))
	for _, p := range results {
		cat := mapCategory(p.Types)

		address := p.Address
		if address == "" {
			address = p.Vicinity
		}
		if address == "" {
			address = "Not available"
		}

		place := Place{
			ID:               p.PlaceID,
			Name:             p.Name,
			CategoryKey:      cat.key,
			Category:         cat.label,
			Types:            p.Types,
			Rating:           p.Rating,
			UserRatingsTotal: p.Ratings,
			Address:          address,
			MapLink:          "https://www.google.com/maps/place/?q=place_id:" + url.QueryEscape(p.PlaceID),
			PriceLevel:       p.Price,
			PhotosAvailable:  len(p.Photos) > 0,
			PhotoCount:       len(p.Photos),
			Website:          p.Website,
			Source:           "google_places",
		}
		if p.Geometry.Location.Lat != 0 || p.Geometry.Location.Lng != 0 {
			place.Location = &transport.Location{Lat: p.Geometry.Location.Lat, Lon: p.Geometry.Location.Lng}
		}
		if p.OpeningHours != nil {
			open := p.OpeningHours.OpenNow
			place.OpenNow = &open
		}
		if len(p.Photos) > 0 {
			place.Thumbnail = fmt.Sprintf("/photo/placePhoto?ref=%s&maxwidth=300", url.QueryEscape(p.Photos[0].PhotoReference))
		}
		out = append(out, place)
	}
	return out
}
