package transport

// TransportPrefs carries the traveler's mode and seat wishes.
type TransportPrefs struct {
	PreferredModes []string `json:"preferred_modes,omitempty"`
	SeatClasses    []string `json:"seat_class,omitempty"`
}

// FoodPrefs carries dining preferences used for place recommendations.
type FoodPrefs struct {
	Type              string   `json:"type,omitempty"`
	PreferredCuisines []string `json:"preferred_cuisines,omitempty"`
}

// AccommodationPrefs carries lodging preferences.
type AccommodationPrefs struct {
	Types     []string `json:"types,omitempty"`
	RatingMin float64  `json:"rating_min,omitempty"`
}

// SightseeingPrefs carries attraction preferences.
type SightseeingPrefs struct {
	Interests   []string `json:"interests,omitempty"`
	AvoidCrowds bool     `json:"avoid_crowds,omitempty"`
}

// Preferences is the user-supplied trip configuration. It is consumed
// read-only by scoring, discovery and fallback logic.
type Preferences struct {
	FromLocation        string             `json:"fromLocation"`
	ToLocation          string             `json:"toLocation"`
	StartDate           string             `json:"startDate,omitempty"`
	ReturnDate          string             `json:"returnDate,omitempty"`
	Budget              float64            `json:"budget,omitempty"`
	BudgetCategory      string             `json:"budgetCategory,omitempty"`
	AvoidModes          []Mode             `json:"avoidModes,omitempty"`
	PreferredStartTime  string             `json:"preferredStartTime,omitempty"`
	PreferredReturnTime string             `json:"preferredReturnTime,omitempty"`
	IsReturn            bool               `json:"isReturn,omitempty"`
	StartCoords         *Location          `json:"startCoords,omitempty"`
	DestCoords          *Location          `json:"destCoords,omitempty"`
	Transport           TransportPrefs     `json:"transport,omitempty"`
	Food                FoodPrefs          `json:"food,omitempty"`
	Accommodation       AccommodationPrefs `json:"accommodation,omitempty"`
	Sightseeing         SightseeingPrefs   `json:"sightseeing,omitempty"`
}

// Allows reports whether a mode survives the avoid list. An avoided mode is
// excluded from both direct and fallback discovery.
func (p Preferences) Allows(m Mode) bool {
	for _, avoided := range p.AvoidModes {
		if avoided == m {
			return false
		}
	}
	return true
}
