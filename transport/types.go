package transport

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// StopReference identifies a station, depot or stop with a schedule
// provider. IsJunction marks a major rail interchange; IsDepot marks a bus
// depot. DistanceKM is filled when the reference comes out of a nearest-hub
// lookup.
type StopReference struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat,omitempty"`
	Lon        float64 `json:"lon,omitempty"`
	IsJunction bool    `json:"isJunction,omitempty"`
	IsDepot    bool    `json:"isDepot,omitempty"`
	DistanceKM float64 `json:"distance_km,omitempty"`
}

// RawOption is a single scheduled service as returned by a schedule
// provider. Immutable once fetched.
type RawOption struct {
	Name          string   `json:"name"`
	Number        string   `json:"number"`
	Fare          float64  `json:"fare"`
	Duration      string   `json:"duration"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	AvlClasses    []string `json:"avlClasses,omitempty"`
	SeatType      string   `json:"seatType,omitempty"`
	Availability  string   `json:"availability,omitempty"`
	FromCode      string   `json:"fromStnCode,omitempty"`
	ToCode        string   `json:"toStnCode,omitempty"`
}

// HubPair records the intermediate hubs a fallback route runs through.
// At least one side is set on any via-hub candidate.
type HubPair struct {
	From *StopReference `json:"from,omitempty"`
	To   *StopReference `json:"to,omitempty"`
}

// Geocodes reports which coordinates discovery resolved for the endpoints.
type Geocodes struct {
	StartGeo *Location `json:"startGeo"`
	DestGeo  *Location `json:"destGeo"`
}

// RankingResult is the output of transport discovery: the best candidate,
// every candidate ordered by descending score, and a human-readable
// justification for the pick.
type RankingResult struct {
	Best        Candidate   `json:"best"`
	AllOptions  []Candidate `json:"allOptions"`
	Reasoning   string      `json:"reasoning"`
	UsedGeocode Geocodes    `json:"usedGeocode"`
}
