package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// ProvidersConfig contains the external collaborator endpoints
type ProvidersConfig struct {
	GoogleAPIKey   string `yaml:"googleAPIKey" validate:"omitempty"`
	GeocodeBaseURL string `yaml:"geocodeBaseURL" validate:"omitempty,url"`
	PlacesBaseURL  string `yaml:"placesBaseURL" validate:"omitempty,url"`
	TrainBaseURL   string `yaml:"trainBaseURL" validate:"omitempty,url"`
	BusBaseURL     string `yaml:"busBaseURL" validate:"omitempty,url"`
	TimeoutMS      int    `yaml:"timeoutMS" validate:"gte=0"`
}

// DataConfig points at the static geographic hub data
type DataConfig struct {
	RailwayStationsPath string `yaml:"railwayStations" validate:"omitempty"`
	BusDepotsPath       string `yaml:"busDepots" validate:"omitempty"`
}

// Weights balance the four scoring dimensions. Values should sum roughly to
// 1.0; the scorer trusts the configuration and does not re-normalize.
type Weights struct {
	Budget      float64 `yaml:"budget" validate:"gte=0"`
	Time        float64 `yaml:"time" validate:"gte=0"`
	Comfort     float64 `yaml:"comfort" validate:"gte=0"`
	Convenience float64 `yaml:"convenience" validate:"gte=0"`
}

// ModeMultiplier adjusts the final score per travel mode. The scorer applies
// the average of the two factors.
type ModeMultiplier struct {
	Comfort        float64 `yaml:"comfort"`
	CostEfficiency float64 `yaml:"costEfficiency"`
}

// RankingConfig is the immutable weighting table injected into the score
// engine. TimeSlots map slot names to [startMinute, endMinute] windows in
// minutes since midnight; SeatComfort maps seat-class codes to a comfort
// level in [0,1].
type RankingConfig struct {
	Weights         Weights                   `yaml:"weights"`
	ModeMultipliers map[string]ModeMultiplier `yaml:"modeMultipliers"`
	TimeSlots       map[string][2]int         `yaml:"timeSlots"`
	SeatComfort     map[string]float64        `yaml:"seatComfort"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server" validate:"required"`
	Providers ProvidersConfig `yaml:"providers"`
	Data      DataConfig      `yaml:"data"`
	Ranking   RankingConfig   `yaml:"ranking"`
}
