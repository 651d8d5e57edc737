package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort           = 3000
	defaultGeocodeBaseURL = "https://maps.googleapis.com/maps/api"
	defaultPlacesBaseURL  = "https://maps.googleapis.com/maps/api"
	defaultTrainBaseURL   = "https://cttrainsapi.confirmtkt.com"
	defaultBusBaseURL     = "https://www.abhibus.com"
	defaultTimeoutMS      = 10000
)

// Load reads, validates and defaults the application configuration. The
// first readable path wins; with no paths (or no readable file among them)
// the built-in defaults are used. GOOGLE_API_KEY and PORT environment
// variables override the file.
func Load(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}

	var cfg AppConfig
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, err
		}
		break
	}

	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.Providers); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.Ranking.Weights); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		cfg.Providers.GoogleAPIKey = key
	}
	if cfg.Providers.GeocodeBaseURL == "" {
		cfg.Providers.GeocodeBaseURL = defaultGeocodeBaseURL
	}
	if cfg.Providers.PlacesBaseURL == "" {
		cfg.Providers.PlacesBaseURL = defaultPlacesBaseURL
	}
	if cfg.Providers.TrainBaseURL == "" {
		cfg.Providers.TrainBaseURL = defaultTrainBaseURL
	}
	if cfg.Providers.BusBaseURL == "" {
		cfg.Providers.BusBaseURL = defaultBusBaseURL
	}
	if cfg.Providers.TimeoutMS == 0 {
		cfg.Providers.TimeoutMS = defaultTimeoutMS
	}

	def := DefaultRanking()
	zero := Weights{}
	if cfg.Ranking.Weights == zero {
		cfg.Ranking.Weights = def.Weights
	}
	if len(cfg.Ranking.ModeMultipliers) == 0 {
		cfg.Ranking.ModeMultipliers = def.ModeMultipliers
	}
	if len(cfg.Ranking.TimeSlots) == 0 {
		cfg.Ranking.TimeSlots = def.TimeSlots
	}
	if len(cfg.Ranking.SeatComfort) == 0 {
		cfg.Ranking.SeatComfort = def.SeatComfort
	}
}
