// Package tripplanner wires the trip planner's HTTP surface: it builds the
// planner from configuration and serves the planning, discovery and photo
// endpoints.
package tripplanner

import (
	"net/http"
	"time"

	"github.com/TSRCHARAN/TripPlanner/config"
	"github.com/TSRCHARAN/TripPlanner/hubs"
	"github.com/TSRCHARAN/TripPlanner/places"
	"github.com/TSRCHARAN/TripPlanner/planner"
	"github.com/TSRCHARAN/TripPlanner/providers"
	"github.com/TSRCHARAN/TripPlanner/ranking"
	"github.com/TSRCHARAN/TripPlanner/transport"
)

// App holds the wired application: configuration, hub index and planner.
type App struct {
	cfg        config.AppConfig
	hubIndex   *hubs.Index
	planner    *planner.Planner
	geocoder   providers.Geocoder
	httpClient *http.Client
	server     *http.Server
}

// NewApp builds the application from configuration: hub index, provider
// clients, scorer and planner.
func NewApp(cfg config.AppConfig) (*App, error) {
	hubIndex, err := hubs.Load(cfg.Data.RailwayStationsPath, cfg.Data.BusDepotsPath)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Providers.TimeoutMS) * time.Millisecond,
	}

	geocoder := providers.NewGoogleGeocoder(cfg.Providers.GeocodeBaseURL, cfg.Providers.GoogleAPIKey, httpClient)
	trains := providers.NewTrainClient(cfg.Providers.TrainBaseURL, httpClient)
	buses := providers.NewBusClient(cfg.Providers.BusBaseURL, httpClient)
	placesClient := places.NewClient(cfg.Providers.PlacesBaseURL, cfg.Providers.GoogleAPIKey, httpClient)

	services := map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trains, Schedules: trains},
		transport.ModeBus:   {Stops: buses, Schedules: buses},
	}

	p := planner.New(geocoder, hubIndex, ranking.NewScorer(cfg.Ranking), services, placesClient)

	return &App{
		cfg:        cfg,
		hubIndex:   hubIndex,
		planner:    p,
		geocoder:   geocoder,
		httpClient: httpClient,
	}, nil
}

// Planner exposes the discovery orchestrator, mainly for the CLI oneshot
// mode.
func (a *App) Planner() *planner.Planner { return a.planner }
