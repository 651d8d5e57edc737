package planner

import (
	"github.com/TSRCHARAN/TripPlanner/hubs"
	"github.com/TSRCHARAN/TripPlanner/places"
	"github.com/TSRCHARAN/TripPlanner/providers"
	"github.com/TSRCHARAN/TripPlanner/ranking"
	"github.com/TSRCHARAN/TripPlanner/transport"
)

// ModeService binds one mode's stop resolver and schedule provider. The
// planner looks services up by mode, so discovery never branches on mode
// strings.
type ModeService struct {
	Stops     providers.StopResolver
	Schedules providers.ScheduleProvider
}

// HubLocator answers nearest-hub queries against the static geographic
// index.
type HubLocator interface {
	Nearest(loc transport.Location, mode transport.Mode) hubs.Nearby
}

// Planner is the transport discovery orchestrator. It is safe for
// concurrent use; each call is independent.
type Planner struct {
	geo      providers.Geocoder
	hubs     HubLocator
	scorer   *ranking.Scorer
	services map[transport.Mode]ModeService
	places   *places.Client
}

// New creates a planner. placesClient may be nil; trip plans then skip the
// recommendation lookups.
func New(geo providers.Geocoder, hubLocator HubLocator, scorer *ranking.Scorer, services map[transport.Mode]ModeService, placesClient *places.Client) *Planner {
	return &Planner{
		geo:      geo,
		hubs:     hubLocator,
		scorer:   scorer,
		services: services,
		places:   placesClient,
	}
}

// Scorer exposes the score engine for external re-ranking.
func (p *Planner) Scorer() *ranking.Scorer { return p.scorer }

// stopPair holds the resolved stop references for both endpoints of one
// mode. Either side may be nil when resolution failed.
type stopPair struct {
	from *transport.StopReference
	to   *transport.StopReference
}

func (sp stopPair) resolved() bool {
	return sp.from != nil && sp.from.Code != "" && sp.to != nil && sp.to.Code != ""
}
