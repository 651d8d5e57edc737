package providers

import (
	"context"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

// GeoResult is a resolved place.
type GeoResult struct {
	Location         transport.Location `json:"location"`
	FormattedAddress string             `json:"formattedAddress,omitempty"`
	PlaceID          string             `json:"placeId,omitempty"`
}

// Geocoder resolves a free-text place name to coordinates. An unknown place
// yields (nil, nil).
type Geocoder interface {
	Resolve(ctx context.Context, name string) (*GeoResult, error)
}

// StopResolver resolves a place name to a mode-specific stop reference. An
// unknown place yields (nil, nil).
type StopResolver interface {
	ResolveStop(ctx context.Context, name string) (*transport.StopReference, error)
}

// ScheduleProvider lists scheduled services between two resolved stops on a
// journey date (YYYY-MM-DD or DD-MM-YYYY).
type ScheduleProvider interface {
	Departures(ctx context.Context, fromCode, toCode, date string) ([]transport.RawOption, error)
}
