package hubs

import (
	"github.com/TSRCHARAN/TripPlanner/transport"
	"github.com/TSRCHARAN/TripPlanner/utils"
)

// Nearby is the result of a nearest-hub lookup. Nearest is the closest stop
// of any kind; NearestJunction is the closest stop satisfying the mode's
// major-interchange predicate (junction for rail, depot for bus). Either
// may be nil when the index has no matching entry.
type Nearby struct {
	Nearest         *transport.StopReference `json:"nearest"`
	NearestJunction *transport.StopReference `json:"nearestJunction"`
}

// Index holds the per-mode hub tables.
type Index struct {
	stations []transport.StopReference
	depots   []transport.StopReference
}

// NewIndex builds an index from already-loaded stop tables. Used by tests
// and by Load.
func NewIndex(stations, depots []transport.StopReference) *Index {
	return &Index{stations: stations, depots: depots}
}

// Nearest finds the closest hub and closest major interchange to a location
// for the given mode. Modes without hub data (flight) return an empty
// result.
func (ix *Index) Nearest(loc transport.Location, mode transport.Mode) Nearby {
	var data []transport.StopReference
	switch mode {
	case transport.ModeTrain:
		data = ix.stations
	case transport.ModeBus:
		data = ix.depots
	default:
		return Nearby{}
	}

	var out Nearby
	minDist, minJunctionDist := -1.0, -1.0
	for i := range data {
		hub := data[i]
		d := utils.HaversineKM(loc.Lat, loc.Lon, hub.Lat, hub.Lon)
		if minDist < 0 || d < minDist {
			minDist = d
			ref := hub
			ref.DistanceKM = d
			out.Nearest = &ref
		}
		if !hub.IsJunction && !hub.IsDepot {
			continue
		}
		if minJunctionDist < 0 || d < minJunctionDist {
			minJunctionDist = d
			ref := hub
			ref.DistanceKM = d
			out.NearestJunction = &ref
		}
	}
	return out
}
