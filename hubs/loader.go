package hubs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

// railway station data is GeoJSON; coordinates are [lon, lat]
type stationFeature struct {
	Properties struct {
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}

type stationCollection struct {
	Features []stationFeature `json:"features"`
}

type depotRecord struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Load reads the railway-station GeoJSON and bus-depot JSON files into an
// index. Either path may be empty, leaving that mode without hub data.
func Load(railwayPath, depotPath string) (*Index, error) {
	var stations, depots []transport.StopReference

	if railwayPath != "" {
		data, err := os.ReadFile(railwayPath)
		if err != nil {
			return nil, fmt.Errorf("railway stations: %w", err)
		}
		var fc stationCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("railway stations: %w", err)
		}
		for _, f := range fc.Features {
			if len(f.Geometry.Coordinates) < 2 {
				continue
			}
			stations = append(stations, transport.StopReference{
				Code:       f.Properties.Code,
				Name:       f.Properties.Name,
				Lat:        f.Geometry.Coordinates[1],
				Lon:        f.Geometry.Coordinates[0],
				IsJunction: isJunctionName(f.Properties.Name),
			})
		}
	}

	if depotPath != "" {
		data, err := os.ReadFile(depotPath)
		if err != nil {
			return nil, fmt.Errorf("bus depots: %w", err)
		}
		var records []depotRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("bus depots: %w", err)
		}
		for _, r := range records {
			depots = append(depots, transport.StopReference{
				Name:    r.Name,
				Lat:     r.Latitude,
				Lon:     r.Longitude,
				IsDepot: true,
			})
		}
	}

	return NewIndex(stations, depots), nil
}

// isJunctionName is the rail major-interchange predicate: station names
// carry a "Jn" marker.
func isJunctionName(name string) bool {
	return strings.Contains(strings.ToLower(name), "jn")
}
