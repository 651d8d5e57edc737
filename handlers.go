package tripplanner

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeDiscoveryError maps the core error taxonomy to HTTP statuses. Only
// ResolutionError and NoOptionsError cross the core boundary; anything else
// is a server fault.
func writeDiscoveryError(w http.ResponseWriter, err error) {
	var resErr *transport.ResolutionError
	var noOptErr *transport.NoOptionsError
	switch {
	case errors.As(err, &resErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Message: err.Error()})
	case errors.As(err, &noOptErr):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	default:
		log.Printf("server error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal Server Error"})
	}
}

func (a *App) handlePlanTripAuto(w http.ResponseWriter, r *http.Request) {
	var prefs transport.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	if prefs.FromLocation == "" || prefs.ToLocation == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "fromLocation and toLocation are required"})
		return
	}

	plan, err := a.planner.PlanTrip(r.Context(), prefs)
	if err != nil {
		writeDiscoveryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

type planWithTransportRequest struct {
	TransportChoice transport.Candidate   `json:"transportChoice"`
	Prefs           transport.Preferences `json:"prefs"`
}

func (a *App) handlePlanTripWithTransport(w http.ResponseWriter, r *http.Request) {
	var req planWithTransportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	plan, err := a.planner.PlanWithTransport(r.Context(), req.TransportChoice, req.Prefs)
	if err != nil {
		writeDiscoveryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

type transportOptionsRequest struct {
	Start       string `json:"start"`
	Destination string `json:"destination"`
	transport.Preferences
}

func (a *App) handleGetTransportOptions(w http.ResponseWriter, r *http.Request) {
	var req transportOptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	from, to := req.Start, req.Destination
	if from == "" {
		from = req.FromLocation
	}
	if to == "" {
		to = req.ToLocation
	}
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "start and destination are required"})
		return
	}

	result, err := a.planner.FindBestTransport(r.Context(), from, to, req.Preferences)
	if err != nil {
		writeDiscoveryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type nearestHubRequest struct {
	Location json.RawMessage `json:"location"`
	Mode     string          `json:"mode"`
}

func (a *App) handleGetNearestHub(w http.ResponseWriter, r *http.Request) {
	var req nearestHubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Location) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "missing 'location' in request body"})
		return
	}

	mode := transport.ModeTrain
	if req.Mode != "" {
		parsed, ok := transport.ParseMode(req.Mode)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "unsupported mode: " + req.Mode})
			return
		}
		mode = parsed
	}

	// The location is either a place name or explicit coordinates.
	// Pointer fields tell an explicit {"lat":0,"lon":0} apart from a
	// missing coordinate object.
	var coords struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	}
	var loc transport.Location
	if err := json.Unmarshal(req.Location, &coords); err == nil && coords.Lat != nil && coords.Lon != nil {
		loc = transport.Location{Lat: *coords.Lat, Lon: *coords.Lon}
	} else {
		var name string
		if err := json.Unmarshal(req.Location, &name); err != nil || name == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "unsupported 'location' format, provide a string or {lat,lon}"})
			return
		}
		geo, err := a.geocoder.Resolve(r.Context(), name)
		if err != nil || geo == nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "could not resolve location"})
			return
		}
		loc = geo.Location
	}

	nearby := a.hubIndex.Nearest(loc, mode)
	writeJSON(w, http.StatusOK, map[string]any{
		"location": loc,
		"mode":     mode,
		"hubs":     nearby,
	})
}
