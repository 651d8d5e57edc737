package planner

import (
	"context"
	"log"
	"sort"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

// FindBestTransport resolves both endpoints, discovers direct and (when
// needed) hub-mediated candidates for every allowed mode, and returns them
// ranked by score with a justification for the best pick.
//
// Fails with *transport.ResolutionError when an endpoint's coordinates
// cannot be determined and with *transport.NoOptionsError when direct and
// fallback discovery both come up empty.
func (p *Planner) FindBestTransport(ctx context.Context, from, to string, prefs transport.Preferences) (*transport.RankingResult, error) {
	startGeo, destGeo := p.resolveEndpoints(ctx, from, to, prefs)
	if startGeo == nil {
		return nil, &transport.ResolutionError{Place: from}
	}
	if destGeo == nil {
		return nil, &transport.ResolutionError{Place: to}
	}

	stops := p.resolveStops(ctx, from, to, prefs)

	candidates := p.directCandidates(ctx, stops, prefs)
	if len(candidates) == 0 {
		log.Printf("no direct transport from %q to %q, searching via hubs", from, to)
		candidates = p.fallbackCandidates(ctx, *startGeo, *destGeo, stops, prefs)
	}
	if len(candidates) == 0 {
		return nil, &transport.NoOptionsError{From: from, To: to}
	}

	// Stable: equal scores keep discovery order (direct before fallback,
	// trains before buses, provider order within a source).
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	best := candidates[0]
	return &transport.RankingResult{
		Best:        best,
		AllOptions:  candidates,
		Reasoning:   p.scorer.ExplainChoice(best.Mode, best, prefs),
		UsedGeocode: transport.Geocodes{StartGeo: startGeo, DestGeo: destGeo},
	}, nil
}

// resolveEndpoints returns coordinates for both endpoints. Explicit
// coordinates in the preferences win over geocoding; the two geocode calls
// run concurrently and fail independently.
func (p *Planner) resolveEndpoints(ctx context.Context, from, to string, prefs transport.Preferences) (*transport.Location, *transport.Location) {
	names := [2]string{from, to}
	fixed := [2]*transport.Location{prefs.StartCoords, prefs.DestCoords}

	tasks := make([]func(context.Context) (*transport.Location, error), 2)
	for i := 0; i < 2; i++ {
		i := i
		tasks[i] = func(ctx context.Context) (*transport.Location, error) {
			if fixed[i] != nil {
				return fixed[i], nil
			}
			res, err := p.geo.Resolve(ctx, names[i])
			if err != nil || res == nil {
				return nil, err
			}
			loc := res.Location
			return &loc, nil
		}
	}

	results := settleAll(ctx, tasks)
	for i, r := range results {
		if r.err != nil {
			log.Printf("geocode failed for %q: %v", names[i], r.err)
		}
	}
	return results[0].value, results[1].value
}

// resolveStops resolves stop identifiers for both endpoints of every
// allowed mode. All lookups run concurrently; a failure in one leaves that
// slot unresolved without blocking the others.
func (p *Planner) resolveStops(ctx context.Context, from, to string, prefs transport.Preferences) map[transport.Mode]stopPair {
	type slot struct {
		mode   transport.Mode
		name   string
		isFrom bool
	}

	var slots []slot
	var tasks []func(context.Context) (*transport.StopReference, error)
	for _, mode := range transport.AllModes {
		svc, ok := p.services[mode]
		if !ok || !prefs.Allows(mode) {
			continue
		}
		for _, endpoint := range []slot{{mode, from, true}, {mode, to, false}} {
			endpoint := endpoint
			resolver := svc.Stops
			slots = append(slots, endpoint)
			tasks = append(tasks, func(ctx context.Context) (*transport.StopReference, error) {
				return resolver.ResolveStop(ctx, endpoint.name)
			})
		}
	}

	results := settleAll(ctx, tasks)

	pairs := make(map[transport.Mode]stopPair, len(p.services))
	for i, r := range results {
		if r.err != nil {
			log.Printf("stop resolution failed for %s %q: %v", slots[i].mode, slots[i].name, r.err)
			continue
		}
		pair := pairs[slots[i].mode]
		if slots[i].isFrom {
			pair.from = r.value
		} else {
			pair.to = r.value
		}
		pairs[slots[i].mode] = pair
	}
	return pairs
}

// directCandidates fetches and scores direct schedule options for every
// allowed mode with both stops resolved, in mode order.
func (p *Planner) directCandidates(ctx context.Context, stops map[transport.Mode]stopPair, prefs transport.Preferences) []transport.Candidate {
	var out []transport.Candidate
	for _, mode := range transport.AllModes {
		svc, ok := p.services[mode]
		if !ok || !prefs.Allows(mode) {
			continue
		}
		pair := stops[mode]
		if !pair.resolved() {
			continue
		}
		options, err := svc.Schedules.Departures(ctx, pair.from.Code, pair.to.Code, prefs.StartDate)
		if err != nil {
			log.Printf("direct %s search %s->%s failed: %v", mode, pair.from.Code, pair.to.Code, err)
			continue
		}
		for _, opt := range options {
			c := transport.NewCandidate(mode, opt)
			c.Score = p.scorer.ComputeScore(c, prefs)
			out = append(out, c)
		}
	}
	return out
}
