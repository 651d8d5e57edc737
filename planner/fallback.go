package planner

import (
	"context"
	"log"

	"github.com/TSRCHARAN/TripPlanner/hubs"
	"github.com/TSRCHARAN/TripPlanner/transport"
)

// fallbackStrategy enumerates and queries a mode's hub-mediated route
// combinations. Keyed by mode in fallbackStrategies so each mode's
// combination list is defined exactly once.
type fallbackStrategy func(p *Planner, ctx context.Context, svc ModeService, src, dst hubs.Nearby, stops stopPair, prefs transport.Preferences) []transport.Candidate

var fallbackStrategies = map[transport.Mode]fallbackStrategy{
	transport.ModeTrain: (*Planner).junctionFallback,
	transport.ModeBus:   (*Planner).depotFallback,
}

// fallbackCandidates runs the hub fallback for every allowed mode, in mode
// order. It only runs when direct discovery produced nothing.
func (p *Planner) fallbackCandidates(ctx context.Context, startGeo, destGeo transport.Location, stops map[transport.Mode]stopPair, prefs transport.Preferences) []transport.Candidate {
	var out []transport.Candidate
	for _, mode := range transport.AllModes {
		svc, ok := p.services[mode]
		if !ok || !prefs.Allows(mode) {
			continue
		}
		strategy, ok := fallbackStrategies[mode]
		if !ok {
			continue
		}
		src := p.hubs.Nearest(startGeo, mode)
		dst := p.hubs.Nearest(destGeo, mode)
		out = append(out, strategy(p, ctx, svc, src, dst, stops[mode], prefs)...)
	}
	return out
}

// hubCombo is one fallback combination: the endpoints to query and the hub
// metadata to attach to resulting candidates.
type hubCombo struct {
	from *transport.StopReference
	to   *transport.StopReference
	hubs transport.HubPair
}

// junctionFallback enumerates up to five combinations: source hub to
// destination stop, source stop to destination hub, the two junction
// variants, and junction to junction. Combinations with an unresolved
// endpoint are skipped; the rest run independently and concurrently, and a
// failed combination yields zero candidates without aborting the others.
func (p *Planner) junctionFallback(ctx context.Context, svc ModeService, src, dst hubs.Nearby, stops stopPair, prefs transport.Preferences) []transport.Candidate {
	var combos []hubCombo
	add := func(from, to *transport.StopReference, pair transport.HubPair) {
		if from == nil || from.Code == "" || to == nil || to.Code == "" {
			return
		}
		combos = append(combos, hubCombo{from: from, to: to, hubs: pair})
	}

	add(src.Nearest, stops.to, transport.HubPair{From: src.Nearest})
	add(stops.from, dst.Nearest, transport.HubPair{To: dst.Nearest})
	add(src.NearestJunction, stops.to, transport.HubPair{From: src.NearestJunction})
	add(stops.from, dst.NearestJunction, transport.HubPair{To: dst.NearestJunction})
	add(src.NearestJunction, dst.NearestJunction, transport.HubPair{From: src.NearestJunction, To: dst.NearestJunction})

	return p.queryCombos(ctx, transport.ModeTrain, svc, combos, prefs)
}

// depotFallback attempts the single bus combination, source depot to
// destination depot. Depot names must be re-resolved to provider location
// ids first; a failed or empty resolution yields zero candidates.
func (p *Planner) depotFallback(ctx context.Context, svc ModeService, src, dst hubs.Nearby, _ stopPair, prefs transport.Preferences) []transport.Candidate {
	if src.Nearest == nil || dst.Nearest == nil {
		return nil
	}

	fromRef, err := svc.Stops.ResolveStop(ctx, src.Nearest.Name)
	if err != nil || fromRef == nil || fromRef.Code == "" {
		if err != nil {
			log.Printf("bus hub resolution failed for %q: %v", src.Nearest.Name, err)
		}
		return nil
	}
	toRef, err := svc.Stops.ResolveStop(ctx, dst.Nearest.Name)
	if err != nil || toRef == nil || toRef.Code == "" {
		if err != nil {
			log.Printf("bus hub resolution failed for %q: %v", dst.Nearest.Name, err)
		}
		return nil
	}

	combos := []hubCombo{{
		from: fromRef,
		to:   toRef,
		hubs: transport.HubPair{From: src.Nearest, To: dst.Nearest},
	}}
	return p.queryCombos(ctx, transport.ModeBus, svc, combos, prefs)
}

// queryCombos queries the schedule provider for each combination
// concurrently and assembles scored via-hub candidates. Results keep
// combination order regardless of completion order, so ranking tie-breaks
// stay deterministic.
func (p *Planner) queryCombos(ctx context.Context, mode transport.Mode, svc ModeService, combos []hubCombo, prefs transport.Preferences) []transport.Candidate {
	tasks := make([]func(context.Context) ([]transport.RawOption, error), len(combos))
	for i, combo := range combos {
		combo := combo
		tasks[i] = func(ctx context.Context) ([]transport.RawOption, error) {
			return svc.Schedules.Departures(ctx, combo.from.Code, combo.to.Code, prefs.StartDate)
		}
	}

	results := settleAll(ctx, tasks)

	var out []transport.Candidate
	for i, r := range results {
		if r.err != nil {
			log.Printf("hub %s search %s->%s failed: %v", mode, combos[i].from.Code, combos[i].to.Code, r.err)
			continue
		}
		for _, opt := range r.value {
			c := transport.NewHubCandidate(mode, opt, combos[i].hubs)
			c.Score = p.scorer.ComputeScore(c, prefs)
			out = append(out, c)
		}
	}
	return out
}
