package planner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TSRCHARAN/TripPlanner/config"
	"github.com/TSRCHARAN/TripPlanner/hubs"
	"github.com/TSRCHARAN/TripPlanner/planner"
	"github.com/TSRCHARAN/TripPlanner/providers"
	"github.com/TSRCHARAN/TripPlanner/ranking"
	"github.com/TSRCHARAN/TripPlanner/transport"
)

type stubGeocoder struct {
	locs map[string]transport.Location
	err  error
}

func (s stubGeocoder) Resolve(ctx context.Context, name string) (*providers.GeoResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	loc, ok := s.locs[name]
	if !ok {
		return nil, nil
	}
	return &providers.GeoResult{Location: loc}, nil
}

type stubStops struct {
	refs map[string]*transport.StopReference
	err  error
}

func (s stubStops) ResolveStop(ctx context.Context, name string) (*transport.StopReference, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.refs[name], nil
}

// stubSchedules serves options keyed by "FROM->TO".
type stubSchedules struct {
	options map[string][]transport.RawOption
	err     error
}

func (s stubSchedules) Departures(ctx context.Context, fromCode, toCode, date string) ([]transport.RawOption, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.options[fromCode+"->"+toCode], nil
}

// stubHubs answers nearest-hub queries by endpoint: queries at the origin
// coordinates get src, everything else gets dst.
type stubHubs struct {
	src    map[transport.Mode]hubs.Nearby
	dst    map[transport.Mode]hubs.Nearby
	called bool
}

func (s *stubHubs) Nearest(loc transport.Location, mode transport.Mode) hubs.Nearby {
	s.called = true
	if loc == bangalore {
		return s.src[mode]
	}
	return s.dst[mode]
}

var (
	bangalore = transport.Location{Lat: 12.9716, Lon: 77.5946}
	hampi     = transport.Location{Lat: 15.3350, Lon: 76.4600}
)

func geocoderFor(from, to string) stubGeocoder {
	return stubGeocoder{locs: map[string]transport.Location{from: bangalore, to: hampi}}
}

func newPlanner(geo providers.Geocoder, hubLocator planner.HubLocator, services map[transport.Mode]planner.ModeService) *planner.Planner {
	return planner.New(geo, hubLocator, ranking.NewScorer(config.DefaultRanking()), services, nil)
}

func TestFindBestTransportDirect(t *testing.T) {
	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"Bangalore": {Code: "SBC", Name: "Bengaluru City Jn"},
		"Hospet":    {Code: "HPT", Name: "Hosapete Jn"},
	}}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"SBC->HPT": {
			{Name: "Hampi Express", Number: "16592", Fare: 400, DepartureTime: "21:40", AvlClasses: []string{"SL"}},
			{Name: "Day Express", Number: "11302", Fare: 350, DepartureTime: "09:10", AvlClasses: []string{"1A"}},
		},
	}}
	busStops := stubStops{refs: map[string]*transport.StopReference{
		"Bangalore": {Code: "3", Name: "Bangalore"},
		"Hospet":    {Code: "81", Name: "Hospet"},
	}}
	busSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"3->81": {
			{Name: "Night Rider", Fare: 650, DepartureTime: "22:30", SeatType: "NONAC"},
		},
	}}

	hubLocator := &stubHubs{}
	p := newPlanner(geocoderFor("Bangalore", "Hospet"), hubLocator, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
		transport.ModeBus:   {Stops: busStops, Schedules: busSchedules},
	})

	prefs := transport.Preferences{Budget: 1000, PreferredStartTime: "morning", StartDate: "2026-09-15"}
	res, err := p.FindBestTransport(context.Background(), "Bangalore", "Hospet", prefs)
	require.NoError(t, err)

	assert.Len(t, res.AllOptions, 3)
	// The morning 1A train dominates on timing, comfort and fare.
	assert.Equal(t, "Day Express", res.Best.Option.Name)
	assert.False(t, res.Best.ViaHub)
	for i := 1; i < len(res.AllOptions); i++ {
		assert.GreaterOrEqual(t, res.AllOptions[i-1].Score, res.AllOptions[i].Score)
	}
	assert.Contains(t, res.Reasoning, "Train chosen")

	require.NotNil(t, res.UsedGeocode.StartGeo)
	assert.Equal(t, bangalore, *res.UsedGeocode.StartGeo)
	require.NotNil(t, res.UsedGeocode.DestGeo)
	assert.Equal(t, hampi, *res.UsedGeocode.DestGeo)

	// Direct options found, so the hub index was never consulted.
	assert.False(t, hubLocator.called)
}

func TestFindBestTransportStableOrderOnTies(t *testing.T) {
	identical := transport.RawOption{Fare: 400, DepartureTime: "09:00", AvlClasses: []string{"SL"}}
	first, second := identical, identical
	first.Number = "11111"
	second.Number = "22222"

	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"AAA->BBB": {first, second},
	}}

	p := newPlanner(geocoderFor("A", "B"), &stubHubs{}, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
	})

	res, err := p.FindBestTransport(context.Background(), "A", "B", transport.Preferences{Budget: 1000})
	require.NoError(t, err)
	require.Len(t, res.AllOptions, 2)
	assert.Equal(t, res.AllOptions[0].Score, res.AllOptions[1].Score)
	// Equal scores keep provider order.
	assert.Equal(t, "11111", res.AllOptions[0].Option.Number)
	assert.Equal(t, "22222", res.AllOptions[1].Option.Number)
}

func TestFindBestTransportAvoidModes(t *testing.T) {
	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"AAA->BBB": {{Name: "Train", Fare: 300}},
	}}
	busStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "1"}, "B": {Code: "2"},
	}}
	busSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"1->2": {{Name: "Bus", Fare: 100}},
	}}

	p := newPlanner(geocoderFor("A", "B"), &stubHubs{}, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
		transport.ModeBus:   {Stops: busStops, Schedules: busSchedules},
	})

	prefs := transport.Preferences{Budget: 1000, AvoidModes: []transport.Mode{transport.ModeBus}}
	res, err := p.FindBestTransport(context.Background(), "A", "B", prefs)
	require.NoError(t, err)
	require.Len(t, res.AllOptions, 1)
	assert.Equal(t, transport.ModeTrain, res.AllOptions[0].Mode)
}

func TestFallbackHonorsAvoidModes(t *testing.T) {
	// No direct service anywhere; only the bus depot combination could
	// produce a candidate.
	srcDepot := &transport.StopReference{Name: "Majestic Depot", IsDepot: true}
	dstDepot := &transport.StopReference{Name: "Hospet Depot", IsDepot: true}

	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{}}
	busStops := stubStops{refs: map[string]*transport.StopReference{
		"Majestic Depot": {Code: "3", Name: "Majestic Depot"},
		"Hospet Depot":   {Code: "81", Name: "Hospet Depot"},
	}}
	busSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"3->81": {{Name: "Depot Hopper", Fare: 550}},
	}}

	hubLocator := &stubHubs{
		src: map[transport.Mode]hubs.Nearby{
			transport.ModeBus: {Nearest: srcDepot},
		},
		dst: map[transport.Mode]hubs.Nearby{
			transport.ModeBus: {Nearest: dstDepot},
		},
	}

	services := map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
		transport.ModeBus:   {Stops: busStops, Schedules: busSchedules},
	}

	// Without the avoid list the depot combination is found.
	p := newPlanner(geocoderFor("A", "B"), hubLocator, services)
	res, err := p.FindBestTransport(context.Background(), "A", "B", transport.Preferences{Budget: 1000})
	require.NoError(t, err)
	assert.Equal(t, transport.ModeBus, res.Best.Mode)
	assert.True(t, res.Best.ViaHub)

	// Avoiding buses removes the mode from fallback discovery too.
	prefs := transport.Preferences{Budget: 1000, AvoidModes: []transport.Mode{transport.ModeBus}}
	_, err = p.FindBestTransport(context.Background(), "A", "B", prefs)
	var noOpt *transport.NoOptionsError
	require.ErrorAs(t, err, &noOpt)
}

func TestFindBestTransportResolutionError(t *testing.T) {
	geo := stubGeocoder{locs: map[string]transport.Location{"Bangalore": bangalore}}
	p := newPlanner(geo, &stubHubs{}, map[transport.Mode]planner.ModeService{})

	_, err := p.FindBestTransport(context.Background(), "Bangalore", "Nowhere", transport.Preferences{})
	var resErr *transport.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "Nowhere", resErr.Place)
}

func TestFindBestTransportNoOptions(t *testing.T) {
	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{}}

	p := newPlanner(geocoderFor("A", "B"), &stubHubs{}, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
	})

	_, err := p.FindBestTransport(context.Background(), "A", "B", transport.Preferences{})
	var noOpt *transport.NoOptionsError
	require.ErrorAs(t, err, &noOpt)
	assert.Equal(t, "A", noOpt.From)
	assert.Equal(t, "B", noOpt.To)
}

func TestFindBestTransportProviderFailureIsAbsorbed(t *testing.T) {
	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	trainSchedules := stubSchedules{err: errors.New("upstream down")}
	busStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "1"}, "B": {Code: "2"},
	}}
	busSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"1->2": {{Name: "Bus", Fare: 100}},
	}}

	p := newPlanner(geocoderFor("A", "B"), &stubHubs{}, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
		transport.ModeBus:   {Stops: busStops, Schedules: busSchedules},
	})

	res, err := p.FindBestTransport(context.Background(), "A", "B", transport.Preferences{Budget: 500})
	require.NoError(t, err)
	require.Len(t, res.AllOptions, 1)
	assert.Equal(t, transport.ModeBus, res.AllOptions[0].Mode)
}

func TestJunctionFallback(t *testing.T) {
	srcHub := &transport.StopReference{Code: "KJM", Name: "Krishnarajapuram"}
	srcJn := &transport.StopReference{Code: "SBC", Name: "Bengaluru City Jn", IsJunction: true}
	dstHub := &transport.StopReference{Code: "HPT", Name: "Hosapete Jn", IsJunction: true}

	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	// Nothing direct; only the source-junction combination has a service.
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"SBC->BBB": {{Name: "Junction Express", Fare: 500, DepartureTime: "08:00", AvlClasses: []string{"3A"}}},
	}}

	hubLocator := &stubHubs{
		src: map[transport.Mode]hubs.Nearby{
			transport.ModeTrain: {Nearest: srcHub, NearestJunction: srcJn},
		},
		dst: map[transport.Mode]hubs.Nearby{
			transport.ModeTrain: {Nearest: dstHub, NearestJunction: dstHub},
		},
	}

	p := newPlanner(geocoderFor("A", "B"), hubLocator, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
	})

	prefs := transport.Preferences{Budget: 1000, PreferredStartTime: "morning"}
	res, err := p.FindBestTransport(context.Background(), "A", "B", prefs)
	require.NoError(t, err)
	assert.True(t, hubLocator.called)

	require.Len(t, res.AllOptions, 1)
	best := res.Best
	assert.True(t, best.ViaHub)
	assert.Equal(t, "Junction Express", best.Option.Name)
	require.NotNil(t, best.Hubs)
	require.NotNil(t, best.Hubs.From)
	assert.Equal(t, "SBC", best.Hubs.From.Code)
	assert.Nil(t, best.Hubs.To)
	assert.Contains(t, res.Reasoning, "Routed via Bengaluru City Jn.")
}

func TestJunctionFallbackCombinations(t *testing.T) {
	srcHub := &transport.StopReference{Code: "KJM", Name: "Krishnarajapuram"}
	srcJn := &transport.StopReference{Code: "SBC", Name: "Bengaluru City Jn", IsJunction: true}
	dstHub := &transport.StopReference{Code: "HPT", Name: "Hosapete Jn", IsJunction: true}
	dstJn := &transport.StopReference{Code: "UBL", Name: "Hubballi Jn", IsJunction: true}

	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	// Three of the five combinations have service; all are collected.
	opt := transport.RawOption{Fare: 500, DepartureTime: "08:00"}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"KJM->BBB": {opt},
		"AAA->HPT": {opt},
		"SBC->UBL": {opt},
	}}

	hubLocator := &stubHubs{
		src: map[transport.Mode]hubs.Nearby{
			transport.ModeTrain: {Nearest: srcHub, NearestJunction: srcJn},
		},
		dst: map[transport.Mode]hubs.Nearby{
			transport.ModeTrain: {Nearest: dstHub, NearestJunction: dstJn},
		},
	}

	p := newPlanner(geocoderFor("A", "B"), hubLocator, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
	})

	res, err := p.FindBestTransport(context.Background(), "A", "B", transport.Preferences{Budget: 1000})
	require.NoError(t, err)
	require.Len(t, res.AllOptions, 3)
	for _, c := range res.AllOptions {
		assert.True(t, c.ViaHub)
		assert.NotNil(t, c.Hubs)
	}
	// Equal scores: combination order is the tie-break, so the
	// source-hub combination stays first.
	require.NotNil(t, res.Best.Hubs.From)
	assert.Equal(t, "KJM", res.Best.Hubs.From.Code)
}

func TestJunctionFallbackSkipsUnresolvedEndpoints(t *testing.T) {
	// The destination stop never resolves, so combinations that need it
	// are skipped. Junction-to-junction still runs but has no service.
	srcJn := &transport.StopReference{Code: "SBC", Name: "Bengaluru City Jn", IsJunction: true}
	dstJn := &transport.StopReference{Code: "UBL", Name: "Hubballi Jn", IsJunction: true}

	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"},
	}}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"SBC->UBL": {{Name: "Jn To Jn", Fare: 450}},
	}}

	hubLocator := &stubHubs{
		src: map[transport.Mode]hubs.Nearby{
			transport.ModeTrain: {NearestJunction: srcJn},
		},
		dst: map[transport.Mode]hubs.Nearby{
			transport.ModeTrain: {NearestJunction: dstJn},
		},
	}

	p := newPlanner(geocoderFor("A", "B"), hubLocator, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
	})

	res, err := p.FindBestTransport(context.Background(), "A", "B", transport.Preferences{Budget: 1000})
	require.NoError(t, err)

	require.Len(t, res.AllOptions, 1)
	best := res.Best
	assert.Equal(t, "Jn To Jn", best.Option.Name)
	require.NotNil(t, best.Hubs)
	require.NotNil(t, best.Hubs.From)
	require.NotNil(t, best.Hubs.To)
	assert.Equal(t, "SBC", best.Hubs.From.Code)
	assert.Equal(t, "UBL", best.Hubs.To.Code)
}

func TestDepotFallback(t *testing.T) {
	srcDepot := &transport.StopReference{Name: "Majestic Depot", IsDepot: true}
	dstDepot := &transport.StopReference{Name: "Hospet Depot", IsDepot: true}

	busStops := stubStops{refs: map[string]*transport.StopReference{
		// Endpoint names resolve nowhere; depot names resolve to ids.
		"Majestic Depot": {Code: "3", Name: "Majestic Depot"},
		"Hospet Depot":   {Code: "81", Name: "Hospet Depot"},
	}}
	busSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"3->81": {{Name: "Depot Hopper", Fare: 550, SeatType: "AC"}},
	}}

	hubLocator := &stubHubs{
		src: map[transport.Mode]hubs.Nearby{
			transport.ModeBus: {Nearest: srcDepot},
		},
		dst: map[transport.Mode]hubs.Nearby{
			transport.ModeBus: {Nearest: dstDepot},
		},
	}

	p := newPlanner(geocoderFor("A", "B"), hubLocator, map[transport.Mode]planner.ModeService{
		transport.ModeBus: {Stops: busStops, Schedules: busSchedules},
	})

	res, err := p.FindBestTransport(context.Background(), "A", "B", transport.Preferences{Budget: 1000})
	require.NoError(t, err)

	require.Len(t, res.AllOptions, 1)
	best := res.Best
	assert.Equal(t, transport.ModeBus, best.Mode)
	assert.True(t, best.ViaHub)
	assert.Equal(t, "Depot Hopper", best.Option.Name)
	require.NotNil(t, best.Hubs)
	require.NotNil(t, best.Hubs.From)
	require.NotNil(t, best.Hubs.To)
	assert.Equal(t, "Majestic Depot", best.Hubs.From.Name)
	assert.Equal(t, "Hospet Depot", best.Hubs.To.Name)
}

func TestFindReturnTransport(t *testing.T) {
	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"BBB->AAA": {{Name: "Return Express", Fare: 420, ArrivalTime: "19:00", AvlClasses: []string{"3A"}}},
	}}

	p := newPlanner(geocoderFor("A", "B"), &stubHubs{}, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
	})

	prefs := transport.Preferences{
		FromLocation: "A",
		ToLocation:   "B",
		Budget:       1000,
		ReturnDate:   "2026-09-20",
	}
	leg := p.FindReturnTransport(context.Background(), prefs)
	require.True(t, leg.Found)
	require.NotNil(t, leg.SelectedTransport)
	assert.Equal(t, "Return Express", leg.SelectedTransport.Option.Name)
	assert.Contains(t, leg.Reasoning, "preferred return time (evening)")
}

func TestFindReturnTransportDowngradesFailure(t *testing.T) {
	p := newPlanner(stubGeocoder{}, &stubHubs{}, map[transport.Mode]planner.ModeService{})

	prefs := transport.Preferences{FromLocation: "A", ToLocation: "B", ReturnDate: "2026-09-20"}
	leg := p.FindReturnTransport(context.Background(), prefs)
	assert.False(t, leg.Found)
	assert.Equal(t, "no return transport found", leg.Reason)
	assert.Nil(t, leg.SelectedTransport)
}

func TestPlanTripRoundTrip(t *testing.T) {
	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"AAA->BBB": {{Name: "Onward Express", Fare: 400, DepartureTime: "09:00"}},
		"BBB->AAA": {{Name: "Return Express", Fare: 400, ArrivalTime: "19:30"}},
	}}

	p := newPlanner(geocoderFor("A", "B"), &stubHubs{}, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
	})

	prefs := transport.Preferences{
		FromLocation: "A",
		ToLocation:   "B",
		StartDate:    "2026-09-15",
		ReturnDate:   "2026-09-20",
		Budget:       1000,
	}
	plan, err := p.PlanTrip(context.Background(), prefs)
	require.NoError(t, err)

	assert.Equal(t, "round-trip", plan.TripType)
	assert.Equal(t, "Onward Express", plan.Onward.SelectedTransport.Option.Name)
	require.NotNil(t, plan.Return)
	assert.True(t, plan.Return.Found)
	assert.Contains(t, plan.TripSummary, "Start from A on 2026-09-15 at 09:00")
	assert.Contains(t, plan.TripSummary, "Return on 2026-09-20 (evening).")
}

func TestPlanTripOneWay(t *testing.T) {
	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"AAA->BBB": {{Name: "Onward Express", Fare: 400}},
	}}

	p := newPlanner(geocoderFor("A", "B"), &stubHubs{}, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
	})

	plan, err := p.PlanTrip(context.Background(), transport.Preferences{
		FromLocation: "A", ToLocation: "B", Budget: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "one-way", plan.TripType)
	assert.Nil(t, plan.Return)
}

func TestPlanWithTransportWithoutPlaces(t *testing.T) {
	p := newPlanner(stubGeocoder{}, &stubHubs{}, map[transport.Mode]planner.ModeService{})

	choice := transport.NewCandidate(transport.ModeBus, transport.RawOption{Name: "Picked Bus"})
	plan, err := p.PlanWithTransport(context.Background(), choice, transport.Preferences{ToLocation: "B"})
	require.NoError(t, err)
	assert.Equal(t, "Picked Bus", plan.SelectedTransport.Option.Name)
	assert.Nil(t, plan.HubPlan)
	assert.Nil(t, plan.DestinationPlan)
}

func TestExplicitCoordinatesSkipGeocoding(t *testing.T) {
	// A geocoder that always errors proves the fixed coordinates win.
	geo := stubGeocoder{err: errors.New("should not be called")}

	trainStops := stubStops{refs: map[string]*transport.StopReference{
		"A": {Code: "AAA"}, "B": {Code: "BBB"},
	}}
	trainSchedules := stubSchedules{options: map[string][]transport.RawOption{
		"AAA->BBB": {{Name: "Coord Express", Fare: 300}},
	}}

	p := newPlanner(geo, &stubHubs{}, map[transport.Mode]planner.ModeService{
		transport.ModeTrain: {Stops: trainStops, Schedules: trainSchedules},
	})

	prefs := transport.Preferences{
		Budget:      1000,
		StartCoords: &bangalore,
		DestCoords:  &hampi,
	}
	res, err := p.FindBestTransport(context.Background(), "A", "B", prefs)
	require.NoError(t, err)
	assert.Equal(t, "Coord Express", res.Best.Option.Name)
	assert.Equal(t, bangalore, *res.UsedGeocode.StartGeo)
}
