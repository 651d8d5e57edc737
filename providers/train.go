package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/TSRCHARAN/TripPlanner/transport"
	"github.com/TSRCHARAN/TripPlanner/utils"
)

// TrainClient resolves stations and lists trains through the ConfirmTKT
// API.
type TrainClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTrainClient creates a train schedule client. client may be nil, in
// which case http.DefaultClient is used.
func NewTrainClient(baseURL string, client *http.Client) *TrainClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &TrainClient{baseURL: baseURL, httpClient: client}
}

type stationSuggestResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Data struct {
		StationList []struct {
			StationCode string `json:"stationCode"`
			StationName string `json:"stationName"`
			Latitude    string `json:"latitude"`
			Longitude   string `json:"longitude"`
		} `json:"stationList"`
	} `json:"data"`
}

// ResolveStop finds the station code for a place name via auto-suggestion.
// Returns (nil, nil) when no station matches or the API reports a lookup
// error for the search string.
func (t *TrainClient) ResolveStop(ctx context.Context, name string) (*transport.StopReference, error) {
	if name == "" {
		return nil, nil
	}
	u := fmt.Sprintf("%s/api/v2/trains/stations/auto-suggestion?searchString=%s&sourceStnCode=&popularStnListLimit=15&preferredStnListLimit=6&channel=ABHIBUS&language=EN",
		t.baseURL, url.QueryEscape(name))

	var body stationSuggestResponse
	if err := t.getJSON(ctx, u, &body); err != nil {
		return nil, fmt.Errorf("station lookup %q: %w", name, err)
	}
	if body.Error != nil {
		// API-level lookup failure; treated the same as no match.
		return nil, nil
	}
	if len(body.Data.StationList) == 0 {
		return nil, nil
	}

	stn := body.Data.StationList[0]
	lat, _ := strconv.ParseFloat(stn.Latitude, 64)
	lon, _ := strconv.ParseFloat(stn.Longitude, 64)
	return &transport.StopReference{
		Code: stn.StationCode,
		Name: stn.StationName,
		Lat:  lat,
		Lon:  lon,
	}, nil
}

type trainSearchResponse struct {
	Data struct {
		TrainList []struct {
			TrainNumber       string `json:"trainNumber"`
			TrainName         string `json:"trainName"`
			FromStnCode       string `json:"fromStnCode"`
			ToStnCode         string `json:"toStnCode"`
			DepartureTime     string `json:"departureTime"`
			ArrivalTime       string `json:"arrivalTime"`
			Duration          string `json:"duration"`
			AvlClasses        []string `json:"avlClasses"`
			AvailabilityCache map[string]struct {
				Fare         float64 `json:"fare"`
				Availability string  `json:"availability"`
			} `json:"availabilityCache"`
		} `json:"trainList"`
	} `json:"data"`
}

// Departures lists trains between two station codes on a journey date.
func (t *TrainClient) Departures(ctx context.Context, fromCode, toCode, date string) ([]transport.RawOption, error) {
	u := fmt.Sprintf("%s/api/v1/trains/search?sourceStationCode=%s&destinationStationCode=%s&addAvailabilityCache=true&excludeMultiTicketAlternates=false&excludeBoostAlternates=false&sortBy=DEFAULT&dateOfJourney=%s&enableNearby=true&enableTG=true&tGPlan=CTG-15&showTGPrediction=false&tgColor=DEFAULT&showPredictionGlobal=true&showNewAlternates=false",
		t.baseURL, url.QueryEscape(fromCode), url.QueryEscape(toCode), url.QueryEscape(utils.ToDDMMYYYY(date)))

	var body trainSearchResponse
	if err := t.getJSON(ctx, u, &body); err != nil {
		return nil, fmt.Errorf("train search %s->%s: %w", fromCode, toCode, err)
	}

	options := make([]transport.RawOption, 0, len(body.Data.TrainList))
	for _, tr := range body.Data.TrainList {
		fare, availability := firstAvailability(tr.AvailabilityCache)
		options = append(options, transport.RawOption{
			Name:          tr.TrainName,
			Number:        tr.TrainNumber,
			Fare:          fare,
			Duration:      tr.Duration,
			DepartureTime: tr.DepartureTime,
			ArrivalTime:   tr.ArrivalTime,
			AvlClasses:    tr.AvlClasses,
			Availability:  availability,
			FromCode:      tr.FromStnCode,
			ToCode:        tr.ToStnCode,
		})
	}
	return options, nil
}

// firstAvailability picks the first cached class deterministically (sorted
// class code order).
func firstAvailability(cache map[string]struct {
	Fare         float64 `json:"fare"`
	Availability string  `json:"availability"`
}) (float64, string) {
	if len(cache) == 0 {
		return 0, ""
	}
	keys := make([]string, 0, len(cache))
	for k := range cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entry := cache[keys[0]]
	return entry.Fare, entry.Availability
}

func (t *TrainClient) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
