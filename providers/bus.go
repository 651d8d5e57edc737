package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TSRCHARAN/TripPlanner/transport"
	"github.com/TSRCHARAN/TripPlanner/utils"
)

// BusClient resolves bus stops and lists services through the Abhibus API.
type BusClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBusClient creates a bus schedule client. client may be nil, in which
// case http.DefaultClient is used.
func NewBusClient(baseURL string, client *http.Client) *BusClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &BusClient{baseURL: baseURL, httpClient: client}
}

type busLocation struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// ResolveStop finds the provider location id for a city or depot name.
// Returns (nil, nil) when the autocompleter has no match.
func (b *BusClient) ResolveStop(ctx context.Context, name string) (*transport.StopReference, error) {
	if name == "" {
		return nil, nil
	}
	u := fmt.Sprintf("%s/wap/abus-autocompleter/api/v1/results?s=%s", b.baseURL, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("bus location lookup %q: %w", name, err)
	}
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bus location lookup %q: %w", name, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bus location lookup %q: HTTP %d", name, resp.StatusCode)
	}

	var locations []busLocation
	if err := json.NewDecoder(resp.Body).Decode(&locations); err != nil {
		return nil, fmt.Errorf("bus location lookup %q: %w", name, err)
	}
	if len(locations) == 0 {
		return nil, nil
	}

	first := locations[0]
	stopName := first.Name
	if stopName == "" {
		stopName = name
	}
	return &transport.StopReference{Code: first.ID.String(), Name: stopName}, nil
}

type busListRequest struct {
	SourceID      string `json:"sourceid"`
	DestinationID string `json:"destinationid"`
	JDate         string `json:"jdate"`
	PRD           string `json:"prd"`
	Filters       int    `json:"filters"`
}

type busListResponse struct {
	ServiceDetailsList []struct {
		TravelerAgentName   string      `json:"travelerAgentName"`
		BusTypeName         string      `json:"busTypeName"`
		Fare                json.Number `json:"fare"`
		ServiceNumber       string      `json:"serviceNumber"`
		StartTimeDateFormat string      `json:"startTimeDateFormat"`
		ArriveTime          string      `json:"arriveTime"`
		AvailableSeats      int         `json:"availableSeats"`
		TravelTime          string      `json:"travelTime"`
	} `json:"serviceDetailsList"`
}

// Departures lists bus services between two resolved location ids on a
// journey date.
func (b *BusClient) Departures(ctx context.Context, fromID, toID, date string) ([]transport.RawOption, error) {
	payload, err := json.Marshal(busListRequest{
		SourceID:      fromID,
		DestinationID: toID,
		JDate:         utils.ToDDMMYYYY(date),
		PRD:           "mobile",
		Filters:       1,
	})
	if err != nil {
		return nil, fmt.Errorf("bus search %s->%s: %w", fromID, toID, err)
	}

	u := b.baseURL + "/wap/GetBusList"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("bus search %s->%s: %w", fromID, toID, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bus search %s->%s: %w", fromID, toID, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bus search %s->%s: HTTP %d", fromID, toID, resp.StatusCode)
	}

	var body busListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("bus search %s->%s: %w", fromID, toID, err)
	}

	options := make([]transport.RawOption, 0, len(body.ServiceDetailsList))
	for _, svc := range body.ServiceDetailsList {
		fare, _ := strconv.ParseFloat(svc.Fare.String(), 64)
		availability := "FULL"
		if svc.AvailableSeats > 0 {
			availability = "AVAILABLE"
		}
		options = append(options, transport.RawOption{
			Name:          svc.TravelerAgentName + svc.BusTypeName,
			Number:        svc.ServiceNumber,
			Fare:          fare,
			Duration:      svc.TravelTime,
			DepartureTime: svc.StartTimeDateFormat,
			ArrivalTime:   svc.ArriveTime,
			SeatType:      svc.BusTypeName,
			Availability:  availability,
		})
	}
	return options, nil
}
