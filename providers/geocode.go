package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

// GoogleGeocoder resolves place names through the Google Geocoding API.
type GoogleGeocoder struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewGoogleGeocoder creates a geocoder client. client may be nil, in which
// case http.DefaultClient is used.
func NewGoogleGeocoder(baseURL, apiKey string, client *http.Client) *GoogleGeocoder {
	if client == nil {
		client = http.DefaultClient
	}
	return &GoogleGeocoder{baseURL: baseURL, apiKey: apiKey, httpClient: client}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
		PlaceID          string `json:"place_id"`
	} `json:"results"`
}

// Resolve geocodes a place name. Returns (nil, nil) when the API has no
// result for the name.
func (g *GoogleGeocoder) Resolve(ctx context.Context, name string) (*GeoResult, error) {
	if name == "" {
		return nil, nil
	}
	u := fmt.Sprintf("%s/geocode/json?address=%s&key=%s",
		g.baseURL, url.QueryEscape(name), url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode %q: HTTP %d", name, resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}
	if len(body.Results) == 0 {
		return nil, nil
	}

	first := body.Results[0]
	return &GeoResult{
		Location:         transport.Location{Lat: first.Geometry.Location.Lat, Lon: first.Geometry.Location.Lng},
		FormattedAddress: first.FormattedAddress,
		PlaceID:          first.PlaceID,
	}, nil
}
