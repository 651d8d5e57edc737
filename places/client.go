package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

// Search kinds understood by the keyword builder.
const (
	KindAttractions = "attractions"
	KindHotels      = "hotels"
	KindLodging     = "lodging"
	KindRestaurants = "restaurants"
	KindRestaurant  = "restaurant"
)

const (
	nearbyRadiusMeters = 3000
	maxResults         = 7
)

// Client queries the Google Places API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a places client. client may be nil, in which case
// http.DefaultClient is used.
func NewClient(baseURL, apiKey string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, httpClient: client}
}

// SearchDestination runs a text search for a kind of place in a city,
// folding the traveler's preferences into the query.
func (c *Client) SearchDestination(ctx context.Context, city, kind string, prefs transport.Preferences) ([]Place, error) {
	query := city + " " + buildKeyword(kind, prefs)
	u := fmt.Sprintf("%s/place/textsearch/json?query=%s&key=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))
	return c.search(ctx, u)
}

// SearchNearby runs a nearby search around a point, used for hub stopovers.
func (c *Client) SearchNearby(ctx context.Context, lat, lon float64, kind string, prefs transport.Preferences) ([]Place, error) {
	u := fmt.Sprintf("%s/place/nearbysearch/json?location=%g,%g&radius=%d&type=%s&keyword=%s&key=%s",
		c.baseURL, lat, lon, nearbyRadiusMeters,
		url.QueryEscape(kind), url.QueryEscape(buildKeyword(kind, prefs)), url.QueryEscape(c.apiKey))
	return c.search(ctx, u)
}

func (c *Client) search(ctx context.Context, u string) ([]Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("places search: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places search: HTTP %d", resp.StatusCode)
	}

	var body googlePlacesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("places search: %w", err)
	}
	results := body.Results
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return simplifyPlaces(results), nil
}

// buildKeyword injects the traveler's preferences into the search query.
func buildKeyword(kind string, prefs transport.Preferences) string {
	switch kind {
	case KindRestaurants, KindRestaurant:
		veg := ""
		if prefs.Food.Type == "veg" {
			veg = "veg"
		}
		cuisines := strings.Join(prefs.Food.PreferredCuisines, " ")
		return joinWords(veg, cuisines, "restaurants")
	case KindHotels, KindLodging:
		tier := "midrange"
		switch prefs.BudgetCategory {
		case "low":
			tier = "budget"
		case "high":
			tier = "luxury"
		}
		types := strings.Join(prefs.Accommodation.Types, " ")
		return joinWords(tier, types, "hotels")
	case KindAttractions:
		if len(prefs.Sightseeing.Interests) > 0 {
			return strings.Join(prefs.Sightseeing.Interests, " ")
		}
		return "tourist attractions"
	default:
		return kind
	}
}

// joinWords joins non-empty parts with single spaces.
func joinWords(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
