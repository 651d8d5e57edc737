package places_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TSRCHARAN/TripPlanner/places"
	"github.com/TSRCHARAN/TripPlanner/transport"
)

func hotels() []places.Place {
	return []places.Place{
		{Name: "Budget Inn", Rating: 3.8, PriceLevel: 1},
		{Name: "Grand Palace", Rating: 4.6, PriceLevel: 4},
		{Name: "Shabby Rooms", Rating: 2.1, PriceLevel: 1},
	}
}

func TestLightFilterAccommodation(t *testing.T) {
	prefs := transport.Preferences{
		BudgetCategory: "low",
		Accommodation:  transport.AccommodationPrefs{RatingMin: 3.5},
	}

	got := places.LightFilter(hotels(), prefs, places.CategoryAccommodation)
	assert.Empty(t, got.Reason)
	assert.Len(t, got.Results, 1)
	assert.Equal(t, "Budget Inn", got.Results[0].Name)
}

func TestLightFilterAccommodationFallback(t *testing.T) {
	prefs := transport.Preferences{
		BudgetCategory: "low",
		Accommodation:  transport.AccommodationPrefs{RatingMin: 4.9},
	}

	got := places.LightFilter(hotels(), prefs, places.CategoryAccommodation)
	assert.Equal(t, "No hotels matched your filters, showing top-rated stays instead.", got.Reason)
	// Relaxed pass keeps anything rated 3 or better.
	assert.Len(t, got.Results, 2)
}

func TestLightFilterFood(t *testing.T) {
	restaurants := []places.Place{
		{Name: "Sagar Veg Restaurant"},
		{Name: "Meat Street"},
		{Name: "Udupi Veg Kitchen"},
	}
	prefs := transport.Preferences{Food: transport.FoodPrefs{Type: "veg"}}

	got := places.LightFilter(restaurants, prefs, places.CategoryFood)
	assert.Empty(t, got.Reason)
	assert.Len(t, got.Results, 2)
}

func TestLightFilterFoodCuisineFallback(t *testing.T) {
	restaurants := []places.Place{
		{Name: "Pizza Corner"},
		{Name: "Burger Barn"},
	}
	prefs := transport.Preferences{
		Food: transport.FoodPrefs{PreferredCuisines: []string{"andhra"}},
	}

	got := places.LightFilter(restaurants, prefs, places.CategoryFood)
	assert.Equal(t, "No exact cuisine matches found, showing general restaurants nearby.", got.Reason)
	assert.Len(t, got.Results, 2)
}

func TestLightFilterSightseeing(t *testing.T) {
	attractions := []places.Place{
		{Name: "City Museum", Types: []string{"museum"}, UserRatingsTotal: 500},
		{Name: "Mega Mall", Types: []string{"shopping_mall"}, UserRatingsTotal: 9000},
		{Name: "History Museum", Types: []string{"museum"}, UserRatingsTotal: 2500},
	}
	prefs := transport.Preferences{
		Sightseeing: transport.SightseeingPrefs{
			Interests:   []string{"museum"},
			AvoidCrowds: true,
		},
	}

	got := places.LightFilter(attractions, prefs, places.CategorySightseeing)
	assert.Empty(t, got.Reason)
	assert.Len(t, got.Results, 1)
	assert.Equal(t, "City Museum", got.Results[0].Name)
}

func TestLightFilterSightseeingFallback(t *testing.T) {
	attractions := []places.Place{
		{Name: "Mega Mall", Types: []string{"shopping_mall"}, UserRatingsTotal: 9000},
	}
	prefs := transport.Preferences{
		Sightseeing: transport.SightseeingPrefs{Interests: []string{"museum"}},
	}

	got := places.LightFilter(attractions, prefs, places.CategorySightseeing)
	assert.Equal(t, "No attractions matched your interests, showing popular nearby spots.", got.Reason)
	assert.Len(t, got.Results, 1)
}

func TestLightFilterEmptyInput(t *testing.T) {
	got := places.LightFilter(nil, transport.Preferences{}, places.CategoryFood)
	assert.Empty(t, got.Results)
	assert.Equal(t, "No data found from places provider.", got.Reason)
}

func TestLightFilterUnknownCategoryPassesThrough(t *testing.T) {
	items := []places.Place{{Name: "Anything"}}
	got := places.LightFilter(items, transport.Preferences{}, "unknown")
	assert.Equal(t, items, got.Results)
	assert.Empty(t, got.Reason)
}
