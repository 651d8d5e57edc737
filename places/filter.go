package places

import (
	"strings"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

// Filter categories.
const (
	CategoryAccommodation = "accommodation"
	CategoryFood          = "food"
	CategorySightseeing   = "sightseeing"
)

// Filtered is a light-filter outcome. Reason is set when the strict filter
// matched nothing and a relaxed fallback was served instead.
type Filtered struct {
	Results []Place `json:"results"`
	Reason  string  `json:"reason,omitempty"`
}

// LightFilter applies preference filters to a result set, falling back to a
// relaxed selection (with an explanatory reason) rather than returning
// nothing.
func LightFilter(items []Place, prefs transport.Preferences, category string) Filtered {
	if len(items) == 0 {
		return Filtered{Results: []Place{}, Reason: "No data found from places provider."}
	}

	switch category {
	case CategoryAccommodation:
		return filterAccommodation(items, prefs)
	case CategoryFood:
		return filterFood(items, prefs)
	case CategorySightseeing:
		return filterSightseeing(items, prefs)
	default:
		return Filtered{Results: items}
	}
}

func filterAccommodation(items []Place, prefs transport.Preferences) Filtered {
	var filtered []Place
	for _, h := range items {
		if prefs.Accommodation.RatingMin > 0 && h.Rating < prefs.Accommodation.RatingMin {
			continue
		}
		if !priceLevelFits(h.PriceLevel, prefs.BudgetCategory) {
			continue
		}
		filtered = append(filtered, h)
	}
	if len(filtered) > 0 {
		return Filtered{Results: filtered}
	}
	for _, h := range items {
		if h.Rating >= 3 {
			filtered = append(filtered, h)
		}
	}
	return Filtered{
		Results: filtered,
		Reason:  "No hotels matched your filters, showing top-rated stays instead.",
	}
}

func priceLevelFits(priceLevel int, budgetCategory string) bool {
	switch budgetCategory {
	case "low":
		return priceLevel <= 2
	case "mid":
		return priceLevel <= 3
	case "high":
		return priceLevel >= 3
	default:
		return true
	}
}

func filterFood(items []Place, prefs transport.Preferences) Filtered {
	var filtered []Place
	for _, r := range items {
		name := strings.ToLower(r.Name)
		if prefs.Food.Type == "veg" && !strings.Contains(name, "veg") {
			continue
		}
		if len(prefs.Food.PreferredCuisines) > 0 && !matchesAnyCuisine(name, prefs.Food.PreferredCuisines) {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) > 0 {
		return Filtered{Results: filtered}
	}
	return Filtered{
		Results: firstN(items, 5),
		Reason:  "No exact cuisine matches found, showing general restaurants nearby.",
	}
}

func matchesAnyCuisine(name string, cuisines []string) bool {
	for _, c := range cuisines {
		if strings.Contains(name, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

func filterSightseeing(items []Place, prefs transport.Preferences) Filtered {
	filtered := items
	if len(prefs.Sightseeing.Interests) > 0 {
		filtered = nil
		for _, a := range items {
			haystack := strings.ToLower(a.Name + " " + strings.Join(a.Types, " "))
			for _, interest := range prefs.Sightseeing.Interests {
				if strings.Contains(haystack, strings.ToLower(interest)) {
					filtered = append(filtered, a)
					break
				}
			}
		}
	}
	if prefs.Sightseeing.AvoidCrowds {
		var quiet []Place
		for _, a := range filtered {
			if a.UserRatingsTotal < 1000 {
				quiet = append(quiet, a)
			}
		}
		filtered = quiet
	}
	if len(filtered) > 0 {
		return Filtered{Results: filtered}
	}
	return Filtered{
		Results: firstN(items, 5),
		Reason:  "No attractions matched your interests, showing popular nearby spots.",
	}
}

func firstN(items []Place, n int) []Place {
	if len(items) > n {
		items = items[:n]
	}
	return items
}
