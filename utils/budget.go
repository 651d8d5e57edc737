package utils

import "strings"

// BudgetRange maps a coarse budget category onto the price bands used when
// searching for lodging and transport.
type BudgetRange struct {
	PriceLevel [2]int
	RoomPrice  [2]int
	FareLimit  float64
}

// MapBudgetToRange translates a budget category (low/mid/high) to concrete
// price bands. Unknown categories fall back to mid.
func MapBudgetToRange(category string) BudgetRange {
	switch strings.ToLower(category) {
	case "low":
		return BudgetRange{PriceLevel: [2]int{0, 1}, RoomPrice: [2]int{0, 1500}, FareLimit: 500}
	case "high":
		return BudgetRange{PriceLevel: [2]int{3, 4}, RoomPrice: [2]int{4000, 10000}, FareLimit: 5000}
	default:
		return BudgetRange{PriceLevel: [2]int{1, 3}, RoomPrice: [2]int{1500, 4000}, FareLimit: 1500}
	}
}
