package ranking

import (
	"math"

	"github.com/TSRCHARAN/TripPlanner/config"
	"github.com/TSRCHARAN/TripPlanner/transport"
	"github.com/TSRCHARAN/TripPlanner/utils"
)

// slotBuffer is how far outside a preferred time slot a departure may fall
// and still count as a near miss, in minutes.
const slotBuffer = 120

// Scorer rates transport candidates. It holds an immutable copy of the
// ranking tables, so alternate weight sets can be tested by constructing a
// second scorer.
type Scorer struct {
	cfg config.RankingConfig
}

// NewScorer creates a scorer from a ranking configuration.
func NewScorer(cfg config.RankingConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// ComputeScore rates a candidate on a roughly 0..1 scale. The score is a
// weighted sum of budget fit, timing fit, seat comfort and route
// convenience, adjusted by the mode multiplier and rounded to 3 decimals.
// Pure and deterministic: same inputs always produce the same score.
func (s *Scorer) ComputeScore(c transport.Candidate, prefs transport.Preferences) float64 {
	score := 0.0

	// Budget fit: a free ride scores 1, anything at or over budget scores 0.
	maxBudget := prefs.Budget
	if maxBudget < 1 {
		maxBudget = 1
	}
	budgetScore := 1 - math.Min(c.Option.Fare/maxBudget, 1)
	score += budgetScore * s.cfg.Weights.Budget

	score += s.timingScore(c, prefs) * s.cfg.Weights.Time

	score += s.comfortScore(c.Option) * s.cfg.Weights.Comfort

	// Direct routes beat hub-mediated ones.
	convenienceScore := 1.0
	if c.ViaHub {
		convenienceScore = 0.6
	}
	score += convenienceScore * s.cfg.Weights.Convenience

	if mult, ok := s.cfg.ModeMultipliers[c.Mode.String()]; ok {
		score *= (mult.Comfort + mult.CostEfficiency) / 2
	}

	return math.Round(score*1000) / 1000
}

// timingScore rates how well the candidate's clock aligns with the
// preferred slot. The return leg is judged on arrival time, the onward leg
// on departure time. A missing or unparseable clock is neutral.
func (s *Scorer) timingScore(c transport.Candidate, prefs transport.Preferences) float64 {
	clock := c.Option.DepartureTime
	slot := prefs.PreferredStartTime
	if prefs.IsReturn {
		clock = c.Option.ArrivalTime
		slot = prefs.PreferredReturnTime
	}
	minutes := utils.ToMinutes(clock)
	if minutes == 0 {
		return 0.5
	}
	return s.matchPreferredSlot(minutes, slot)
}

func (s *Scorer) matchPreferredSlot(minutes int, slot string) float64 {
	window, ok := s.cfg.TimeSlots[slot]
	if !ok {
		return 0.5
	}
	start, end := window[0], window[1]
	if minutes >= start && minutes <= end {
		return 1.0
	}
	if minutes >= start-slotBuffer && minutes <= end+slotBuffer {
		return 0.7
	}
	return 0.4
}

func (s *Scorer) comfortScore(opt transport.RawOption) float64 {
	seat := opt.SeatType
	if len(opt.AvlClasses) > 0 {
		seat = opt.AvlClasses[0]
	}
	if level, ok := s.cfg.SeatComfort[seat]; ok {
		return level
	}
	return 0.5
}
