package config

// DefaultRanking returns the built-in weighting tables. A config file may
// override any table wholesale; missing tables keep these values.
func DefaultRanking() RankingConfig {
	return RankingConfig{
		Weights: Weights{
			Budget:      0.3,
			Time:        0.25,
			Comfort:     0.25,
			Convenience: 0.2,
		},
		ModeMultipliers: map[string]ModeMultiplier{
			"train":  {Comfort: 1.1, CostEfficiency: 0.9},
			"bus":    {Comfort: 0.8, CostEfficiency: 1.2},
			"flight": {Comfort: 1.3, CostEfficiency: 0.7},
		},
		// Slot boundaries in minutes since midnight.
		TimeSlots: map[string][2]int{
			"morning":   {360, 720},
			"afternoon": {720, 1080},
			"evening":   {1080, 1440},
			"night":     {0, 360},
		},
		SeatComfort: map[string]float64{
			"1A":    1.0,
			"2A":    0.9,
			"3A":    0.8,
			"EC":    0.85,
			"CC":    0.75,
			"SL":    0.6,
			"2S":    0.5,
			"NONAC": 0.5,
			"AC":    0.8,
		},
	}
}
