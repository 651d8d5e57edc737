package utils

import (
	"strconv"
	"strings"
)

// ToMinutes converts an "HH:MM" clock string to minutes since midnight.
// Missing or malformed values yield 0.
func ToMinutes(clock string) int {
	if clock == "" || !strings.Contains(clock, ":") {
		return 0
	}
	parts := strings.SplitN(clock, ":", 2)
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		m = 0
	}
	return h*60 + m
}

// IsLateNight reports whether an "HH:MM" arrival falls between 6 PM and 6 AM,
// the window where an overnight stay at an intermediate hub is needed.
func IsLateNight(clock string) bool {
	total := ToMinutes(clock)
	return total >= 18*60 || total <= 6*60
}
