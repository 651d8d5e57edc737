package transport

import "strings"

// Mode identifies a supported travel mode.
type Mode string

const (
	ModeTrain  Mode = "train"
	ModeBus    Mode = "bus"
	ModeFlight Mode = "flight"
)

// AllModes lists the supported modes in discovery order. Candidates are
// merged in this order, which fixes tie-break precedence: trains found
// before buses, buses before flights.
var AllModes = []Mode{ModeTrain, ModeBus, ModeFlight}

// ParseMode normalizes a mode string. The second return value is false for
// unsupported modes.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeTrain:
		return ModeTrain, true
	case ModeBus:
		return ModeBus, true
	case ModeFlight:
		return ModeFlight, true
	}
	return "", false
}

func (m Mode) String() string { return string(m) }
