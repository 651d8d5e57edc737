package transport

import "fmt"

// ResolutionError reports that coordinates for an endpoint could not be
// determined. Fatal to the current discovery call.
type ResolutionError struct {
	Place string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve location coordinates for %q", e.Place)
}

// NoOptionsError reports that no transport candidates were found after both
// direct and hub-fallback search. Fatal to the current discovery call; the
// return leg of a round trip downgrades it to a non-fatal finding.
type NoOptionsError struct {
	From string
	To   string
}

func (e *NoOptionsError) Error() string {
	return fmt.Sprintf("no transport options found from %q to %q (direct or via hub)", e.From, e.To)
}
