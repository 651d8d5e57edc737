package transport

// Candidate is a raw schedule option annotated with routing metadata and a
// score. Candidates are built only through the constructors below so that
// provider fields are copied explicitly rather than merged structurally.
// A candidate is never mutated after scoring.
type Candidate struct {
	Mode   Mode      `json:"mode"`
	Option RawOption `json:"option"`
	ViaHub bool      `json:"viaHub,omitempty"`
	Hubs   *HubPair  `json:"hubs,omitempty"`
	Score  float64   `json:"score"`
}

// NewCandidate builds a direct-route candidate from a provider option.
func NewCandidate(mode Mode, opt RawOption) Candidate {
	return Candidate{Mode: mode, Option: opt}
}

// NewHubCandidate builds a via-hub candidate. hubs names the endpoints the
// fallback combination actually used.
func NewHubCandidate(mode Mode, opt RawOption, hubs HubPair) Candidate {
	h := hubs
	return Candidate{Mode: mode, Option: opt, ViaHub: true, Hubs: &h}
}
