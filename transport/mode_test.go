package transport_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TSRCHARAN/TripPlanner/transport"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected transport.Mode
		ok       bool
	}{
		{input: "train", expected: transport.ModeTrain, ok: true},
		{input: "BUS", expected: transport.ModeBus, ok: true},
		{input: " Flight ", expected: transport.ModeFlight, ok: true},
		{input: "boat", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := transport.ParseMode(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestPreferencesAllows(t *testing.T) {
	prefs := transport.Preferences{AvoidModes: []transport.Mode{transport.ModeBus}}
	assert.True(t, prefs.Allows(transport.ModeTrain))
	assert.False(t, prefs.Allows(transport.ModeBus))
	assert.True(t, transport.Preferences{}.Allows(transport.ModeFlight))
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = &transport.ResolutionError{Place: "Nowhere"}
	assert.Contains(t, err.Error(), `"Nowhere"`)

	var resErr *transport.ResolutionError
	assert.True(t, errors.As(err, &resErr))

	err = &transport.NoOptionsError{From: "A", To: "B"}
	assert.Contains(t, err.Error(), `from "A" to "B"`)

	var noOpt *transport.NoOptionsError
	assert.True(t, errors.As(err, &noOpt))
}

func TestNewHubCandidateCopiesHubPair(t *testing.T) {
	pair := transport.HubPair{From: &transport.StopReference{Code: "SBC"}}
	c := transport.NewHubCandidate(transport.ModeTrain, transport.RawOption{}, pair)

	assert.True(t, c.ViaHub)
	// The candidate holds its own copy of the pair.
	pair.From = nil
	assert.NotNil(t, c.Hubs.From)
}
