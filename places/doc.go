// Package places looks up preference-aware recommendations (attractions,
// lodging, food) around a destination or an intermediate hub, and renders
// the trip summary text. It wraps the Google Places API and is a thin
// collaborator of the trip planner rather than part of the ranking core.
package places
