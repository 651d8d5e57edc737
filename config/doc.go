// Package config loads and validates the trip planner configuration:
// server settings, external provider endpoints, static data locations and
// the ranking tables consumed by the score engine.
package config
