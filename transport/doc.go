// Package transport defines the core domain types shared by the discovery,
// ranking and fallback layers: travel modes, locations, stop references,
// raw schedule options, scored candidates, traveler preferences and the
// ranking result returned to callers.
package transport
