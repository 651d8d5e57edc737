// Package planner coordinates transport discovery: it resolves coordinates
// and stop identifiers for both endpoints, fetches direct schedule options
// per allowed mode, falls back to hub-mediated routes when no direct option
// exists, scores every candidate and selects the best with a justification.
//
// Every findBestTransport call is stateless apart from the read-only
// configuration tables. Per-source failures (a geocoder miss, a schedule
// lookup error) degrade the candidate set; only ResolutionError and
// NoOptionsError cross the package boundary.
package planner
