// Package providers wraps the external collaborators the discovery engine
// depends on: a geocoder, per-mode stop resolvers and per-mode schedule
// providers. Each concrete client normalizes a third-party API's response
// shape into the transport package's types.
//
// All clients follow the same failure policy: "not found" is a nil result
// with a nil error, transport faults are wrapped errors. The orchestrator
// treats both as zero options from that source.
package providers
