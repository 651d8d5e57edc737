// Package hubs provides the static geographic index of railway stations and
// bus depots used to find intermediate hubs when no direct route exists.
// The index is loaded once at startup and is read-only afterwards.
package hubs
