// Package utils provides internal utility functions for the trip planner.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Clock and journey-date conversion helpers
//   - Great-circle distance calculation
//   - Budget-category mapping
package utils
