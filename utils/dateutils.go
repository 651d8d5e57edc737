package utils

import "strings"

// ToDDMMYYYY converts a journey date to the DD-MM-YYYY form the schedule
// providers expect. Accepts YYYY-MM-DD or an already-converted DD-MM-YYYY
// string; anything else is returned empty.
func ToDDMMYYYY(date string) string {
	if date == "" {
		return ""
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return ""
	}
	if len(parts[0]) == 4 {
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	if len(parts[2]) == 4 {
		return date
	}
	return ""
}
