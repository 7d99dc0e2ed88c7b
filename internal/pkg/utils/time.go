package utils

import "time"

// StartOfDay truncates t to local midnight. Used for "completed today"
// style aggregations.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
