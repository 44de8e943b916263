package utils

import "time"

// ResolveLocation loads the named timezone, falling back to UTC for empty
// or unknown names so report windows always have a deterministic anchor.
func ResolveLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
