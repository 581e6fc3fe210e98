package stats

import "time"

// Time-property facets attached to exported timeline rows. Each one
// buckets an instant (a period's begin) into a small label set suitable
// for grouped duration totals.

// DayOfWeek returns the English weekday name.
func DayOfWeek(t time.Time) string {
	return t.Weekday().String()
}

// DayType buckets an instant into "weekday" or "weekend".
func DayType(t time.Time) string {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return "weekend"
	}
	return "weekday"
}

// Sunday buckets an instant into "sunday" or "weekday".
func Sunday(t time.Time) string {
	if t.Weekday() == time.Sunday {
		return "sunday"
	}
	return "weekday"
}

// TimeOfDay buckets an instant into "AM" or "PM".
func TimeOfDay(t time.Time) string {
	if t.Hour() < 12 {
		return "AM"
	}
	return "PM"
}

// Night buckets an instant into "night" (before 07:00) or "day".
func Night(t time.Time) string {
	if t.Hour() <= 6 {
		return "night"
	}
	return "day"
}
