package analysis

import "time"

// DayLayout is the day-key format. All grouping happens in UTC.
const DayLayout = "2006-01-02"

// DayKey normalizes t to its UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ParseDayKey returns UTC midnight of the given day-key.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(DayLayout, key)
}

// StartOfDay truncates t to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayDistance is the number of whole calendar days from a to b. Both sides are
// truncated to midnight first, so the hour of day never matters.
func DayDistance(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)) / (24 * time.Hour))
}
