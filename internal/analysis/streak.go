package analysis

import "time"

// Streaks holds clean-day run lengths.
type Streaks struct {
	Current int `json:"currentStreak"`
	Longest int `json:"longestStreak"`
}

// CalculateStreaks derives the current and longest clean streak as of now.
func CalculateStreaks(records []CheckInRecord, now time.Time) Streaks {
	return streaksFromDaily(NormalizeDailyStatuses(records), now)
}

func streaksFromDaily(days []DailyStatus, now time.Time) Streaks {
	var s Streaks
	if len(days) == 0 {
		return s
	}

	rolling := 0
	for i, d := range days {
		if d.Status != StatusClean {
			rolling = 0
			continue
		}
		if i > 0 && DayDistance(days[i-1].Day, d.Day) == 1 {
			rolling++
		} else {
			rolling = 1
		}
		if rolling > s.Longest {
			s.Longest = rolling
		}
	}

	// a streak is only current while check-ins are at most one day stale
	last := len(days) - 1
	if DayDistance(days[last].Day, now) > 1 {
		return s
	}
	for i := last; i >= 0; i-- {
		if days[i].Status != StatusClean {
			break
		}
		if i < last && DayDistance(days[i].Day, days[i+1].Day) != 1 {
			break
		}
		s.Current++
	}
	return s
}
