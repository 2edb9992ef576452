package analysis

import "time"

// DefaultTrendDays is the trailing window charted by default (13 weekly buckets).
const DefaultTrendDays = 90

// TrendPoint is one weekly bucket; Date is the bucket's last day.
type TrendPoint struct {
	Date      string `json:"date"`
	CleanDays int    `json:"cleanDays"`
}

// CalculateTrend counts clean days per 7-day bucket over the trailing window
// ending today. Days without a record never count as clean.
func CalculateTrend(records []CheckInRecord, now time.Time, days int) []TrendPoint {
	return trendFromDaily(NormalizeDailyStatuses(records), now, days)
}

func trendFromDaily(daily []DailyStatus, now time.Time, window int) []TrendPoint {
	if window <= 0 {
		window = DefaultTrendDays
	}

	clean := make(map[string]bool, len(daily))
	for _, d := range daily {
		if d.Status == StatusClean {
			clean[d.Date] = true
		}
	}

	today := StartOfDay(now)
	start := today.AddDate(0, 0, -(window - 1))
	buckets := (window + 6) / 7

	points := make([]TrendPoint, 0, buckets)
	for b := 0; b < buckets; b++ {
		from := start.AddDate(0, 0, 7*b)
		to := from.AddDate(0, 0, 6)
		if to.After(today) {
			to = today
		}
		count := 0
		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			if clean[DayKey(day)] {
				count++
			}
		}
		points = append(points, TrendPoint{Date: DayKey(to), CleanDays: count})
	}
	return points
}
