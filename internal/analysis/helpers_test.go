package analysis

import (
	"time"
)

func mustDay(key string) time.Time {
	t, err := ParseDayKey(key)
	if err != nil {
		panic(err)
	}
	return t
}

func rec(date string, status Status) CheckInRecord {
	return CheckInRecord{UserID: "u1", Date: mustDay(date), Status: status}
}

// cleanRun returns n consecutive clean records ending on last.
func cleanRun(last time.Time, n int) []CheckInRecord {
	out := make([]CheckInRecord, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, CheckInRecord{UserID: "u1", Date: StartOfDay(last).AddDate(0, 0, -i), Status: StatusClean})
	}
	return out
}
