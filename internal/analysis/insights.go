package analysis

import "time"

const (
	NotEnoughData = "Not enough data yet"
	NoPattern     = "No pattern yet"
)

// Insights are behavioral signals read from the raw records.
type Insights struct {
	StrongestTime string `json:"strongestTime"`
	TriggerDay    string `json:"triggerDay"`
}

type timeWindow struct {
	label    string
	from, to int // hours, [from, to); wraps past midnight when from > to
}

var timeWindows = [...]timeWindow{
	{"Morning (5am - 12pm)", 5, 12},
	{"Afternoon (12pm - 5pm)", 12, 17},
	{"Evening (5pm - 9pm)", 17, 21},
	{"Night (9pm - 5am)", 21, 5},
}

func windowOf(hour int) int {
	for i, w := range timeWindows {
		if w.from < w.to {
			if hour >= w.from && hour < w.to {
				return i
			}
		} else if hour >= w.from || hour < w.to {
			return i
		}
	}
	return 0
}

// GenerateInsights reports the time of day with the most clean check-ins and
// the weekday with the most relapses. Check-in hours are read in loc (UTC when
// nil); relapse weekdays follow the UTC day-key of Date.
func GenerateInsights(records []CheckInRecord, loc *time.Location) Insights {
	if loc == nil {
		loc = time.UTC
	}

	var windows [len(timeWindows)]int
	var weekdays [7]int
	var seen []time.Weekday

	for _, r := range sortedRecords(records) {
		switch r.Status {
		case StatusClean:
			windows[windowOf(r.submittedAt().In(loc).Hour())]++
		case StatusRelapse:
			wd := r.Date.UTC().Weekday()
			if weekdays[wd] == 0 {
				seen = append(seen, wd)
			}
			weekdays[wd]++
		}
	}

	in := Insights{StrongestTime: NotEnoughData, TriggerDay: NoPattern}

	best := 0
	for i, n := range windows {
		if n > windows[best] {
			best = i
		}
	}
	if windows[best] > 0 {
		in.StrongestTime = timeWindows[best].label
	}

	// ties go to the weekday whose first relapse came earliest
	top := 0
	for _, wd := range seen {
		if weekdays[wd] > top {
			top = weekdays[wd]
			in.TriggerDay = wd.String()
		}
	}
	return in
}
