package analysis

import "time"

// DailyStatus is the effective status of one calendar day.
type DailyStatus struct {
	Date   string    `json:"date"`
	Status Status    `json:"status"`
	Day    time.Time `json:"-"`
}

// NormalizeDailyStatuses collapses records to one status per UTC day, sorted
// ascending. Records without a date or with an unknown status are ignored.
func NormalizeDailyStatuses(records []CheckInRecord) []DailyStatus {
	type slot struct {
		status   Status
		priority int
	}

	sorted := sortedRecords(records)
	byDay := make(map[string]slot, len(sorted))
	var order []string
	// latest record first: on equal priority the most recent one stays
	for i := len(sorted) - 1; i >= 0; i-- {
		r := sorted[i]
		p := r.Status.Priority()
		if p == 0 {
			continue
		}
		key := DayKey(r.Date)
		cur, ok := byDay[key]
		if !ok {
			order = append(order, key)
		}
		if !ok || p > cur.priority {
			byDay[key] = slot{status: r.Status, priority: p}
		}
	}

	// keys were discovered newest first
	out := make([]DailyStatus, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		key := order[i]
		day, _ := ParseDayKey(key)
		out = append(out, DailyStatus{Date: key, Status: byDay[key].status, Day: day})
	}
	return out
}
