package analysis

import (
	"sort"
	"time"
)

// Status is the outcome a user reported for a day.
type Status string

const (
	StatusClean   Status = "clean"
	StatusRelapse Status = "relapse"
	StatusSkipped Status = "skipped"
)

// Worse outcomes win when several records land on the same day.
var statusPriority = map[Status]int{
	StatusRelapse: 3,
	StatusSkipped: 2,
	StatusClean:   1,
}

// Priority returns 0 for statuses this package does not know about.
func (s Status) Priority() int {
	return statusPriority[s]
}

func (s Status) Valid() bool {
	return s.Priority() > 0
}

// CheckInRecord is a single check-in as persisted by the store.
// Date is the day the check-in applies to, CheckInTime is when it was submitted.
type CheckInRecord struct {
	UserID      string    `json:"userId"`
	Date        time.Time `json:"date"`
	Status      Status    `json:"status"`
	CheckInTime time.Time `json:"checkInTime"`
}

func (r CheckInRecord) submittedAt() time.Time {
	if r.CheckInTime.IsZero() {
		return r.Date
	}
	return r.CheckInTime
}

// sortedRecords returns a copy of records without undated entries, ordered
// oldest first. Ties on Date are broken by submission time, then by status
// priority and name, so any permutation of the same input sorts identically.
func sortedRecords(records []CheckInRecord) []CheckInRecord {
	out := make([]CheckInRecord, 0, len(records))
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if sa, sb := a.submittedAt(), b.submittedAt(); !sa.Equal(sb) {
			return sa.Before(sb)
		}
		if pa, pb := a.Status.Priority(), b.Status.Priority(); pa != pb {
			return pa < pb
		}
		return a.Status < b.Status
	})
	return out
}
