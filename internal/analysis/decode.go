package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedRecord marks a record that was dropped while decoding.
var ErrMalformedRecord = errors.New("malformed check-in record")

type rawRecord struct {
	UserID      string `json:"userId"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	CheckInTime string `json:"checkInTime"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DayLayout,
}

// ParseTimestamp accepts RFC 3339 timestamps and bare day-keys. Values without
// a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// DecodeRecords reads a JSON array of check-ins. Records with a missing or
// unparseable date, or any field of the wrong JSON type, are dropped and
// reported in dropped; only a document that is not a JSON array fails as a
// whole. A missing status means clean and a missing or bad checkInTime falls
// back to the date.
func DecodeRecords(data []byte) (records []CheckInRecord, dropped []error, err error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, nil, fmt.Errorf("decode check-ins: %w", err)
	}

	records = make([]CheckInRecord, 0, len(elems))
	for i, elem := range elems {
		var r rawRecord
		if err := json.Unmarshal(elem, &r); err != nil {
			dropped = append(dropped, fmt.Errorf("record %d: %w: %v", i, ErrMalformedRecord, err))
			continue
		}
		if strings.TrimSpace(r.Date) == "" {
			dropped = append(dropped, fmt.Errorf("record %d: %w: missing date", i, ErrMalformedRecord))
			continue
		}
		date, perr := ParseTimestamp(r.Date)
		if perr != nil {
			dropped = append(dropped, fmt.Errorf("record %d: %w: %v", i, ErrMalformedRecord, perr))
			continue
		}
		rec := CheckInRecord{
			UserID: r.UserID,
			Date:   date,
			Status: Status(strings.TrimSpace(r.Status)),
		}
		if rec.Status == "" {
			rec.Status = StatusClean
		}
		if r.CheckInTime != "" {
			if t, terr := ParseTimestamp(r.CheckInTime); terr == nil {
				rec.CheckInTime = t
			}
		}
		records = append(records, rec)
	}
	return records, dropped, nil
}
