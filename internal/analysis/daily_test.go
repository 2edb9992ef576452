package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDailyStatusesEmpty(t *testing.T) {
	assert.Empty(t, NormalizeDailyStatuses(nil))
	assert.Empty(t, NormalizeDailyStatuses([]CheckInRecord{}))
}

func TestNormalizeDailyStatusesPriority(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"RelapseBeatsClean", []Status{StatusClean, StatusRelapse}, StatusRelapse},
		{"RelapseBeatsCleanReversed", []Status{StatusRelapse, StatusClean}, StatusRelapse},
		{"SkippedBeatsClean", []Status{StatusClean, StatusSkipped}, StatusSkipped},
		{"RelapseBeatsSkipped", []Status{StatusSkipped, StatusRelapse, StatusClean}, StatusRelapse},
		{"DuplicateClean", []Status{StatusClean, StatusClean}, StatusClean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []CheckInRecord
			for i, s := range tt.statuses {
				records = append(records, CheckInRecord{
					Date:   mustDay("2024-04-01").Add(time.Duration(i) * time.Hour),
					Status: s,
				})
			}
			got := NormalizeDailyStatuses(records)
			if assert.Len(t, got, 1) {
				assert.Equal(t, "2024-04-01", got[0].Date)
				assert.Equal(t, tt.want, got[0].Status)
			}
		})
	}
}

func TestNormalizeDailyStatusesSortedUnique(t *testing.T) {
	records := []CheckInRecord{
		rec("2024-04-03", StatusClean),
		rec("2024-04-01", StatusClean),
		rec("2024-04-02", StatusRelapse),
		rec("2024-04-01", StatusSkipped),
		rec("2024-04-03", StatusClean),
	}
	got := NormalizeDailyStatuses(records)

	assert.Equal(t, []string{"2024-04-01", "2024-04-02", "2024-04-03"}, []string{got[0].Date, got[1].Date, got[2].Date})
	assert.Equal(t, StatusSkipped, got[0].Status)
	assert.Equal(t, StatusRelapse, got[1].Status)
	assert.Equal(t, StatusClean, got[2].Status)
	assert.Equal(t, mustDay("2024-04-02"), got[1].Day)
}

func TestNormalizeDailyStatusesDropsBadRecords(t *testing.T) {
	records := []CheckInRecord{
		{Status: StatusRelapse}, // no date
		{Date: mustDay("2024-04-01"), Status: "sober"},
		rec("2024-04-02", StatusClean),
	}
	got := NormalizeDailyStatuses(records)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "2024-04-02", got[0].Date)
	}
}

func TestNormalizeDailyStatusesGroupsAcrossZones(t *testing.T) {
	west := time.FixedZone("UTC-5", -5*3600)
	records := []CheckInRecord{
		{Date: time.Date(2024, 4, 1, 20, 0, 0, 0, west), Status: StatusClean}, // 01:00 UTC on the 2nd
		{Date: time.Date(2024, 4, 2, 3, 0, 0, 0, time.UTC), Status: StatusClean},
	}
	got := NormalizeDailyStatuses(records)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "2024-04-02", got[0].Date)
	}
}
