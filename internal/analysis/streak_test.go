package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateStreaks(t *testing.T) {
	tests := []struct {
		name    string
		records []CheckInRecord
		now     string
		current int
		longest int
	}{
		{"Empty", nil, "2024-05-10", 0, 0},
		{"SingleCleanToday", []CheckInRecord{rec("2024-05-10", StatusClean)}, "2024-05-10", 1, 1},
		{"SingleCleanYesterday", []CheckInRecord{rec("2024-05-09", StatusClean)}, "2024-05-10", 1, 1},
		{"SingleCleanTwoDaysAgo", []CheckInRecord{rec("2024-05-08", StatusClean)}, "2024-05-10", 0, 1},
		{
			"EndsInRelapse",
			[]CheckInRecord{
				rec("2024-05-01", StatusClean),
				rec("2024-05-02", StatusClean),
				rec("2024-05-03", StatusRelapse),
			},
			"2024-05-03", 0, 2,
		},
		{
			"GapRestartsRun",
			[]CheckInRecord{
				rec("2024-05-01", StatusClean),
				rec("2024-05-02", StatusClean),
				rec("2024-05-04", StatusClean),
				rec("2024-05-05", StatusClean),
				rec("2024-05-06", StatusClean),
			},
			"2024-05-06", 3, 3,
		},
		{
			"SkippedBreaksRun",
			[]CheckInRecord{
				rec("2024-05-01", StatusClean),
				rec("2024-05-02", StatusSkipped),
				rec("2024-05-03", StatusClean),
			},
			"2024-05-03", 1, 1,
		},
		{
			"CleanAfterRelapseStartsAtOne",
			[]CheckInRecord{
				rec("2024-05-01", StatusRelapse),
				rec("2024-05-02", StatusClean),
				rec("2024-05-03", StatusClean),
			},
			"2024-05-04", 2, 2,
		},
		{
			"LongestInThePast",
			append(cleanRun(mustDay("2024-04-20"), 12),
				rec("2024-04-21", StatusRelapse),
				rec("2024-05-09", StatusClean),
				rec("2024-05-10", StatusClean),
			),
			"2024-05-10", 2, 12,
		},
		{
			"SameDayCorrection",
			[]CheckInRecord{
				rec("2024-05-09", StatusClean),
				rec("2024-05-10", StatusClean),
				rec("2024-05-10", StatusRelapse),
			},
			"2024-05-10", 0, 1,
		},
		{
			"UnknownStatusIsAbsence",
			[]CheckInRecord{
				rec("2024-05-08", StatusClean),
				rec("2024-05-09", StatusClean),
				{Date: mustDay("2024-05-10"), Status: "maybe"},
			},
			"2024-05-10", 2, 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStreaks(tt.records, mustDay(tt.now).Add(15*time.Hour))
			assert.Equal(t, tt.current, got.Current, "current")
			assert.Equal(t, tt.longest, got.Longest, "longest")
		})
	}
}

func TestCalculateStreaksFreshness(t *testing.T) {
	now := mustDay("2024-06-20").Add(9 * time.Hour)
	records := cleanRun(now.AddDate(0, 0, -3), 10)

	got := CalculateStreaks(records, now)
	assert.Equal(t, 0, got.Current)
	assert.Equal(t, 10, got.Longest)

	records = cleanRun(now.AddDate(0, 0, -1), 10)
	got = CalculateStreaks(records, now)
	assert.Equal(t, 10, got.Current)
	assert.Equal(t, 10, got.Longest)
}

func TestCalculateStreaksIgnoresHourOfDay(t *testing.T) {
	records := []CheckInRecord{
		{Date: time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC), Status: StatusClean},
		{Date: time.Date(2024, 5, 2, 0, 15, 0, 0, time.UTC), Status: StatusClean},
		{Date: time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC), Status: StatusClean},
	}
	got := CalculateStreaks(records, time.Date(2024, 5, 3, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, Streaks{Current: 3, Longest: 3}, got)
}
