package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(date string, hour int) time.Time {
	return mustDay(date).Add(time.Duration(hour) * time.Hour)
}

func TestGenerateInsightsEmpty(t *testing.T) {
	got := GenerateInsights(nil, nil)
	assert.Equal(t, NotEnoughData, got.StrongestTime)
	assert.Equal(t, NoPattern, got.TriggerDay)
}

func TestGenerateInsightsStrongestTime(t *testing.T) {
	tests := []struct {
		name  string
		hours []int
		want  string
	}{
		{"Morning", []int{5, 11, 20}, "Morning (5am - 12pm)"},
		{"Afternoon", []int{12, 16, 8}, "Afternoon (12pm - 5pm)"},
		{"Evening", []int{17, 20}, "Evening (5pm - 9pm)"},
		{"NightWrapsMidnight", []int{21, 23, 0, 4, 6}, "Night (9pm - 5am)"},
		{"TieGoesToEarlierWindow", []int{22, 9}, "Morning (5am - 12pm)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []CheckInRecord
			for i, h := range tt.hours {
				d := mustDay("2024-02-01").AddDate(0, 0, i)
				records = append(records, CheckInRecord{
					Date:        d,
					Status:      StatusClean,
					CheckInTime: d.Add(time.Duration(h) * time.Hour),
				})
			}
			assert.Equal(t, tt.want, GenerateInsights(records, nil).StrongestTime)
		})
	}
}

func TestGenerateInsightsIgnoresNonCleanForTime(t *testing.T) {
	records := []CheckInRecord{
		{Date: mustDay("2024-02-01"), Status: StatusRelapse, CheckInTime: at("2024-02-01", 9)},
		{Date: mustDay("2024-02-02"), Status: StatusSkipped, CheckInTime: at("2024-02-02", 9)},
	}
	assert.Equal(t, NotEnoughData, GenerateInsights(records, nil).StrongestTime)
}

func TestGenerateInsightsFallsBackToDate(t *testing.T) {
	records := []CheckInRecord{{Date: at("2024-02-01", 14), Status: StatusClean}}
	assert.Equal(t, "Afternoon (12pm - 5pm)", GenerateInsights(records, nil).StrongestTime)
}

func TestGenerateInsightsLocation(t *testing.T) {
	records := []CheckInRecord{{Date: mustDay("2024-02-01"), Status: StatusClean, CheckInTime: at("2024-02-01", 10)}}
	east := time.FixedZone("UTC+8", 8*3600)
	assert.Equal(t, "Evening (5pm - 9pm)", GenerateInsights(records, east).StrongestTime)
}

func TestGenerateInsightsTriggerDay(t *testing.T) {
	// 2024-01-01 is a Monday
	records := []CheckInRecord{
		rec("2024-01-05", StatusRelapse), // Friday
		rec("2024-01-01", StatusRelapse), // Monday
		rec("2024-01-08", StatusRelapse), // Monday
		rec("2024-01-09", StatusClean),
	}
	assert.Equal(t, "Monday", GenerateInsights(records, nil).TriggerDay)
}

func TestGenerateInsightsTriggerDayTie(t *testing.T) {
	records := []CheckInRecord{
		rec("2024-01-01", StatusRelapse), // Monday
		rec("2023-12-29", StatusRelapse), // Friday, earlier
	}
	assert.Equal(t, "Friday", GenerateInsights(records, nil).TriggerDay)

	reversed := []CheckInRecord{records[1], records[0]}
	assert.Equal(t, "Friday", GenerateInsights(reversed, nil).TriggerDay)
}
