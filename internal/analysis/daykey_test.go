package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKeyUsesUTC(t *testing.T) {
	east := time.FixedZone("UTC+9", 9*3600)
	// 08:00 local on the 2nd is still the 1st in UTC
	ts := time.Date(2024, 3, 2, 8, 0, 0, 0, east)
	assert.Equal(t, "2024-03-01", DayKey(ts))
	assert.Equal(t, "2024-03-01", DayKey(time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)))
}

func TestDayDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"SameDay", time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), 0},
		{"HourNoise", time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC), 1},
		{"Backwards", mustDay("2024-01-10"), mustDay("2024-01-07"), -3},
		{"LeapYear", mustDay("2024-02-28"), mustDay("2024-03-01"), 2},
		{"YearBoundary", mustDay("2023-12-31"), mustDay("2024-01-01"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayDistance(tt.a, tt.b))
		})
	}
}

func TestParseDayKey(t *testing.T) {
	d, err := ParseDayKey("2024-05-17")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, "2024-05-17", DayKey(d))

	_, err = ParseDayKey("2024/05/17")
	assert.Error(t, err)
}
