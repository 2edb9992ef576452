// Package analysis turns a user's check-in history into streaks, a weekly
// trend, behavioral insights and milestone state. Every function is pure: the
// reference time is always passed in, so results depend on input alone.
package analysis

import "time"

// Result is the payload returned to clients.
type Result struct {
	CurrentStreak     int          `json:"currentStreak"`
	LongestStreak     int          `json:"longestStreak"`
	NextMilestoneDays int          `json:"nextMilestoneDays"`
	DaysToGo          int          `json:"daysToGo"`
	TrendData         []TrendPoint `json:"trendData"`
	Insights          Insights     `json:"insights"`
	Milestones        []Milestone  `json:"milestones"`
}

type options struct {
	now       time.Time
	trendDays int
	loc       *time.Location
}

// Option configures Analyze.
type Option func(*options)

// WithNow sets the reference time. Without it Analyze reads the wall clock.
func WithNow(now time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithTrendDays sets the trailing trend window; non-positive values keep the default.
func WithTrendDays(days int) Option {
	return func(o *options) {
		if days > 0 {
			o.trendDays = days
		}
	}
}

// WithLocation sets the zone used to read check-in hours.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// Analyze runs the whole pipeline over records. Input order does not matter.
func Analyze(records []CheckInRecord, opts ...Option) Result {
	o := options{trendDays: DefaultTrendDays, loc: time.UTC}
	for _, opt := range opts {
		opt(&o)
	}
	if o.now.IsZero() {
		o.now = time.Now()
	}

	daily := NormalizeDailyStatuses(records)
	streaks := streaksFromDaily(daily, o.now)

	return shapeResult(
		streaks,
		trendFromDaily(daily, o.now, o.trendDays),
		GenerateInsights(records, o.loc),
		ResolveMilestones(streaks.Longest),
	)
}

func shapeResult(s Streaks, trend []TrendPoint, in Insights, milestones []Milestone) Result {
	next := s.Longest
	for _, m := range milestones {
		if !m.Unlocked {
			next = m.ThresholdDays
			break
		}
	}
	toGo := next - s.Current
	if toGo < 0 {
		toGo = 0
	}
	return Result{
		CurrentStreak:     s.Current,
		LongestStreak:     s.Longest,
		NextMilestoneDays: next,
		DaysToGo:          toGo,
		TrendData:         trend,
		Insights:          in,
		Milestones:        milestones,
	}
}

// NeedsCheckIn reports whether no record is dated on now's day.
func NeedsCheckIn(records []CheckInRecord, now time.Time) bool {
	today := DayKey(now)
	for _, r := range records {
		if !r.Date.IsZero() && DayKey(r.Date) == today {
			return false
		}
	}
	return true
}
