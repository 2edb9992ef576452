package analysis

// MilestoneDefinition is a fixed streak threshold.
type MilestoneDefinition struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ThresholdDays int    `json:"days"`
}

// Milestone is a definition resolved against a longest streak.
type Milestone struct {
	MilestoneDefinition
	Unlocked bool `json:"unlocked"`
}

var milestoneTable = [...]MilestoneDefinition{
	{1, "First Day", 1},
	{2, "One Week", 7},
	{3, "Two Weeks", 14},
	{4, "One Month", 30},
	{5, "Three Months", 90},
	{6, "Six Months", 180},
	{7, "One Year", 365},
}

// Milestones returns a copy of the milestone table, ascending by threshold.
func Milestones() []MilestoneDefinition {
	out := make([]MilestoneDefinition, len(milestoneTable))
	copy(out, milestoneTable[:])
	return out
}

// ResolveMilestones unlocks every milestone the longest streak has reached.
// Unlocks are permanent: a relapse lowers the current streak, never the longest.
func ResolveMilestones(longest int) []Milestone {
	out := make([]Milestone, 0, len(milestoneTable))
	for _, m := range milestoneTable {
		out = append(out, Milestone{MilestoneDefinition: m, Unlocked: longest >= m.ThresholdDays})
	}
	return out
}

// MilestoneProgress is the fraction of the way from the last threshold the
// current streak passed to the next one. It is 1 once every threshold is passed.
func MilestoneProgress(current int) float64 {
	prev := 0
	for _, m := range milestoneTable {
		if m.ThresholdDays > current {
			return float64(current-prev) / float64(m.ThresholdDays-prev)
		}
		prev = m.ThresholdDays
	}
	return 1
}
