// ABOUTME: StatsSummary rollup over a trailing window of daily entries.
package models

// IssueCount is one ranked issue type with its occurrence count.
type IssueCount struct {
	Type  string `json:"type" yaml:"type"`
	Count int    `json:"count" yaml:"count"`
}

// StatsSummary aggregates entries over a trailing window. AvgStress is
// nil when no entry in the window has a stress level. StreakDays always
// walks back from today regardless of the window size.
type StatsSummary struct {
	TotalEntries int          `json:"total_entries" yaml:"total_entries"`
	WorkoutDays  int          `json:"workout_days" yaml:"workout_days"`
	AvgStress    *float64     `json:"avg_stress" yaml:"avg_stress,omitempty"`
	CommonIssues []IssueCount `json:"common_issues" yaml:"common_issues"`
	StreakDays   int          `json:"streak_days" yaml:"streak_days"`
}
