// ABOUTME: DailyEntry and HealthIssue models for day-by-day health tracking.
// ABOUTME: One entry per calendar date; issues live and die with their entry.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyEntry is one day's health record. At most one exists per date.
type DailyEntry struct {
	ID            uuid.UUID              `json:"id" yaml:"id"`
	Date          Date                   `json:"date" yaml:"date"`
	StressLevel   *int                   `json:"stress_level" yaml:"stress_level,omitempty"`
	WorkedOut     bool                   `json:"worked_out" yaml:"worked_out"`
	WorkoutNotes  *string                `json:"workout_notes" yaml:"workout_notes,omitempty"`
	Notes         *string                `json:"notes" yaml:"notes,omitempty"`
	DeviceMetrics map[string]interface{} `json:"device_metrics" yaml:"device_metrics,omitempty"`
	CreatedAt     time.Time              `json:"created_at" yaml:"created_at"`
	UpdatedAt     *time.Time             `json:"updated_at" yaml:"updated_at,omitempty"`
	HealthIssues  []HealthIssue          `json:"health_issues" yaml:"health_issues"`
}

// HealthIssue is a symptom or condition logged against a daily entry.
// Issues are created through their parent entry and never edited in place.
type HealthIssue struct {
	ID           uuid.UUID `json:"id" yaml:"id"`
	DailyEntryID uuid.UUID `json:"daily_entry_id" yaml:"daily_entry_id"`
	IssueType    string    `json:"issue_type" yaml:"issue_type"`
	Severity     *int      `json:"severity" yaml:"severity,omitempty"`
	Notes        *string   `json:"notes" yaml:"notes,omitempty"`
	TimeOfDay    *string   `json:"time_of_day" yaml:"time_of_day,omitempty"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// NewDailyEntry creates an entry for a date with generated UUID and timestamp.
func NewDailyEntry(date Date) *DailyEntry {
	return &DailyEntry{
		ID:        uuid.New(),
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// WithStressLevel sets the stress level.
func (e *DailyEntry) WithStressLevel(level int) *DailyEntry {
	e.StressLevel = &level
	return e
}

// WithWorkout marks the day as a workout day with optional notes.
func (e *DailyEntry) WithWorkout(notes string) *DailyEntry {
	e.WorkedOut = true
	if notes != "" {
		e.WorkoutNotes = &notes
	}
	return e
}

// WithNotes sets general notes on the entry.
func (e *DailyEntry) WithNotes(notes string) *DailyEntry {
	e.Notes = &notes
	return e
}

// HealthIssueInput is the payload shape for an issue supplied with its
// parent entry's create or update call.
type HealthIssueInput struct {
	IssueType string  `json:"issue_type" yaml:"issue_type" binding:"required"`
	Severity  *int    `json:"severity" yaml:"severity,omitempty"`
	Notes     *string `json:"notes" yaml:"notes,omitempty"`
	TimeOfDay *string `json:"time_of_day" yaml:"time_of_day,omitempty"`
}

// Validate checks the issue's declared ranges.
func (in *HealthIssueInput) Validate() error {
	if in.IssueType == "" {
		return &ValidationError{Field: "issue_type", Message: "must not be empty"}
	}
	return checkScale("severity", in.Severity)
}

// EntryCreate is the payload for creating a daily entry.
type EntryCreate struct {
	Date          Date                   `json:"date" binding:"required"`
	StressLevel   *int                   `json:"stress_level"`
	WorkedOut     bool                   `json:"worked_out"`
	WorkoutNotes  *string                `json:"workout_notes"`
	Notes         *string                `json:"notes"`
	DeviceMetrics map[string]interface{} `json:"device_metrics"`
	HealthIssues  []HealthIssueInput     `json:"health_issues"`
}

// Validate checks declared ranges before any storage write.
func (c *EntryCreate) Validate() error {
	if c.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "must be set"}
	}
	if err := checkScale("stress_level", c.StressLevel); err != nil {
		return err
	}
	for i := range c.HealthIssues {
		if err := c.HealthIssues[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// EntryUpdate is the partial-update payload for an existing entry. Nil
// fields are left untouched. A non-nil HealthIssues list (even empty)
// replaces all existing issues; nil leaves them alone.
type EntryUpdate struct {
	StressLevel   *int                   `json:"stress_level"`
	WorkedOut     *bool                  `json:"worked_out"`
	WorkoutNotes  *string                `json:"workout_notes"`
	Notes         *string                `json:"notes"`
	DeviceMetrics map[string]interface{} `json:"device_metrics"`
	HealthIssues  *[]HealthIssueInput    `json:"health_issues"`
}

// Validate checks declared ranges before any storage write.
func (u *EntryUpdate) Validate() error {
	if err := checkScale("stress_level", u.StressLevel); err != nil {
		return err
	}
	if u.HealthIssues != nil {
		for i := range *u.HealthIssues {
			if err := (*u.HealthIssues)[i].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
