// ABOUTME: Export and import functionality for health data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/healthify/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for health data.
type ExportData struct {
	Version    string                   `json:"version" yaml:"version"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	Entries    []*models.DailyEntry     `json:"entries" yaml:"entries"`
	IssueTypes []*models.IssueType      `json:"issue_types" yaml:"issue_types"`
	Routines   []*models.WorkoutRoutine `json:"routines" yaml:"routines"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	// Large page: export wants the whole history, not the API default.
	entries, err := d.ListEntries(ListEntriesOptions{Limit: 1 << 30})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	types, err := d.ListIssueTypes(false)
	if err != nil {
		return nil, fmt.Errorf("list issue types: %w", err)
	}

	routines, err := d.ListRoutines()
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	for _, r := range routines {
		if err := d.loadDays(r); err != nil {
			return nil, fmt.Errorf("load routine tree: %w", err)
		}
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "healthify",
		Entries:    entries,
		IssueTypes: types,
		Routines:   routines,
	}, nil
}

// ImportData imports data from an export file. Entries re-create their
// issues; routines re-create their full day and exercise tree. Issue
// types already present by name are skipped, so a backup restores
// cleanly into a database whose catalog was seeded at startup.
func (d *DB) ImportData(data *ExportData) error {
	for _, t := range data.IssueTypes {
		_, err := d.CreateIssueType(&models.IssueTypeCreate{
			Name:        t.Name,
			DisplayName: t.DisplayName,
			Icon:        t.Icon,
		})
		if errors.Is(err, ErrConflict) {
			continue
		}
		if err != nil {
			return fmt.Errorf("import issue type %s: %w", t.Name, err)
		}
	}

	for _, e := range data.Entries {
		c := &models.EntryCreate{
			Date:          e.Date,
			StressLevel:   e.StressLevel,
			WorkedOut:     e.WorkedOut,
			WorkoutNotes:  e.WorkoutNotes,
			Notes:         e.Notes,
			DeviceMetrics: e.DeviceMetrics,
		}
		for i := range e.HealthIssues {
			issue := &e.HealthIssues[i]
			c.HealthIssues = append(c.HealthIssues, models.HealthIssueInput{
				IssueType: issue.IssueType,
				Severity:  issue.Severity,
				Notes:     issue.Notes,
				TimeOfDay: issue.TimeOfDay,
			})
		}
		if _, err := d.CreateEntry(c); err != nil {
			return fmt.Errorf("import entry %s: %w", e.Date, err)
		}
	}

	for _, r := range data.Routines {
		c := &models.RoutineCreate{
			Name:        r.Name,
			Description: r.Description,
			IsActive:    &r.IsActive,
		}
		for i := range r.Days {
			day := &r.Days[i]
			dc := models.DayCreate{
				Name:      day.Name,
				DayOfWeek: day.DayOfWeek,
				SortOrder: day.SortOrder,
			}
			for j := range day.Exercises {
				ex := &day.Exercises[j]
				dc.Exercises = append(dc.Exercises, models.ExerciseCreate{
					Name:         ex.Name,
					TargetSets:   ex.TargetSets,
					TargetReps:   ex.TargetReps,
					TargetWeight: ex.TargetWeight,
					RestSeconds:  ex.RestSeconds,
					Notes:        ex.Notes,
					SortOrder:    ex.SortOrder,
				})
			}
			c.Days = append(c.Days, dc)
		}
		if _, err := d.CreateRoutine(c); err != nil {
			return fmt.Errorf("import routine %s: %w", r.Name, err)
		}
	}

	return nil
}

// ToJSON renders the export as indented JSON.
func (e *ExportData) ToJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// ToYAML renders the export as YAML.
func (e *ExportData) ToYAML() ([]byte, error) {
	return yaml.Marshal(e)
}

// ToMarkdown renders a human-readable report of the export.
func (e *ExportData) ToMarkdown() []byte {
	var b strings.Builder

	b.WriteString("# Healthify Export\n\n")
	fmt.Fprintf(&b, "Exported: %s\n\n", e.ExportedAt.Format("2006-01-02 15:04"))

	b.WriteString("## Daily Entries\n\n")
	if len(e.Entries) == 0 {
		b.WriteString("No entries.\n\n")
	}
	for _, entry := range e.Entries {
		fmt.Fprintf(&b, "### %s\n\n", entry.Date)
		if entry.StressLevel != nil {
			fmt.Fprintf(&b, "- Stress: %d/10\n", *entry.StressLevel)
		}
		if entry.WorkedOut {
			b.WriteString("- Worked out: yes\n")
			if entry.WorkoutNotes != nil {
				fmt.Fprintf(&b, "- Workout notes: %s\n", *entry.WorkoutNotes)
			}
		}
		if entry.Notes != nil {
			fmt.Fprintf(&b, "- Notes: %s\n", *entry.Notes)
		}
		for i := range entry.HealthIssues {
			issue := &entry.HealthIssues[i]
			line := "- Issue: " + issue.IssueType
			if issue.Severity != nil {
				line += fmt.Sprintf(" (%d/10)", *issue.Severity)
			}
			if issue.TimeOfDay != nil {
				line += ", " + *issue.TimeOfDay
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Workout Routines\n\n")
	if len(e.Routines) == 0 {
		b.WriteString("No routines.\n")
	}
	for _, r := range e.Routines {
		status := "active"
		if !r.IsActive {
			status = "inactive"
		}
		fmt.Fprintf(&b, "### %s (%s)\n\n", r.Name, status)
		if r.Description != nil {
			fmt.Fprintf(&b, "%s\n\n", *r.Description)
		}
		for i := range r.Days {
			day := &r.Days[i]
			fmt.Fprintf(&b, "- %s\n", day.Name)
			for j := range day.Exercises {
				ex := &day.Exercises[j]
				line := "  - " + ex.Name
				if ex.TargetSets != nil && ex.TargetReps != nil {
					line += fmt.Sprintf(": %dx%s", *ex.TargetSets, *ex.TargetReps)
				}
				b.WriteString(line + "\n")
			}
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}
