// ABOUTME: CLI command for logging or patching a day's entry.
// ABOUTME: Creates the entry when missing, otherwise applies a partial update.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/healthify/internal/models"
	"github.com/harperreed/healthify/internal/storage"
	"github.com/spf13/cobra"
)

var (
	logDate         string
	logStress       int
	logWorkout      bool
	logWorkoutNotes string
	logNotes        string
	logIssues       []string
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Log today's health entry",
	Long: `Log the entry for a day. Creates the entry if none exists yet,
otherwise patches only the flags you pass.

ISSUES:

  --issue takes type[:severity[:time_of_day]] and may repeat. Passing any
  --issue flag replaces the day's full issue list.

EXAMPLES:

  healthify log --stress 4
  healthify log --workout --workout-notes "5k run"
  healthify log --issue headache:6:morning --issue fatigue:4
  healthify log --date 2026-08-30 --notes "Slept badly"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := models.Today()
		if logDate != "" {
			var err error
			date, err = models.ParseDate(logDate)
			if err != nil {
				return err
			}
		}

		issues, err := parseIssueFlags(logIssues)
		if err != nil {
			return err
		}

		update := &models.EntryUpdate{}
		if cmd.Flags().Changed("stress") {
			update.StressLevel = &logStress
		}
		if cmd.Flags().Changed("workout") {
			update.WorkedOut = &logWorkout
		}
		if cmd.Flags().Changed("workout-notes") {
			update.WorkoutNotes = &logWorkoutNotes
		}
		if cmd.Flags().Changed("notes") {
			update.Notes = &logNotes
		}
		if cmd.Flags().Changed("issue") {
			update.HealthIssues = &issues
		}

		entry, err := repo.UpdateEntry(date, update)
		if errors.Is(err, storage.ErrNotFound) {
			create := &models.EntryCreate{
				Date:         date,
				StressLevel:  update.StressLevel,
				WorkoutNotes: update.WorkoutNotes,
				Notes:        update.Notes,
				HealthIssues: issues,
			}
			if update.WorkedOut != nil {
				create.WorkedOut = *update.WorkedOut
			}
			entry, err = repo.CreateEntry(create)
		}
		if err != nil {
			return fmt.Errorf("failed to log entry: %w", err)
		}

		color.Green("✓ Logged %s", entry.Date)
		printEntry(entry)
		return nil
	},
}

// parseIssueFlags parses repeated type[:severity[:time_of_day]] values.
func parseIssueFlags(raw []string) ([]models.HealthIssueInput, error) {
	issues := []models.HealthIssueInput{}
	for _, spec := range raw {
		parts := strings.SplitN(spec, ":", 3)
		in := models.HealthIssueInput{IssueType: parts[0]}
		if in.IssueType == "" {
			return nil, fmt.Errorf("invalid issue %q: empty type", spec)
		}
		if len(parts) > 1 && parts[1] != "" {
			sev, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("invalid issue %q: severity must be a number", spec)
			}
			in.Severity = &sev
		}
		if len(parts) > 2 && parts[2] != "" {
			tod := parts[2]
			in.TimeOfDay = &tod
		}
		issues = append(issues, in)
	}
	return issues, nil
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "entry date (YYYY-MM-DD, default today)")
	logCmd.Flags().IntVar(&logStress, "stress", 0, "stress level (1-10)")
	logCmd.Flags().BoolVar(&logWorkout, "workout", false, "mark the day as a workout day")
	logCmd.Flags().StringVar(&logWorkoutNotes, "workout-notes", "", "workout notes")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "general notes")
	logCmd.Flags().StringArrayVar(&logIssues, "issue", nil, "health issue as type[:severity[:time_of_day]] (repeatable)")
	rootCmd.AddCommand(logCmd)
}
