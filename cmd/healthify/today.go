// ABOUTME: CLI commands for showing, listing, and deleting daily entries.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/healthify/internal/models"
	"github.com/harperreed/healthify/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listLimit int
	listSkip  int
	listFrom  string
	listTo    string
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := repo.GetEntryByDate(models.Today())
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Println("No entry for today yet. Use 'healthify log' to create one.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load today's entry: %w", err)
		}
		printEntry(entry)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List daily entries",
	Long: `List daily entries, newest first.

EXAMPLES:

  healthify list                        # Last 30 entries
  healthify list -n 7                   # Last week of entries
  healthify list --from 2026-08-01 --to 2026-08-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := storage.ListEntriesOptions{Skip: listSkip, Limit: listLimit}
		if listFrom != "" {
			d, err := models.ParseDate(listFrom)
			if err != nil {
				return err
			}
			opts.StartDate = &d
		}
		if listTo != "" {
			d, err := models.ParseDate(listTo)
			if err != nil {
				return err
			}
			opts.EndDate = &d
		}

		entries, err := repo.ListEntries(opts)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No entries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			stress := "-"
			if e.StressLevel != nil {
				stress = fmt.Sprintf("stress %d", *e.StressLevel)
			}
			workout := " "
			if e.WorkedOut {
				workout = "W"
			}
			issues := ""
			if len(e.HealthIssues) > 0 {
				names := make([]string, len(e.HealthIssues))
				for i := range e.HealthIssues {
					names[i] = e.HealthIssues[i].IssueType
				}
				issues = faint.Sprintf(" (%s)", strings.Join(names, ", "))
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(e.ID.String()[:8]),
				e.Date,
				workout,
				stress,
				issues)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a daily entry",
	Long: `Delete the entry for a date along with all its health issues.

CAUTION:

  This permanently deletes the entry and its issues. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}
		deleted, err := repo.DeleteEntry(date)
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		if !deleted {
			return fmt.Errorf("no entry for %s", date)
		}
		color.Yellow("✗ Deleted entry for %s", date)
		return nil
	},
}

// printEntry renders one entry with its issues.
func printEntry(e *models.DailyEntry) {
	faint := color.New(color.Faint)
	fmt.Printf("%s %s\n", faint.Sprint(e.ID.String()[:8]), e.Date)
	if e.StressLevel != nil {
		fmt.Printf("  Stress:  %d/10\n", *e.StressLevel)
	}
	if e.WorkedOut {
		note := ""
		if e.WorkoutNotes != nil {
			note = " - " + *e.WorkoutNotes
		}
		fmt.Printf("  Workout: yes%s\n", note)
	}
	if e.Notes != nil {
		fmt.Printf("  Notes:   %s\n", *e.Notes)
	}
	for i := range e.HealthIssues {
		issue := &e.HealthIssues[i]
		line := "  Issue:   " + issue.IssueType
		if issue.Severity != nil {
			line += fmt.Sprintf(" (%d/10)", *issue.Severity)
		}
		if issue.TimeOfDay != nil {
			line += ", " + *issue.TimeOfDay
		}
		fmt.Println(line)
	}
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 30, "max number of results")
	listCmd.Flags().IntVar(&listSkip, "skip", 0, "number of entries to skip")
	listCmd.Flags().StringVar(&listFrom, "from", "", "inclusive start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "inclusive end date (YYYY-MM-DD)")
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}
