// ABOUTME: CLI command for rolling health statistics.
// ABOUTME: Shows streak, workout count, average stress, and top issues.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show rolling statistics",
	Long: `Show statistics over a trailing window of days.

The streak counts consecutive days with an entry, walking backward from
today; it ignores the window size.

EXAMPLES:

  healthify stats             # Last 30 days
  healthify stats --days 7    # Last week`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if statsDays < 1 || statsDays > 365 {
			return fmt.Errorf("--days must be between 1 and 365")
		}

		summary, err := repo.Stats(statsDays)
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Printf("Last %d days\n", statsDays)
		fmt.Printf("  Entries:      %d\n", summary.TotalEntries)
		fmt.Printf("  Workout days: %d\n", summary.WorkoutDays)
		if summary.AvgStress != nil {
			fmt.Printf("  Avg stress:   %.1f/10\n", *summary.AvgStress)
		} else {
			fmt.Printf("  Avg stress:   -\n")
		}
		fmt.Printf("  Streak:       %d day(s)\n", summary.StreakDays)

		if len(summary.CommonIssues) > 0 {
			bold.Println("Top issues")
			for _, ic := range summary.CommonIssues {
				fmt.Printf("  %-20s %d\n", ic.Type, ic.Count)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 30, "trailing window in days (1-365)")
	rootCmd.AddCommand(statsCmd)
}
