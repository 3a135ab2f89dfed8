// ABOUTME: CLI commands for the issue type catalog.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/healthify/internal/models"
	"github.com/spf13/cobra"
)

var (
	typesAll  bool
	typesIcon string
)

var issueTypesCmd = &cobra.Command{
	Use:     "issue-types",
	Aliases: []string{"types"},
	Short:   "Manage the issue type catalog",
	Long: `List or extend the catalog of issue types used for quick logging.

A default set is seeded automatically on first run. Names must be unique.

EXAMPLES:

  healthify issue-types               # Active types in display order
  healthify issue-types --all         # Include inactive types
  healthify issue-types add tinnitus "Tinnitus" --icon ear`,
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := repo.ListIssueTypes(!typesAll)
		if err != nil {
			return fmt.Errorf("failed to list issue types: %w", err)
		}
		if len(types) == 0 {
			fmt.Println("No issue types found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range types {
			icon := ""
			if t.Icon != nil {
				icon = faint.Sprintf(" [%s]", *t.Icon)
			}
			inactive := ""
			if !t.IsActive {
				inactive = faint.Sprint(" (inactive)")
			}
			fmt.Printf("%3d %-20s %s%s%s\n", t.SortOrder, t.Name, t.DisplayName, icon, inactive)
		}
		return nil
	},
}

var issueTypesAddCmd = &cobra.Command{
	Use:   "add <name> <display_name>",
	Short: "Add an issue type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := &models.IssueTypeCreate{
			Name:        args[0],
			DisplayName: args[1],
		}
		if typesIcon != "" {
			payload.Icon = &typesIcon
		}

		created, err := repo.CreateIssueType(payload)
		if err != nil {
			return fmt.Errorf("failed to create issue type: %w", err)
		}

		color.Green("✓ Added issue type %s", created.Name)
		return nil
	},
}

func init() {
	issueTypesCmd.Flags().BoolVar(&typesAll, "all", false, "include inactive types")
	issueTypesAddCmd.Flags().StringVar(&typesIcon, "icon", "", "UI icon hint")
	issueTypesCmd.AddCommand(issueTypesAddCmd)
	rootCmd.AddCommand(issueTypesCmd)
}
