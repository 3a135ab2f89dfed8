// ABOUTME: CLI commands for exporting and importing health data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/healthify/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all health data",
	Long: `Export entries, the issue catalog, and routines in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown report (for documentation/sharing)

EXAMPLES:

  healthify export json                 # Export all data as JSON
  healthify export json -o backup.json  # Save to file
  healthify export markdown             # Readable report`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		export, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch format {
		case "json":
			data, err = export.ToJSON()
		case "yaml":
			data, err = export.ToYAML()
		case "markdown":
			data = export.ToMarkdown()
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import health data from JSON",
	Long: `Import health data from a JSON backup file.

Entries re-create their issues; routines re-create their full day and
exercise tree. A duplicate date or issue type name causes an error.

EXAMPLES:

  healthify import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var export storage.ExportData
		if err := json.Unmarshal(raw, &export); err != nil {
			return fmt.Errorf("failed to parse export file: %w", err)
		}

		if err := repo.ImportData(&export); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d entries, %d issue types, %d routines",
			len(export.Entries), len(export.IssueTypes), len(export.Routines))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
