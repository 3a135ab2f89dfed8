// ABOUTME: Root Cobra command for healthify CLI.
// ABOUTME: Opens storage and seeds the issue catalog via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/healthify/internal/config"
	"github.com/harperreed/healthify/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "healthify",
	Short: "Personal daily health tracker",
	Long: `Healthify tracks one health entry per day: stress level, workout
status, notes, and any health issues you want to log against the day.
It also manages workout routines and computes rolling statistics.

QUICK START:

  $ healthify log --stress 4 --workout          # Log today's entry
  $ healthify log --issue headache:6:morning    # Log an issue for today
  $ healthify today                             # Show today's entry
  $ healthify list                              # Recent entries
  $ healthify stats --days 30                   # Streak, averages, top issues

ROUTINES:

  $ healthify routine add "Push/Pull/Legs"      # Create a routine
  $ healthify routine today                     # What's scheduled today?

SERVER:

  $ healthify serve                             # Start the HTTP API (:8000)

MCP INTEGRATION:

  Run 'healthify mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "healthify": { "command": "healthify", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Entries are stored in SQLite at ~/.local/share/healthify/healthify.db.
  Override with HEALTHIFY_DATA_DIR or the JSON config file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		// One guarded seeding step per process; no-op when non-empty.
		if err := repo.SeedIssueTypes(); err != nil {
			return fmt.Errorf("failed to seed issue types: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
