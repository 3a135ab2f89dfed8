// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/healthify/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log and query your health data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "healthify": {
        "command": "healthify",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_entry         Create a daily entry
  update_entry      Patch a daily entry
  get_entry         Get an entry by date
  list_entries      List recent entries
  delete_entry      Delete an entry by date
  get_stats         Rolling statistics and streak
  list_issue_types  The issue type catalog
  todays_workout    Today's scheduled workout

AVAILABLE RESOURCES:

  healthify://today         Today's entry
  healthify://stats         Last 30 days of statistics
  healthify://issue-types   The active issue catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
