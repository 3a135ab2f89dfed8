// ABOUTME: MCP resource implementations for daily health data.
// ABOUTME: Provides healthify://today, healthify://stats, and healthify://issue-types.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/healthify/internal/models"
	"github.com/harperreed/healthify/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// healthify://today - today's entry, if any
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthify://today",
		Name:        "Today's Entry",
		Description: "Today's daily health entry with its issues",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// healthify://stats - 30-day rollup
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthify://stats",
		Name:        "Health Stats",
		Description: "Streak, workouts, average stress, and top issues over 30 days",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// healthify://issue-types - the active catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthify://issue-types",
		Name:        "Issue Type Catalog",
		Description: "Active issue types available for logging",
		MIMEType:    "application/json",
	}, s.handleIssueTypesResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var result interface{}

	entry, err := s.repo.GetEntryByDate(models.Today())
	switch {
	case err == nil:
		result = entry
	case errors.Is(err, storage.ErrNotFound):
		result = map[string]interface{}{"message": "No entry for today yet."}
	default:
		return nil, fmt.Errorf("failed to load today's entry: %w", err)
	}

	return jsonResource("healthify://today", result)
}

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.repo.Stats(30)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return jsonResource("healthify://stats", summary)
}

func (s *Server) handleIssueTypesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	types, err := s.repo.ListIssueTypes(true)
	if err != nil {
		return nil, fmt.Errorf("failed to list issue types: %w", err)
	}
	return jsonResource("healthify://issue-types", types)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
