// ABOUTME: MCP tool implementations for daily health entries.
// ABOUTME: Provides entry logging, stats, catalog, and workout lookups.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/healthify/internal/models"
	"github.com/harperreed/healthify/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_entry",
		Description: "Create a daily entry (stress, workout, notes, health issues) for a date",
	}, s.handleLogEntry)

	// update_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_entry",
		Description: "Partially update the entry for a date; supplying issues replaces all of them",
	}, s.handleUpdateEntry)

	// get_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_entry",
		Description: "Get the entry for a date (YYYY-MM-DD), including its health issues",
	}, s.handleGetEntry)

	// list_entries
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_entries",
		Description: "List recent daily entries, newest first",
	}, s.handleListEntries)

	// delete_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete the entry for a date and all its health issues",
	}, s.handleDeleteEntry)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get streak, workout count, average stress, and top issues for a trailing window",
	}, s.handleGetStats)

	// list_issue_types
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_issue_types",
		Description: "List the issue type catalog",
	}, s.handleListIssueTypes)

	// todays_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "todays_workout",
		Description: "Get the workout day scheduled for today from the active routine",
	}, s.handleTodaysWorkout)
}

// Tool input/output types

type issueInput struct {
	IssueType string `json:"issue_type" jsonschema:"description=Issue category code (e.g. headache, fatigue),required"`
	Severity  int    `json:"severity,omitempty" jsonschema:"description=Severity 1-10"`
	Notes     string `json:"notes,omitempty" jsonschema:"description=Optional notes"`
	TimeOfDay string `json:"time_of_day,omitempty" jsonschema:"description=morning, afternoon, evening, or night"`
}

type logEntryInput struct {
	Date         string       `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
	StressLevel  int          `json:"stress_level,omitempty" jsonschema:"description=Stress level 1-10"`
	WorkedOut    *bool        `json:"worked_out,omitempty" jsonschema:"description=Whether a workout happened"`
	WorkoutNotes string       `json:"workout_notes,omitempty" jsonschema:"description=Workout notes"`
	Notes        string       `json:"notes,omitempty" jsonschema:"description=General notes"`
	Issues       []issueInput `json:"health_issues,omitempty" jsonschema:"description=Health issues for the day"`
}

type entryOutput struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type dateInput struct {
	Date string `json:"date" jsonschema:"description=Date (YYYY-MM-DD),required"`
}

type listEntriesInput struct {
	Limit     int    `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
	StartDate string `json:"start_date,omitempty" jsonschema:"description=Inclusive lower date bound"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"description=Inclusive upper date bound"`
}

type statsInput struct {
	Days int `json:"days,omitempty" jsonschema:"description=Trailing window in days (default 30)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogEntry(ctx context.Context, req *mcp.CallToolRequest, input logEntryInput) (*mcp.CallToolResult, entryOutput, error) {
	date := models.Today()
	if input.Date != "" {
		var err error
		date, err = models.ParseDate(input.Date)
		if err != nil {
			return nil, entryOutput{}, err
		}
	}

	payload := &models.EntryCreate{Date: date}
	if input.WorkedOut != nil {
		payload.WorkedOut = *input.WorkedOut
	}
	if input.StressLevel > 0 {
		payload.StressLevel = &input.StressLevel
	}
	if input.WorkoutNotes != "" {
		payload.WorkoutNotes = &input.WorkoutNotes
	}
	if input.Notes != "" {
		payload.Notes = &input.Notes
	}
	payload.HealthIssues = toIssueInputs(input.Issues)

	entry, err := s.repo.CreateEntry(payload)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to create entry: %w", err)
	}

	return nil, entryOutput{
		ID:      entry.ID.String()[:8],
		Date:    entry.Date.String(),
		Message: fmt.Sprintf("Logged entry for %s (%d issues)", entry.Date, len(entry.HealthIssues)),
	}, nil
}

func (s *Server) handleUpdateEntry(ctx context.Context, req *mcp.CallToolRequest, input logEntryInput) (*mcp.CallToolResult, entryOutput, error) {
	date := models.Today()
	if input.Date != "" {
		var err error
		date, err = models.ParseDate(input.Date)
		if err != nil {
			return nil, entryOutput{}, err
		}
	}

	payload := &models.EntryUpdate{}
	if input.StressLevel > 0 {
		payload.StressLevel = &input.StressLevel
	}
	payload.WorkedOut = input.WorkedOut
	if input.WorkoutNotes != "" {
		payload.WorkoutNotes = &input.WorkoutNotes
	}
	if input.Notes != "" {
		payload.Notes = &input.Notes
	}
	if input.Issues != nil {
		issues := toIssueInputs(input.Issues)
		payload.HealthIssues = &issues
	}

	entry, err := s.repo.UpdateEntry(date, payload)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to update entry: %w", err)
	}

	return nil, entryOutput{
		ID:      entry.ID.String()[:8],
		Date:    entry.Date.String(),
		Message: fmt.Sprintf("Updated entry for %s", entry.Date),
	}, nil
}

func (s *Server) handleGetEntry(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	entry, err := s.repo.GetEntryByDate(date)
	if err != nil {
		return nil, nil, fmt.Errorf("entry not found for %s", input.Date)
	}

	return nil, entry, nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input listEntriesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	opts := storage.ListEntriesOptions{Limit: input.Limit}
	if input.StartDate != "" {
		d, err := models.ParseDate(input.StartDate)
		if err != nil {
			return nil, nil, err
		}
		opts.StartDate = &d
	}
	if input.EndDate != "" {
		d, err := models.ParseDate(input.EndDate)
		if err != nil {
			return nil, nil, err
		}
		opts.EndDate = &d
	}

	entries, err := s.repo.ListEntries(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "No entries found."}, nil
	}

	return nil, entries, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	deleted, err := s.repo.DeleteEntry(date)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete entry: %w", err)
	}
	if !deleted {
		return nil, simpleOutput{}, fmt.Errorf("no entry for %s", input.Date)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted entry for %s", input.Date),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input statsInput) (*mcp.CallToolResult, any, error) {
	if input.Days <= 0 {
		input.Days = 30
	}

	summary, err := s.repo.Stats(input.Days)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return nil, summary, nil
}

func (s *Server) handleListIssueTypes(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	types, err := s.repo.ListIssueTypes(true)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list issue types: %w", err)
	}

	return nil, types, nil
}

func (s *Server) handleTodaysWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	workout, err := s.repo.TodaysWorkout()
	if errors.Is(err, storage.ErrNotFound) {
		return nil, map[string]interface{}{"message": "No workout scheduled for today."}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up today's workout: %w", err)
	}

	return nil, workout, nil
}

func toIssueInputs(issues []issueInput) []models.HealthIssueInput {
	var out []models.HealthIssueInput
	for i := range issues {
		in := models.HealthIssueInput{IssueType: issues[i].IssueType}
		if issues[i].Severity > 0 {
			sev := issues[i].Severity
			in.Severity = &sev
		}
		if issues[i].Notes != "" {
			notes := issues[i].Notes
			in.Notes = &notes
		}
		if issues[i].TimeOfDay != "" {
			tod := issues[i].TimeOfDay
			in.TimeOfDay = &tod
		}
		out = append(out, in)
	}
	return out
}
