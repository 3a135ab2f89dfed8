// ABOUTME: IssueType reference catalog for quick symptom selection.
// ABOUTME: Ships a fixed default set seeded once at startup.
package models

import "github.com/google/uuid"

// IssueType is a catalog row describing a selectable issue category.
type IssueType struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	Icon        *string   `json:"icon" yaml:"icon,omitempty"`
	IsActive    bool      `json:"is_active" yaml:"is_active"`
	SortOrder   int       `json:"sort_order" yaml:"sort_order"`
}

// IssueTypeCreate is the payload for adding a catalog entry.
type IssueTypeCreate struct {
	Name        string  `json:"name" binding:"required"`
	DisplayName string  `json:"display_name" binding:"required"`
	Icon        *string `json:"icon"`
}

// Validate rejects blank identifiers before any storage write.
func (c *IssueTypeCreate) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if c.DisplayName == "" {
		return &ValidationError{Field: "display_name", Message: "must not be empty"}
	}
	return nil
}

// DefaultIssueType describes one seeded catalog row.
type DefaultIssueType struct {
	Name        string
	DisplayName string
	Icon        string
	SortOrder   int
}

// DefaultIssueTypes is the fixed set inserted when the catalog is empty.
var DefaultIssueTypes = []DefaultIssueType{
	{Name: "heart_palpitations", DisplayName: "Heart Palpitations", Icon: "heart", SortOrder: 1},
	{Name: "headache", DisplayName: "Headache", Icon: "brain", SortOrder: 2},
	{Name: "fatigue", DisplayName: "Fatigue", Icon: "battery-low", SortOrder: 3},
	{Name: "anxiety", DisplayName: "Anxiety", Icon: "alert-circle", SortOrder: 4},
	{Name: "digestive", DisplayName: "Digestive Issues", Icon: "stomach", SortOrder: 5},
	{Name: "sleep_issues", DisplayName: "Sleep Issues", Icon: "moon", SortOrder: 6},
	{Name: "muscle_pain", DisplayName: "Muscle Pain", Icon: "activity", SortOrder: 7},
	{Name: "dizziness", DisplayName: "Dizziness", Icon: "compass", SortOrder: 8},
	{Name: "other", DisplayName: "Other", Icon: "plus-circle", SortOrder: 99},
}
