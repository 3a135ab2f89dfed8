// ABOUTME: Validation error type and range checks shared across models.
// ABOUTME: Validation failures are rejected before any storage write.
package models

import "fmt"

// ValidationError describes a field value outside its declared range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// checkScale validates an optional 1-10 scale value.
func checkScale(field string, v *int) error {
	if v != nil && (*v < 1 || *v > 10) {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be between 1 and 10, got %d", *v)}
	}
	return nil
}

// checkDayOfWeek validates an optional 0-6 weekday (Monday=0).
func checkDayOfWeek(field string, v *int) error {
	if v != nil && (*v < 0 || *v > 6) {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be between 0 (Monday) and 6 (Sunday), got %d", *v)}
	}
	return nil
}
