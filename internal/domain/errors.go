// internal/domain/errors.go
package domain

import "fmt"

// ValidationError reports a required field that is empty or malformed.
// Callers recover by asking the user to fix the value and submitting again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// ReferenceError reports a positional index (day, exercise, field) that does
// not exist. It signals a caller bug rather than bad user input.
// Field is set instead of Index when a named field does not exist.
type ReferenceError struct {
	Kind  string
	Index int
	Len   int
	Field string
}

func (e *ReferenceError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("unknown %s field %q", e.Kind, e.Field)
	}
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Kind, e.Index, e.Len)
}

// ShapeError reports structurally malformed input to the aggregation and
// grouping steps, e.g. a record without a date.
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("malformed input at %s: %s", e.Path, e.Reason)
}
