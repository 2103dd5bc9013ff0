// internal/domain/workout.go
package domain

import (
	"fmt"
	"time"
)

// Workout is a named, reusable training routine made of ordered Days.
// The order of Days is authoritative: Sessions reference a Day by its
// position in this slice, not by DayNumber.
type Workout struct {
	ID          string    `bson:"workout_id" json:"workout_id"`
	UserID      string    `bson:"user_id" json:"user_id,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Days        []Day     `bson:"days" json:"days"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at,omitempty"`
}

// Day is one training day of a Workout (e.g. "Pull 1").
type Day struct {
	DayNumber int        `bson:"day_number" json:"day_number"` // 1-based position hint
	Name      string     `bson:"name" json:"name"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

// WorkoutPayload is the create/replace request body for a Workout.
type WorkoutPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Days        []Day  `json:"days"`
}

// DefaultDayName is the name given to the n-th day (1-based) when it is created.
func DefaultDayName(n int) string {
	return fmt.Sprintf("Día %d", n)
}

// Clone returns a deep copy of the workout so that edits on the copy never
// alias the original's days or exercises.
func (w Workout) Clone() Workout {
	w.Days = CloneDays(w.Days)
	return w
}

// CloneDays deep-copies a list of days.
func CloneDays(days []Day) []Day {
	if days == nil {
		return nil
	}
	out := make([]Day, len(days))
	for i, d := range days {
		out[i] = d.Clone()
	}
	return out
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	if d.Exercises != nil {
		exercises := make([]Exercise, len(d.Exercises))
		copy(exercises, d.Exercises)
		d.Exercises = exercises
	}
	return d
}

// Day returns the day at index, or a ReferenceError when index is out of range.
func (w Workout) Day(index int) (Day, error) {
	if index < 0 || index >= len(w.Days) {
		return Day{}, &ReferenceError{Kind: "day", Index: index, Len: len(w.Days)}
	}
	return w.Days[index], nil
}
