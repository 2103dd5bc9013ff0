// internal/domain/session.go
package domain

import (
	"time"

	"go.uber.org/multierr"
)

// DateLayout is the calendar-date format used for Session.Date.
const DateLayout = "2006-01-02"

// Session is one dated, immutable record of a performed Day.
// WorkoutName, DayName and every LoggedExercise.ExerciseName are snapshots
// taken when the session is written and are never updated afterwards.
type Session struct {
	ID          string           `bson:"session_id" json:"session_id"`
	UserID      string           `bson:"user_id" json:"user_id,omitempty"`
	WorkoutID   string           `bson:"workout_id" json:"workout_id"`
	WorkoutName string           `bson:"workout_name" json:"workout_name"`
	DayIndex    int              `bson:"day_index" json:"day_index"`
	DayName     string           `bson:"day_name" json:"day_name"`
	Date        string           `bson:"date" json:"date"` // YYYY-MM-DD, no time component
	Exercises   []LoggedExercise `bson:"exercises" json:"exercises"`
	CreatedAt   time.Time        `bson:"created_at" json:"created_at,omitempty"`
}

// LoggedExercise holds what was actually done for one template exercise.
// Weight and Reps are free text; an empty string means "not recorded".
type LoggedExercise struct {
	ExerciseIndex int    `bson:"exercise_index" json:"exercise_index"`
	ExerciseName  string `bson:"exercise_name" json:"exercise_name"`
	Weight        string `bson:"weight" json:"weight"`
	Reps          string `bson:"reps" json:"reps"` // may hold per-set values, e.g. "10,10,8"
	Notes         string `bson:"notes" json:"notes"`
}

// SessionEntry is one exercise of a session creation request.
type SessionEntry struct {
	ExerciseIndex int    `json:"exercise_index"`
	Weight        string `json:"weight"`
	Reps          string `json:"reps"`
	Notes         string `json:"notes"`
}

// SessionRequest is the create body for a Session.
type SessionRequest struct {
	WorkoutID string         `json:"workout_id"`
	DayIndex  int            `json:"day_index"`
	Date      string         `json:"date,omitempty"` // defaults to today (UTC) when empty
	Exercises []SessionEntry `json:"exercises"`
}

// IsISODate reports whether s is a valid YYYY-MM-DD calendar date.
func IsISODate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// NewSession builds the Session stored for req against workout.
// date is used when req.Date is empty. Names are copied from the workout as
// it is right now; exactly one entry per template exercise is required.
func NewSession(id, userID string, workout Workout, req SessionRequest, date string, now time.Time) (*Session, error) {
	day, err := workout.Day(req.DayIndex)
	if err != nil {
		return nil, err
	}
	if req.Date != "" {
		date = req.Date
	}
	if !IsISODate(date) {
		return nil, &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	var errs error
	seen := make(map[int]bool, len(req.Exercises))
	logged := make([]LoggedExercise, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		if e.ExerciseIndex < 0 || e.ExerciseIndex >= len(day.Exercises) {
			errs = multierr.Append(errs, &ReferenceError{Kind: "exercise", Index: e.ExerciseIndex, Len: len(day.Exercises)})
			continue
		}
		if seen[e.ExerciseIndex] {
			errs = multierr.Append(errs, &ValidationError{Field: "exercises", Reason: "duplicate exercise_index"})
			continue
		}
		seen[e.ExerciseIndex] = true
		logged = append(logged, LoggedExercise{
			ExerciseIndex: e.ExerciseIndex,
			ExerciseName:  day.Exercises[e.ExerciseIndex].Name,
			Weight:        e.Weight,
			Reps:          e.Reps,
			Notes:         e.Notes,
		})
	}
	if errs == nil && len(seen) != len(day.Exercises) {
		errs = &ValidationError{Field: "exercises", Reason: "one entry per exercise of the day is required"}
	}
	if errs != nil {
		return nil, errs
	}

	return &Session{
		ID:          id,
		UserID:      userID,
		WorkoutID:   workout.ID,
		WorkoutName: workout.Name,
		DayIndex:    req.DayIndex,
		DayName:     day.Name,
		Date:        date,
		Exercises:   logged,
		CreatedAt:   now,
	}, nil
}
