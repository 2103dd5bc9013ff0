// Package sessionlog builds the per-exercise placeholders a user fills in
// while training and turns them into a session creation request.
package sessionlog

import (
	"github.com/lontso23/dragon-fit/internal/domain"
)

// Field selects which placeholder attribute UpdateField writes.
type Field string

const (
	FieldWeight Field = "weight"
	FieldReps   Field = "reps"
	FieldNotes  Field = "notes"
)

// Log is the in-progress record of one training day. It is a value; a failed
// submit leaves it intact so the user can retry without re-entering data.
type Log struct {
	WorkoutID string
	DayIndex  int
	DayName   string
	Date      string // optional, empty means "today" on the server side
	Exercises []domain.LoggedExercise
}

// New creates one empty placeholder per exercise of the selected day, in
// template order. Exercises with empty names still get a placeholder.
func New(w domain.Workout, dayIndex int) (Log, error) {
	day, err := w.Day(dayIndex)
	if err != nil {
		return Log{}, err
	}
	exercises := make([]domain.LoggedExercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		exercises[i] = domain.LoggedExercise{
			ExerciseIndex: i,
			ExerciseName:  ex.Name,
		}
	}
	return Log{
		WorkoutID: w.ID,
		DayIndex:  dayIndex,
		DayName:   day.Name,
		Exercises: exercises,
	}, nil
}

// UpdateField returns a copy of exercises with one placeholder field replaced.
func UpdateField(exercises []domain.LoggedExercise, index int, field Field, value string) ([]domain.LoggedExercise, error) {
	if index < 0 || index >= len(exercises) {
		return exercises, &domain.ReferenceError{Kind: "exercise", Index: index, Len: len(exercises)}
	}
	out := make([]domain.LoggedExercise, len(exercises))
	copy(out, exercises)
	switch field {
	case FieldWeight:
		out[index].Weight = value
	case FieldReps:
		out[index].Reps = value
	case FieldNotes:
		out[index].Notes = value
	default:
		return exercises, &domain.ReferenceError{Kind: "exercise", Index: -1, Field: string(field)}
	}
	return out, nil
}

// Set is UpdateField applied to the log's own placeholders.
func (l Log) Set(index int, field Field, value string) (Log, error) {
	exercises, err := UpdateField(l.Exercises, index, field, value)
	if err != nil {
		return l, err
	}
	l.Exercises = exercises
	return l, nil
}

// WithDate returns a copy of the log that will be submitted for date (YYYY-MM-DD).
func (l Log) WithDate(date string) Log {
	l.Exercises = append([]domain.LoggedExercise(nil), l.Exercises...)
	l.Date = date
	return l
}

// Submit builds the creation request. Every placeholder is sent, filled or not.
func Submit(workoutID string, dayIndex int, exercises []domain.LoggedExercise) domain.SessionRequest {
	entries := make([]domain.SessionEntry, len(exercises))
	for i, e := range exercises {
		entries[i] = domain.SessionEntry{
			ExerciseIndex: e.ExerciseIndex,
			Weight:        e.Weight,
			Reps:          e.Reps,
			Notes:         e.Notes,
		}
	}
	return domain.SessionRequest{
		WorkoutID: workoutID,
		DayIndex:  dayIndex,
		Exercises: entries,
	}
}

// Request is Submit for the log, including its optional date.
func (l Log) Request() domain.SessionRequest {
	req := Submit(l.WorkoutID, l.DayIndex, l.Exercises)
	req.Date = l.Date
	return req
}
