// internal/domain/progress.go
package domain

// ProgressSource is the result of the progress aggregation query:
// workout id -> per-slot history.
type ProgressSource map[string]WorkoutProgress

// WorkoutProgress groups the logged records of one workout by exercise slot.
// Slots are keyed by the decimal exercise_index recorded at logging time, so
// reordering exercises between sessions moves history to another slot.
type WorkoutProgress struct {
	WorkoutName   string                      `json:"workout_name"`
	SessionsCount int                         `json:"sessions_count"`
	Exercises     map[string][]ProgressRecord `json:"exercises"`
}

// ProgressRecord is one logged data point for an exercise slot.
type ProgressRecord struct {
	Date         string  `json:"date"`
	Weight       float64 `json:"weight"`
	ExerciseName string  `json:"exercise_name"`
	Reps         string  `json:"reps,omitempty"`
}
