package progress

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/lontso23/dragon-fit/internal/domain"
)

// wire mirrors of the aggregation payload with pointer fields so that a
// missing key can be told apart from a zero value.
type wireWorkout struct {
	WorkoutName   *string                  `json:"workout_name"`
	SessionsCount *int                     `json:"sessions_count"`
	Exercises     map[string][]*wireRecord `json:"exercises"`
}

type wireRecord struct {
	Date         *string  `json:"date"`
	Weight       *float64 `json:"weight"`
	ExerciseName *string  `json:"exercise_name"`
	Reps         string   `json:"reps"`
}

// Decode reads a progress query result. Every missing required key is
// reported as a ShapeError; all of them are returned together.
func Decode(r io.Reader) (domain.ProgressSource, error) {
	var raw map[string]*wireWorkout
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &domain.ShapeError{Path: "$", Reason: err.Error()}
	}

	var errs error
	missing := func(path, key string) {
		errs = multierr.Append(errs, &domain.ShapeError{Path: path, Reason: fmt.Sprintf("missing %q", key)})
	}

	source := make(domain.ProgressSource, len(raw))
	for id, w := range raw {
		if w == nil {
			errs = multierr.Append(errs, &domain.ShapeError{Path: id, Reason: "null workout entry"})
			continue
		}
		if w.WorkoutName == nil {
			missing(id, "workout_name")
		}
		if w.SessionsCount == nil {
			missing(id, "sessions_count")
		}
		if w.Exercises == nil {
			missing(id, "exercises")
			continue
		}

		wp := domain.WorkoutProgress{Exercises: make(map[string][]domain.ProgressRecord, len(w.Exercises))}
		if w.WorkoutName != nil {
			wp.WorkoutName = *w.WorkoutName
		}
		if w.SessionsCount != nil {
			wp.SessionsCount = *w.SessionsCount
		}
		for slot, records := range w.Exercises {
			out := make([]domain.ProgressRecord, 0, len(records))
			for i, rec := range records {
				path := fmt.Sprintf("%s.exercises.%s[%d]", id, slot, i)
				if rec == nil {
					errs = multierr.Append(errs, &domain.ShapeError{Path: path, Reason: "null record"})
					continue
				}
				if rec.Date == nil {
					missing(path, "date")
				}
				if rec.Weight == nil {
					missing(path, "weight")
				}
				if rec.Date == nil || rec.Weight == nil {
					continue
				}
				pr := domain.ProgressRecord{Date: *rec.Date, Weight: *rec.Weight, Reps: rec.Reps}
				if rec.ExerciseName != nil {
					pr.ExerciseName = *rec.ExerciseName
				}
				out = append(out, pr)
			}
			wp.Exercises[slot] = out
		}
		source[id] = wp
	}
	if errs != nil {
		return nil, errs
	}
	return source, nil
}
